// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgroup

import "errors"

var (
	ErrPathMissing       = errors.New("cgroup path is missing.")
	ErrUnknownCGroupType = errors.New("unknown cgroup type.")
)
