// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgevmon

import "errors"

var (
	ErrCGroupMissing = errors.New("cgroup is missing.")
	ErrLoggerMissing = errors.New("logger is missing.")
)
