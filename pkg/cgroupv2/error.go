// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgroupv2

import (
	"errors"
)

var (
	ErrConfigMissing = errors.New("config is missing.")
	ErrOutsideRoot   = errors.New("cgroup path is outside of the hierarchy.")
)
