// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cpu

import "errors"

var (
	ErrDirMissing  = errors.New("cgroup directory is missing.")
	ErrCPUMaxToken = errors.New("expect \"<max> [period]\".")
)
