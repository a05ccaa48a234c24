// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package io

import "errors"

var (
	ErrDirMissing   = errors.New("cgroup directory is missing.")
	ErrDeviceNumber = errors.New("expect a device number like 8:0.")
	ErrUnknownCtrl  = errors.New("expect auto or user.")
)
