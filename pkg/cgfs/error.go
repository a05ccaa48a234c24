// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgfs

import (
	"errors"
	"fmt"
)

var (
	ErrPathMissing   = errors.New("cgroup path is missing.")
	ErrZeroByteWrite = errors.New("zero byte written.")
)

// ErrFileSystem is returned when opening, reading or writing
// a cgroup interface file fails at the operating system level.
type ErrFileSystem struct {
	Path string
	Err  error
}

func (e *ErrFileSystem) Error() string {
	return fmt.Sprintf("filesystem failure on %s: %v", e.Path, e.Err)
}

func (e *ErrFileSystem) Unwrap() error {
	return e.Err
}
