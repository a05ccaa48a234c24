// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgfs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/black-desk/cgroupv2/internal/pool"
)

// cgroupfs reports a size of 0 for every interface file.
var buffers = pool.New(
	func() *bytes.Buffer { return new(bytes.Buffer) },
	(*bytes.Buffer).Reset,
)

func (d *Dir) file(name string) string {
	return filepath.Join(d.path, name)
}

func (d *Dir) write(name string, flag int, content []byte) (err error) {
	path := d.file(name)

	// NOTE: Interface files always exist, so O_CREATE is never used.
	var file *os.File
	file, err = os.OpenFile(path, flag, 0)
	if err != nil {
		err = &ErrFileSystem{Path: path, Err: err}
		return
	}
	defer func() {
		closeErr := file.Close()
		if err != nil || closeErr == nil {
			return
		}

		err = &ErrFileSystem{Path: path, Err: closeErr}
	}()

	var n int
	n, err = file.Write(content)
	if err != nil {
		err = &ErrFileSystem{Path: path, Err: err}
		return
	}

	if n == 0 {
		err = ErrZeroByteWrite
		return
	}

	d.log.Debugw("Interface file written.",
		"path", path,
		"content", string(content),
	)

	return
}
