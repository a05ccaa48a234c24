// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgfs

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

func (d *Dir) Path() string {
	return d.path
}

func (d *Dir) Logger() *zap.SugaredLogger {
	return d.log
}

// Child returns an accessor for the cgroup directory name under d.
// The directory is not created.
func (d *Dir) Child(name string) (ret *Dir, err error) {
	return New(
		WithPath(filepath.Join(d.path, name)),
		WithLogger(d.log),
	)
}

// Read returns the whole content of the interface file name.
func (d *Dir) Read(name string) (content []byte, err error) {
	defer Wrap(&err, "read %s", name)

	path := d.file(name)

	var file *os.File
	file, err = os.Open(path)
	if err != nil {
		err = &ErrFileSystem{Path: path, Err: err}
		return
	}
	defer file.Close()

	buf := buffers.Get()
	defer buffers.Put(buf)

	_, err = buf.ReadFrom(file)
	if err != nil {
		err = &ErrFileSystem{Path: path, Err: err}
		return
	}

	content = bytes.Clone(buf.Bytes())

	d.log.Debugw("Interface file read.",
		"path", path,
		"size", len(content),
	)

	return
}

// Write replaces the content of the interface file name with content
// in a single write call.
func (d *Dir) Write(name string, content []byte) (err error) {
	defer Wrap(&err, "write %s", name)

	err = d.write(name, os.O_WRONLY|os.O_TRUNC, content)
	return
}

// Append appends content to the interface file name.
// It is the way to move a process or thread into a cgroup.
func (d *Dir) Append(name string, content []byte) (err error) {
	defer Wrap(&err, "append to %s", name)

	err = d.write(name, os.O_WRONLY|os.O_APPEND, content)
	return
}
