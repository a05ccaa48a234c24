// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgfs

import (
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// Dir is a cgroup directory.
// It keeps nothing but the path and a logger,
// every method opens and closes the file it touches.
type Dir struct {
	path string
	log  *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Dir, err error) {
	defer Wrap(&err, "create cgroup directory accessor")

	d := &Dir{}
	for i := range opts {
		d, err = opts[i](d)
		if err != nil {
			return
		}
	}

	if d.path == "" {
		err = ErrPathMissing
		return
	}

	if d.log == nil {
		d.log = zap.NewNop().Sugar()
	}

	ret = d

	d.log.Debugw("Create a cgroup directory accessor.",
		"path", d.path,
	)

	return
}

type Opt func(d *Dir) (ret *Dir, err error)

func WithPath(path string) Opt {
	return func(d *Dir) (ret *Dir, err error) {
		if path == "" {
			err = ErrPathMissing
			return
		}

		d.path = filepath.Clean(path)
		ret = d
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(d *Dir) (ret *Dir, err error) {
		d.log = log
		ret = d
		return
	}
}
