// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package io

import (
	"github.com/black-desk/cgroupv2/pkg/cgfs"
	. "github.com/black-desk/lib/go/errwrap"
)

// IO reads and writes the io.* interface files of one cgroup.
type IO struct {
	dir *cgfs.Dir
}

func New(opts ...Opt) (ret *IO, err error) {
	defer Wrap(&err, "create io controller view")

	i := &IO{}
	for j := range opts {
		i, err = opts[j](i)
		if err != nil {
			return
		}
	}

	if i.dir == nil {
		err = ErrDirMissing
		return
	}

	ret = i
	return
}

type Opt func(i *IO) (ret *IO, err error)

func WithDir(dir *cgfs.Dir) Opt {
	return func(i *IO) (ret *IO, err error) {
		if dir == nil {
			err = ErrDirMissing
			return
		}

		i.dir = dir
		ret = i
		return
	}
}
