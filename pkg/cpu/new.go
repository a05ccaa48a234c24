// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cpu

import (
	"github.com/black-desk/cgroupv2/pkg/cgfs"
	. "github.com/black-desk/lib/go/errwrap"
)

// Cpu reads and writes the cpu.* interface files of one cgroup.
type Cpu struct {
	dir *cgfs.Dir
}

func New(opts ...Opt) (ret *Cpu, err error) {
	defer Wrap(&err, "create cpu controller view")

	c := &Cpu{}
	for i := range opts {
		c, err = opts[i](c)
		if err != nil {
			return
		}
	}

	if c.dir == nil {
		err = ErrDirMissing
		return
	}

	ret = c
	return
}

type Opt func(c *Cpu) (ret *Cpu, err error)

func WithDir(dir *cgfs.Dir) Opt {
	return func(c *Cpu) (ret *Cpu, err error) {
		if dir == nil {
			err = ErrDirMissing
			return
		}

		c.dir = dir
		ret = c
		return
	}
}
