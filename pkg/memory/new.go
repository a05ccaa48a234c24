// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"github.com/black-desk/cgroupv2/pkg/cgfs"
	. "github.com/black-desk/lib/go/errwrap"
)

// Memory reads and writes the memory.* interface files of one cgroup.
type Memory struct {
	dir *cgfs.Dir
}

func New(opts ...Opt) (ret *Memory, err error) {
	defer Wrap(&err, "create memory controller view")

	m := &Memory{}
	for i := range opts {
		m, err = opts[i](m)
		if err != nil {
			return
		}
	}

	if m.dir == nil {
		err = ErrDirMissing
		return
	}

	ret = m
	return
}

type Opt func(m *Memory) (ret *Memory, err error)

func WithDir(dir *cgfs.Dir) Opt {
	return func(m *Memory) (ret *Memory, err error) {
		if dir == nil {
			err = ErrDirMissing
			return
		}

		m.dir = dir
		ret = m
		return
	}
}
