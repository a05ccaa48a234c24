// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgroup

import (
	"github.com/black-desk/cgroupv2/pkg/cgfs"
	"github.com/black-desk/cgroupv2/pkg/cpu"
	"github.com/black-desk/cgroupv2/pkg/io"
	"github.com/black-desk/cgroupv2/pkg/memory"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// CGroup is the view of the core interface files (cgroup.*) of one cgroup
// directory. The controller views returned by Cpu, Memory and IO
// share the same directory.
type CGroup struct {
	path string
	dir  *cgfs.Dir
	log  *zap.SugaredLogger

	cpu    *cpu.Cpu
	memory *memory.Memory
	io     *io.IO
}

func New(opts ...Opt) (ret *CGroup, err error) {
	defer Wrap(&err, "create cgroup view")

	c := &CGroup{}
	for i := range opts {
		c, err = opts[i](c)
		if err != nil {
			return
		}
	}

	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}

	if c.dir == nil {
		if c.path == "" {
			err = ErrPathMissing
			return
		}

		c.dir, err = cgfs.New(
			cgfs.WithPath(c.path),
			cgfs.WithLogger(c.log),
		)
		if err != nil {
			return
		}
	}

	c.cpu, err = cpu.New(cpu.WithDir(c.dir))
	if err != nil {
		return
	}

	c.memory, err = memory.New(memory.WithDir(c.dir))
	if err != nil {
		return
	}

	c.io, err = io.New(io.WithDir(c.dir))
	if err != nil {
		return
	}

	ret = c
	return
}

type Opt func(c *CGroup) (ret *CGroup, err error)

// WithDir makes the view use dir, WithPath and WithLogger are ignored then.
func WithDir(dir *cgfs.Dir) Opt {
	return func(c *CGroup) (ret *CGroup, err error) {
		if dir == nil {
			err = ErrPathMissing
			return
		}

		c.dir = dir
		c.log = dir.Logger()
		ret = c
		return
	}
}

func WithPath(path string) Opt {
	return func(c *CGroup) (ret *CGroup, err error) {
		if path == "" {
			err = ErrPathMissing
			return
		}

		c.path = path
		ret = c
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(c *CGroup) (ret *CGroup, err error) {
		if c.dir != nil {
			ret = c
			return
		}

		c.log = log
		ret = c
		return
	}
}
