// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgroup

import (
	"github.com/black-desk/cgroupv2/pkg/cgfs"
	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/cpu"
	"github.com/black-desk/cgroupv2/pkg/io"
	"github.com/black-desk/cgroupv2/pkg/memory"
	"github.com/black-desk/cgroupv2/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
)

const (
	FileControllers    = "cgroup.controllers"
	FileSubtreeControl = "cgroup.subtree_control"
	FileType           = "cgroup.type"
	FileProcs          = "cgroup.procs"
	FileThreads        = "cgroup.threads"
	FileEvents         = "cgroup.events"
	FileMaxDescendants = "cgroup.max.descendants"
	FileMaxDepth       = "cgroup.max.depth"
	FileStat           = "cgroup.stat"
	FileFreeze         = "cgroup.freeze"
	FileKill           = "cgroup.kill"
)

func (c *CGroup) Path() string {
	return c.dir.Path()
}

// Child returns the view of the cgroup name under c.
// The directory is neither created nor checked.
func (c *CGroup) Child(name string) (ret *CGroup, err error) {
	defer Wrap(&err, "open child cgroup %s", name)

	var dir *cgfs.Dir
	dir, err = c.dir.Child(name)
	if err != nil {
		return
	}

	return New(WithDir(dir))
}

func (c *CGroup) Cpu() *cpu.Cpu {
	return c.cpu
}

func (c *CGroup) Memory() *memory.Memory {
	return c.memory
}

func (c *CGroup) IO() *io.IO {
	return c.io
}

// Controllers lists the controllers available to this cgroup.
// Names this package does not know are skipped.
func (c *CGroup) Controllers() ([]types.ControllerType, error) {
	return codec.Load[[]types.ControllerType](c.dir, FileControllers, types.ControllerList)
}

// SubtreeControl lists the controllers enabled for the children.
func (c *CGroup) SubtreeControl() ([]types.ControllerType, error) {
	return codec.Load[[]types.ControllerType](c.dir, FileSubtreeControl, types.ControllerList)
}

// SetSubtreeControl asks the kernel to enable and disable controllers
// for the children in one write.
// The kernel may apply only part of it,
// read SubtreeControl to get the result.
// Nothing is written if both lists are empty.
func (c *CGroup) SetSubtreeControl(enables, disables []types.ControllerType) (err error) {
	cmd := SubtreeControlCommand(enables, disables)
	if cmd == "" {
		return
	}

	defer Wrap(&err, "update subtree control with %q", cmd)

	err = c.dir.Write(FileSubtreeControl, []byte(cmd))
	if err != nil {
		return
	}

	c.log.Debugw("Subtree control updated.",
		"path", c.dir.Path(),
		"command", cmd,
	)
	return
}

func (c *CGroup) Type() (CGroupType, error) {
	return codec.Load[CGroupType](c.dir, FileType, typeCodec)
}

// SetThreaded turns this cgroup into a threaded one.
// It is the only transition the kernel accepts through cgroup.type.
func (c *CGroup) SetThreaded() error {
	return codec.Store(c.dir, FileType, typeCodec, CGroupTypeThreaded)
}

func (c *CGroup) Procs() ([]int, error) {
	return codec.Load[[]int](c.dir, FileProcs, pidCodec)
}

// AddProc moves the process pid and all its threads into this cgroup.
func (c *CGroup) AddProc(pid int) (err error) {
	defer Wrap(&err, "add process %d", pid)

	err = c.dir.Append(FileProcs, codec.Int.Encode(pid))
	return
}

func (c *CGroup) Threads() ([]int, error) {
	return codec.Load[[]int](c.dir, FileThreads, pidCodec)
}

// AddThread moves the thread tid into this cgroup.
func (c *CGroup) AddThread(tid int) (err error) {
	defer Wrap(&err, "add thread %d", tid)

	err = c.dir.Append(FileThreads, codec.Int.Encode(tid))
	return
}

func (c *CGroup) Events() (CGroupEvent, error) {
	return codec.Load[CGroupEvent](c.dir, FileEvents, eventCodec)
}

func (c *CGroup) MaxDescendants() (types.Max, error) {
	return codec.Load[types.Max](c.dir, FileMaxDescendants, types.MaxCodec)
}

func (c *CGroup) SetMaxDescendants(max types.Max) error {
	return codec.Store(c.dir, FileMaxDescendants, types.MaxCodec, max)
}

func (c *CGroup) MaxDepth() (types.Max, error) {
	return codec.Load[types.Max](c.dir, FileMaxDepth, types.MaxCodec)
}

func (c *CGroup) SetMaxDepth(max types.Max) error {
	return codec.Store(c.dir, FileMaxDepth, types.MaxCodec, max)
}

func (c *CGroup) Stat() (CGroupStat, error) {
	return codec.Load[CGroupStat](c.dir, FileStat, statCodec)
}

func (c *CGroup) Freeze() (Freeze, error) {
	return codec.Load[Freeze](c.dir, FileFreeze, freezeCodec)
}

// SetFreeze freezes or thaws every process in this cgroup and below.
// The transition is over once Events reports the same Frozen state.
func (c *CGroup) SetFreeze(freeze Freeze) error {
	return codec.Store(c.dir, FileFreeze, freezeCodec, freeze)
}

// Kill sends SIGKILL to every process in this cgroup and below.
func (c *CGroup) Kill() (err error) {
	defer Wrap(&err, "kill cgroup")

	err = c.dir.Write(FileKill, codec.Bool.Encode(true))
	return
}
