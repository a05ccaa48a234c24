// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import (
	"errors"

	"github.com/black-desk/cgroupv2/pkg/codec"
)

type ControllerType uint8

const (
	ControllerCPUSet ControllerType = iota // cpuset
	ControllerCPU                          // cpu
	ControllerIO                           // io
	ControllerMemory                       // memory
	ControllerPids                         // pids
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ControllerType -linecomment

var ErrUnknownController = errors.New("unknown controller.")

// AllControllers returns every controller this module knows about.
func AllControllers() []ControllerType {
	return []ControllerType{
		ControllerCPUSet,
		ControllerCPU,
		ControllerIO,
		ControllerMemory,
		ControllerPids,
	}
}

func ParseControllerType(s string) (ret ControllerType, err error) {
	all := AllControllers()
	for i := range all {
		if all[i].String() != s {
			continue
		}

		ret = all[i]
		return
	}

	err = codec.Malformed("", s, ErrUnknownController)
	return
}

func (c ControllerType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ControllerType) UnmarshalText(text []byte) (err error) {
	var v ControllerType
	v, err = ParseControllerType(string(text))
	if err != nil {
		return
	}

	*c = v
	return
}

// ControllerList reads cgroup.controllers and cgroup.subtree_control.
var ControllerList = codec.SpaceList[ControllerType]{
	Parse:  ParseControllerType,
	Format: ControllerType.String,
}
