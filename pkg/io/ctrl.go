// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package io

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Ctrl -linecomment

// Ctrl tells who drives the io.cost.qos parameters of a device.
// In auto mode the kernel may change them,
// writing any percentile or latency switches to user mode.
type Ctrl uint8

const (
	CtrlAuto Ctrl = iota // auto
	CtrlUser             // user
)

func ParseCtrl(s string) (ret Ctrl, err error) {
	switch s {
	case CtrlAuto.String():
		ret = CtrlAuto
	case CtrlUser.String():
		ret = CtrlUser
	default:
		err = codec.Malformed("ctrl", s, ErrUnknownCtrl)
	}
	return
}

func (c Ctrl) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Ctrl) UnmarshalText(text []byte) (err error) {
	var v Ctrl
	v, err = ParseCtrl(string(text))
	if err != nil {
		return
	}

	*c = v
	return
}
