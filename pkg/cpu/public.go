// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cpu

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/psi"
	"github.com/black-desk/cgroupv2/pkg/types"
)

const (
	FileStat       = "cpu.stat"
	FileWeight     = "cpu.weight"
	FileWeightNice = "cpu.weight.nice"
	FileMax        = "cpu.max"
	FileIdle       = "cpu.idle"
	FilePressure   = "cpu.pressure"
)

func (c *Cpu) Stat() (Stat, error) {
	return codec.Load[Stat](c.dir, FileStat, statCodec)
}

// Weight is in the range [1, 10000], 100 by default.
func (c *Cpu) Weight() (uint16, error) {
	return codec.Load[uint16](c.dir, FileWeight, codec.Uint16)
}

func (c *Cpu) SetWeight(w uint16) error {
	return codec.Store(c.dir, FileWeight, codec.Uint16, w)
}

// WeightNice is the weight expressed as a nice value in [-20, 19].
func (c *Cpu) WeightNice() (int8, error) {
	return codec.Load[int8](c.dir, FileWeightNice, codec.Int8)
}

func (c *Cpu) SetWeightNice(n int8) error {
	return codec.Store(c.dir, FileWeightNice, codec.Int8, n)
}

func (c *Cpu) Max() (CPUMax, error) {
	return codec.Load[CPUMax](c.dir, FileMax, cpuMaxCodec)
}

// SetMax writes the bandwidth limit.
// The period token is left out when period is nil.
func (c *Cpu) SetMax(max types.Max, period *uint32) error {
	return codec.Store(c.dir, FileMax, cpuMaxCodec, CPUMax{Max: max, Period: period})
}

func (c *Cpu) Idle() (bool, error) {
	return codec.Load[bool](c.dir, FileIdle, codec.Bool)
}

func (c *Cpu) SetIdle(idle bool) error {
	return codec.Store(c.dir, FileIdle, codec.Bool, idle)
}

func (c *Cpu) Pressure() (psi.CPUPressure, error) {
	return codec.Load[psi.CPUPressure](c.dir, FilePressure, psi.CPU)
}
