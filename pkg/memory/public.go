// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/psi"
	"github.com/black-desk/cgroupv2/pkg/types"
)

const (
	FileCurrent     = "memory.current"
	FileMin         = "memory.min"
	FileLow         = "memory.low"
	FileHigh        = "memory.high"
	FileMax         = "memory.max"
	FilePeak        = "memory.peak"
	FileOOMGroup    = "memory.oom.group"
	FileEvents      = "memory.events"
	FileEventsLocal = "memory.events.local"
	FileStat        = "memory.stat"
	FileSwapCurrent = "memory.swap.current"
	FileSwapHigh    = "memory.swap.high"
	FileSwapMax     = "memory.swap.max"
	FileSwapEvents  = "memory.swap.events"
	FilePressure    = "memory.pressure"
)

// Current is the memory usage of the cgroup and its descendants in bytes.
func (m *Memory) Current() (uint64, error) {
	return codec.Load[uint64](m.dir, FileCurrent, codec.Uint64)
}

// Peak is the highest Current recorded since the cgroup was created.
func (m *Memory) Peak() (uint64, error) {
	return codec.Load[uint64](m.dir, FilePeak, codec.Uint64)
}

func (m *Memory) Min() (types.Max, error) {
	return codec.Load[types.Max](m.dir, FileMin, types.MaxCodec)
}

func (m *Memory) SetMin(min types.Max) error {
	return codec.Store(m.dir, FileMin, types.MaxCodec, min)
}

func (m *Memory) Low() (types.Max, error) {
	return codec.Load[types.Max](m.dir, FileLow, types.MaxCodec)
}

func (m *Memory) SetLow(low types.Max) error {
	return codec.Store(m.dir, FileLow, types.MaxCodec, low)
}

func (m *Memory) High() (types.Max, error) {
	return codec.Load[types.Max](m.dir, FileHigh, types.MaxCodec)
}

func (m *Memory) SetHigh(high types.Max) error {
	return codec.Store(m.dir, FileHigh, types.MaxCodec, high)
}

func (m *Memory) Max() (types.Max, error) {
	return codec.Load[types.Max](m.dir, FileMax, types.MaxCodec)
}

func (m *Memory) SetMax(max types.Max) error {
	return codec.Store(m.dir, FileMax, types.MaxCodec, max)
}

// OOMGroup tells whether the OOM killer kills the whole cgroup at once.
func (m *Memory) OOMGroup() (bool, error) {
	return codec.Load[bool](m.dir, FileOOMGroup, codec.Bool)
}

func (m *Memory) SetOOMGroup(group bool) error {
	return codec.Store(m.dir, FileOOMGroup, codec.Bool, group)
}

func (m *Memory) Events() (Event, error) {
	return codec.Load[Event](m.dir, FileEvents, eventCodec)
}

func (m *Memory) EventsLocal() (Event, error) {
	return codec.Load[Event](m.dir, FileEventsLocal, eventCodec)
}

// Stat returns memory.stat as is, its key set depends on the kernel.
func (m *Memory) Stat() (map[string]uint64, error) {
	return codec.Load[map[string]uint64](m.dir, FileStat, statCodec)
}

func (m *Memory) SwapCurrent() (uint64, error) {
	return codec.Load[uint64](m.dir, FileSwapCurrent, codec.Uint64)
}

func (m *Memory) SwapHigh() (types.Max, error) {
	return codec.Load[types.Max](m.dir, FileSwapHigh, types.MaxCodec)
}

func (m *Memory) SetSwapHigh(high types.Max) error {
	return codec.Store(m.dir, FileSwapHigh, types.MaxCodec, high)
}

func (m *Memory) SwapMax() (types.Max, error) {
	return codec.Load[types.Max](m.dir, FileSwapMax, types.MaxCodec)
}

func (m *Memory) SetSwapMax(max types.Max) error {
	return codec.Store(m.dir, FileSwapMax, types.MaxCodec, max)
}

func (m *Memory) SwapEvents() (SwapEvent, error) {
	return codec.Load[SwapEvent](m.dir, FileSwapEvents, swapEventCodec)
}

func (m *Memory) Pressure() (psi.MemoryPressure, error) {
	return codec.Load[psi.MemoryPressure](m.dir, FilePressure, psi.Memory)
}
