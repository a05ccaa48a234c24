// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
)

// Event is the content of memory.events and memory.events.local.
type Event struct {
	Low          uint64 `yaml:"low"`
	High         uint64 `yaml:"high"`
	Max          uint64 `yaml:"max"`
	OOM          uint64 `yaml:"oom"`
	OOMKill      uint64 `yaml:"oom_kill"`
	OOMGroupKill uint64 `yaml:"oom_group_kill"`
}

func (e *Event) Set(key, value string) error {
	return codec.Assign(map[string]*uint64{
		"low":            &e.Low,
		"high":           &e.High,
		"max":            &e.Max,
		"oom":            &e.OOM,
		"oom_kill":       &e.OOMKill,
		"oom_group_kill": &e.OOMGroupKill,
	}, codec.ParseUint64, key, value)
}

// SwapEvent is the content of memory.swap.events.
type SwapEvent struct {
	High uint64 `yaml:"high"`
	Max  uint64 `yaml:"max"`
	Fail uint64 `yaml:"fail"`
}

func (e *SwapEvent) Set(key, value string) error {
	return codec.Assign(map[string]*uint64{
		"high": &e.High,
		"max":  &e.Max,
		"fail": &e.Fail,
	}, codec.ParseUint64, key, value)
}

var (
	eventCodec     = codec.FlatKeyed[Event, *Event]{}
	swapEventCodec = codec.FlatKeyed[SwapEvent, *SwapEvent]{}
	statCodec      = codec.FlatKeyedMap[uint64]{Parse: codec.ParseUint64}
)
