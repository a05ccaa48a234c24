// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cpu

import (
	"strings"

	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/types"
)

// Stat is the content of cpu.stat.
// The last three fields are only reported
// when the cpu controller is enabled.
type Stat struct {
	UsageUsec     uint64 `yaml:"usage_usec"`
	UserUsec      uint64 `yaml:"user_usec"`
	SystemUsec    uint64 `yaml:"system_usec"`
	NrPeriods     uint64 `yaml:"nr_periods"`
	NrThrottled   uint64 `yaml:"nr_throttled"`
	ThrottledUsec uint64 `yaml:"throttled_usec"`
}

func (s *Stat) Set(key, value string) error {
	return codec.Assign(map[string]*uint64{
		"usage_usec":     &s.UsageUsec,
		"user_usec":      &s.UserUsec,
		"system_usec":    &s.SystemUsec,
		"nr_periods":     &s.NrPeriods,
		"nr_throttled":   &s.NrThrottled,
		"throttled_usec": &s.ThrottledUsec,
	}, codec.ParseUint64, key, value)
}

// CPUMax is the content of cpu.max: a quota and an optional period,
// both in microseconds.
// When Period is nil the kernel keeps the current period.
type CPUMax struct {
	Max    types.Max
	Period *uint32
}

func ParseCPUMax(s string) (ret CPUMax, err error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 || len(tokens) > 2 {
		err = codec.Malformed("", s, ErrCPUMaxToken)
		return
	}

	var v CPUMax
	v.Max, err = types.ParseMax(tokens[0])
	if err != nil {
		return
	}

	if len(tokens) == 2 {
		var period uint32
		period, err = codec.ParseUint32(tokens[1])
		if err != nil {
			err = codec.Malformed("", s, err)
			return
		}
		v.Period = &period
	}

	ret = v
	return
}

func (m CPUMax) String() string {
	if m.Period == nil {
		return m.Max.String()
	}

	return m.Max.String() + " " + codec.FormatUint32(*m.Period)
}

var (
	statCodec   = codec.FlatKeyed[Stat, *Stat]{}
	cpuMaxCodec = codec.Scalar[CPUMax]{Parse: ParseCPUMax, Format: CPUMax.String}
)
