// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types

import (
	"strconv"

	"github.com/black-desk/cgroupv2/pkg/codec"
)

const maxToken = "max"

// Max is a limit which is either unbounded ("max") or a number.
// The zero value is unbounded.
type Max struct {
	Bounded bool
	Value   uint64
}

// Unbounded is the "max" limit.
var Unbounded = Max{}

// Bounded returns the limit v.
func Bounded(v uint64) Max {
	return Max{Bounded: true, Value: v}
}

func ParseMax(s string) (ret Max, err error) {
	if s == maxToken {
		ret = Unbounded
		return
	}

	var v uint64
	v, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		err = codec.Malformed("", s, err)
		return
	}

	ret = Bounded(v)
	return
}

func (m Max) String() string {
	if !m.Bounded {
		return maxToken
	}

	return strconv.FormatUint(m.Value, 10)
}

func (m Max) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Max) UnmarshalText(text []byte) (err error) {
	var v Max
	v, err = ParseMax(string(text))
	if err != nil {
		return
	}

	*m = v
	return
}

// MaxCodec reads and writes files holding a single Max,
// like cgroup.max.depth or memory.max.
var MaxCodec = codec.Scalar[Max]{Parse: ParseMax, Format: Max.String}
