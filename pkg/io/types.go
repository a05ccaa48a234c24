// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package io

import (
	"strings"

	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/types"
)

// DeviceNumber is a block device, written as "maj:min".
type DeviceNumber struct {
	Maj uint32
	Min uint32
}

func ParseDeviceNumber(s string) (ret DeviceNumber, err error) {
	maj, min, ok := strings.Cut(s, ":")
	if !ok {
		err = codec.Malformed("", s, ErrDeviceNumber)
		return
	}

	var v DeviceNumber
	v.Maj, err = codec.ParseUint32(maj)
	if err != nil {
		err = codec.Malformed("", s, err)
		return
	}

	v.Min, err = codec.ParseUint32(min)
	if err != nil {
		err = codec.Malformed("", s, err)
		return
	}

	ret = v
	return
}

func (d DeviceNumber) String() string {
	return codec.FormatUint32(d.Maj) + ":" + codec.FormatUint32(d.Min)
}

func (d DeviceNumber) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DeviceNumber) UnmarshalText(text []byte) (err error) {
	var v DeviceNumber
	v, err = ParseDeviceNumber(string(text))
	if err != nil {
		return
	}

	*d = v
	return
}

// Stat is one device line of io.stat.
type Stat struct {
	RBytes uint64 `yaml:"rbytes"`
	WBytes uint64 `yaml:"wbytes"`
	RIOs   uint64 `yaml:"rios"`
	WIOs   uint64 `yaml:"wios"`
	DBytes uint64 `yaml:"dbytes"`
	DIOs   uint64 `yaml:"dios"`
}

func (s *Stat) Set(key, value string) error {
	return codec.Assign(map[string]*uint64{
		"rbytes": &s.RBytes,
		"wbytes": &s.WBytes,
		"rios":   &s.RIOs,
		"wios":   &s.WIOs,
		"dbytes": &s.DBytes,
		"dios":   &s.DIOs,
	}, codec.ParseUint64, key, value)
}

// CostQos is one device line of io.cost.qos,
// which only exists on the root cgroup.
// Min and Max are scaling percentages in [1, 10000].
type CostQos struct {
	Enable uint8
	Ctrl   Ctrl
	RPct   float32
	RLat   uint32
	WPct   float32
	WLat   uint32
	Min    float32
	Max    float32
}

func (q *CostQos) Set(key, value string) (err error) {
	switch key {
	case "enable":
		err = codec.Assign(map[string]*uint8{key: &q.Enable},
			codec.ParseUint8, key, value)
	case "ctrl":
		err = codec.Assign(map[string]*Ctrl{key: &q.Ctrl},
			ParseCtrl, key, value)
	case "rlat", "wlat":
		err = codec.Assign(map[string]*uint32{
			"rlat": &q.RLat,
			"wlat": &q.WLat,
		}, codec.ParseUint32, key, value)
	default:
		err = codec.Assign(map[string]*float32{
			"rpct": &q.RPct,
			"wpct": &q.WPct,
			"min":  &q.Min,
			"max":  &q.Max,
		}, codec.ParseFloat32, key, value)
	}
	return
}

// Fields leaves out the parameters when Ctrl is CtrlAuto,
// since writing any of them switches the device to CtrlUser.
func (q CostQos) Fields() []codec.Field {
	fields := []codec.Field{
		{Key: "enable", Value: codec.FormatUint8(q.Enable)},
		{Key: "ctrl", Value: q.Ctrl.String()},
	}
	if q.Ctrl == CtrlAuto {
		return fields
	}

	return append(fields, []codec.Field{
		{Key: "rpct", Value: codec.FormatFloat32(q.RPct)},
		{Key: "rlat", Value: codec.FormatUint32(q.RLat)},
		{Key: "wpct", Value: codec.FormatFloat32(q.WPct)},
		{Key: "wlat", Value: codec.FormatUint32(q.WLat)},
		{Key: "min", Value: codec.FormatFloat32(q.Min)},
		{Key: "max", Value: codec.FormatFloat32(q.Max)},
	}...)
}

// Limit is one device line of io.max.
// Devices without a line have every limit unbounded.
type Limit struct {
	RBPS  types.Max
	WBPS  types.Max
	RIOPS types.Max
	WIOPS types.Max
}

func (l *Limit) Set(key, value string) error {
	return codec.Assign(map[string]*types.Max{
		"rbps":  &l.RBPS,
		"wbps":  &l.WBPS,
		"riops": &l.RIOPS,
		"wiops": &l.WIOPS,
	}, types.ParseMax, key, value)
}

func (l Limit) Fields() []codec.Field {
	return []codec.Field{
		{Key: "rbps", Value: l.RBPS.String()},
		{Key: "wbps", Value: l.WBPS.String()},
		{Key: "riops", Value: l.RIOPS.String()},
		{Key: "wiops", Value: l.WIOPS.String()},
	}
}

var (
	statCodec    = codec.NestedKeyed[DeviceNumber, Stat, *Stat]{Key: ParseDeviceNumber}
	costQosCodec = codec.NestedKeyed[DeviceNumber, CostQos, *CostQos]{Key: ParseDeviceNumber}
	limitCodec   = codec.NestedKeyed[DeviceNumber, Limit, *Limit]{Key: ParseDeviceNumber}
)
