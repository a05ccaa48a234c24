// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgroup

import (
	"strings"

	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/types"
)

// CGroupEvent is the content of cgroup.events.
type CGroupEvent struct {
	Populated bool `yaml:"populated"`
	Frozen    bool `yaml:"frozen"`
}

func (e *CGroupEvent) Set(key, value string) error {
	return codec.Assign(map[string]*bool{
		"populated": &e.Populated,
		"frozen":    &e.Frozen,
	}, codec.ParseBool, key, value)
}

// CGroupStat is the content of cgroup.stat.
type CGroupStat struct {
	NrDescendants      uint32 `yaml:"nr_descendants"`
	NrDyingDescendants uint32 `yaml:"nr_dying_descendants"`
}

func (s *CGroupStat) Set(key, value string) error {
	return codec.Assign(map[string]*uint32{
		"nr_descendants":       &s.NrDescendants,
		"nr_dying_descendants": &s.NrDyingDescendants,
	}, codec.ParseUint32, key, value)
}

// Freeze is the content of cgroup.freeze.
type Freeze bool

func ParseFreeze(s string) (ret Freeze, err error) {
	var v bool
	v, err = codec.ParseBool(s)
	ret = Freeze(v)
	return
}

func (f Freeze) String() string {
	return codec.FormatBool(bool(f))
}

// SubtreeControlCommand builds the line written to cgroup.subtree_control:
// "+name" for every controller to enable, then "-name" for every one to
// disable, separated by single spaces.
func SubtreeControlCommand(enables, disables []types.ControllerType) string {
	tokens := make([]string, 0, len(enables)+len(disables))
	for i := range enables {
		tokens = append(tokens, "+"+enables[i].String())
	}
	for i := range disables {
		tokens = append(tokens, "-"+disables[i].String())
	}

	return strings.Join(tokens, " ")
}

var (
	typeCodec   = codec.Text[CGroupType]()
	eventCodec  = codec.FlatKeyed[CGroupEvent, *CGroupEvent]{}
	statCodec   = codec.FlatKeyed[CGroupStat, *CGroupStat]{}
	freezeCodec = codec.Scalar[Freeze]{Parse: ParseFreeze, Format: Freeze.String}
	pidCodec    = codec.NewlineList[int]{Parse: codec.ParseInt}
)
