// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgroup

import (
	"strings"

	"github.com/black-desk/cgroupv2/pkg/codec"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=CGroupType -linecomment

// CGroupType is the content of cgroup.type.
type CGroupType uint8

const (
	CGroupTypeDomain         CGroupType = iota // domain
	CGroupTypeDomainThreaded                   // domain threaded
	CGroupTypeDomainInvalid                    // domain invalid
	CGroupTypeThreaded                         // threaded
)

func ParseCGroupType(s string) (ret CGroupType, err error) {
	s = strings.TrimSpace(s)

	for t := CGroupTypeDomain; t <= CGroupTypeThreaded; t++ {
		if t.String() == s {
			ret = t
			return
		}
	}

	err = codec.Malformed("", s, ErrUnknownCGroupType)
	return
}

func (t CGroupType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *CGroupType) UnmarshalText(text []byte) (err error) {
	var v CGroupType
	v, err = ParseCGroupType(string(text))
	if err != nil {
		return
	}

	*t = v
	return
}
