// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cgroupv2 opens cgroup views relative to the directory
// a configuration resolves to.
package cgroupv2

import (
	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/cgroupv2/config"
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

type Hierarchy struct {
	cfg  *config.Config
	log  *zap.SugaredLogger
	root *cgroup.CGroup
}

type Opt = (func(*Hierarchy) (*Hierarchy, error))

func New(opts ...Opt) (ret *Hierarchy, err error) {
	defer Wrap(&err, "create cgroup hierarchy")

	h := &Hierarchy{}
	for i := range opts {
		h, err = opts[i](h)
		if err != nil {
			h = nil
			return
		}
	}

	if h.log == nil {
		h.log = zap.NewNop().Sugar()
	}

	if h.cfg == nil {
		err = ErrConfigMissing
		return
	}

	h.root, err = cgroup.New(
		cgroup.WithPath(h.cfg.Path()),
		cgroup.WithLogger(h.log),
	)
	if err != nil {
		return
	}

	ret = h

	h.log.Debugw("Create a new cgroup hierarchy.",
		"root", h.root.Path(),
	)

	return
}

func WithConfig(cfg *config.Config) Opt {
	return func(h *Hierarchy) (ret *Hierarchy, err error) {
		h.cfg = cfg
		ret = h
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(h *Hierarchy) (ret *Hierarchy, err error) {
		h.log = log
		ret = h
		return
	}
}
