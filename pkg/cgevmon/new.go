// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cgevmon reports the populated and frozen state of cgroups
// every time the kernel updates their cgroup.events file.
package cgevmon

import (
	"github.com/black-desk/cgroupv2/pkg/cgroup"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/rjeczalik/notify"
	"go.uber.org/zap"
)

// Change is the content of one cgroup.events after an update.
type Change struct {
	Path   string
	Events cgroup.CGroupEvent
}

type CGroupEventsMonitor struct {
	cg        *cgroup.CGroup
	recursive bool
	eventsOut chan Change
	eventsIn  chan notify.EventInfo
	log       *zap.SugaredLogger
}

func New(opts ...Opt) (ret *CGroupEventsMonitor, err error) {
	defer Wrap(&err, "create cgroup events monitor")

	m := &CGroupEventsMonitor{}

	m.eventsOut = make(chan Change)

	// FIXME:
	// github.com/rjeczalik/notify drop events if receiver is too slow.
	// https://github.com/rjeczalik/notify/issues/85
	// https://github.com/rjeczalik/notify/issues/98
	m.eventsIn = make(chan notify.EventInfo, 20)

	for i := range opts {
		m, err = opts[i](m)
		if err != nil {
			return
		}
	}

	if m.log == nil {
		m.log = zap.NewNop().Sugar()
	}

	if m.cg == nil {
		err = ErrCGroupMissing
		return
	}

	ret = m

	m.log.Debugw("Create a cgroup events monitor.",
		"path", m.cg.Path(),
		"recursive", m.recursive,
	)

	return
}

type Opt func(m *CGroupEventsMonitor) (ret *CGroupEventsMonitor, err error)

func WithCGroup(cg *cgroup.CGroup) Opt {
	return func(m *CGroupEventsMonitor) (ret *CGroupEventsMonitor, err error) {
		if cg == nil {
			err = ErrCGroupMissing
			return
		}

		m.cg = cg
		ret = m
		return
	}
}

// WithRecursive makes the monitor report every cgroup under the watched one,
// including the ones created while it runs.
func WithRecursive() Opt {
	return func(m *CGroupEventsMonitor) (ret *CGroupEventsMonitor, err error) {
		m.recursive = true
		ret = m
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(m *CGroupEventsMonitor) (ret *CGroupEventsMonitor, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		m.log = log
		ret = m
		return
	}
}
