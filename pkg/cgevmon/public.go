// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgevmon

import (
	"context"
	"path/filepath"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/rjeczalik/notify"
)

// Events returns the channel changes are sent to.
// It is closed when Run returns.
func (m *CGroupEventsMonitor) Events() <-chan Change {
	return m.eventsOut
}

// Run sends the current state first,
// then one Change per update until ctx is done.
// A cgroup.events that cannot be decoded stops it.
func (m *CGroupEventsMonitor) Run(ctx context.Context) (err error) {
	defer Wrap(&err, "running cgroup events monitor")
	defer close(m.eventsOut)

	err = notify.Watch(m.watchPath(), m.eventsIn, m.watchEvents()...)
	if err != nil {
		return
	}
	defer notify.Stop(m.eventsIn)

	if m.recursive {
		m.log.Info("Going through cgroupfs first time...")
		err = filepath.WalkDir(m.cg.Path(), m.walkFn(ctx))
		m.log.Info("Going through cgroupfs first time...Done.")
	} else {
		err = m.report(ctx, m.cg.Path())
	}
	if err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case event := <-m.eventsIn:
			err = m.handle(ctx, event)
			if err != nil {
				return
			}
		}
	}
}
