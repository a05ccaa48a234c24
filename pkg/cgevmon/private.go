// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgevmon

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/rjeczalik/notify"
)

func (m *CGroupEventsMonitor) watchPath() string {
	if m.recursive {
		return m.cg.Path() + "/..."
	}

	return filepath.Join(m.cg.Path(), cgroup.FileEvents)
}

func (m *CGroupEventsMonitor) watchEvents() []notify.Event {
	if m.recursive {
		return []notify.Event{notify.Write, notify.Create}
	}

	return []notify.Event{notify.Write}
}

func (m *CGroupEventsMonitor) walkFn(ctx context.Context) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				m.log.Debugw(
					"Cgroup had been removed.",
					"path", path,
				)
				return nil
			}

			m.log.Errorw(
				"Errors occurred while first time going through cgroupfs.",
				"path", path,
				"error", err,
			)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		return m.report(ctx, path)
	}
}

func (m *CGroupEventsMonitor) handle(ctx context.Context, event notify.EventInfo) error {
	path := event.Path()

	switch {
	case filepath.Base(path) == cgroup.FileEvents:
		return m.report(ctx, filepath.Dir(path))
	case event.Event() == notify.Create:
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return nil
		}
		return m.report(ctx, path)
	}

	return nil
}

// report reads cgroup.events of the cgroup at path and sends it out.
// Cgroups without cgroup.events are skipped.
func (m *CGroupEventsMonitor) report(ctx context.Context, path string) (err error) {
	cg := m.cg
	if path != m.cg.Path() {
		cg, err = cgroup.New(
			cgroup.WithPath(path),
			cgroup.WithLogger(m.log),
		)
		if err != nil {
			return
		}
	}

	var events cgroup.CGroupEvent
	events, err = cg.Events()
	if errors.Is(err, fs.ErrNotExist) {
		m.log.Debugw("Cgroup events missing, skip.",
			"path", path,
			"error", err,
		)
		err = nil
		return
	}
	if err != nil {
		return
	}

	return m.send(ctx, Change{Path: path, Events: events})
}

func (m *CGroupEventsMonitor) send(ctx context.Context, change Change) (err error) {
	m.log.Debugw("New cgroup events.",
		"change", change,
	)

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	case m.eventsOut <- change:
		m.log.Debugw("Cgroup events sent.",
			"path", change.Path,
		)
	}

	return
}
