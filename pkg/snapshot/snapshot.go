// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package snapshot reads the statistics of one cgroup in parallel.
package snapshot

import (
	"context"
	"errors"
	"io/fs"

	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/cpu"
	"github.com/black-desk/cgroupv2/pkg/io"
	"github.com/black-desk/cgroupv2/pkg/memory"
	"github.com/black-desk/cgroupv2/pkg/psi"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
)

// Snapshot is what Collect read.
// A nil field means the file does not exist in the cgroup,
// usually because the controller is not enabled.
type Snapshot struct {
	Path string `yaml:"path"`

	Stat   *cgroup.CGroupStat  `yaml:"stat,omitempty"`
	Events *cgroup.CGroupEvent `yaml:"events,omitempty"`

	CPU    *cpu.Stat        `yaml:"cpu,omitempty"`
	CPUPSI *psi.CPUPressure `yaml:"cpu-pressure,omitempty"`

	MemoryCurrent *uint64             `yaml:"memory-current,omitempty"`
	MemoryEvents  *memory.Event       `yaml:"memory-events,omitempty"`
	MemoryStat    map[string]uint64   `yaml:"memory-stat,omitempty"`
	MemoryPSI     *psi.MemoryPressure `yaml:"memory-pressure,omitempty"`

	IO    map[io.DeviceNumber]io.Stat `yaml:"io,omitempty"`
	IOPSI *psi.IOPressure             `yaml:"io-pressure,omitempty"`
}

// Collect reads every file of Snapshot concurrently.
// The first error other than a missing file cancels the rest.
func Collect(ctx context.Context, cg *cgroup.CGroup) (ret *Snapshot, err error) {
	defer Wrap(&err, "collect snapshot of %s", cg.Path())

	s := &Snapshot{Path: cg.Path()}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	p.Go(read(&s.Stat, cg.Stat))
	p.Go(read(&s.Events, cg.Events))
	p.Go(read(&s.CPU, cg.Cpu().Stat))
	p.Go(read(&s.CPUPSI, cg.Cpu().Pressure))
	p.Go(read(&s.MemoryCurrent, cg.Memory().Current))
	p.Go(read(&s.MemoryEvents, cg.Memory().Events))
	p.Go(readMap(&s.MemoryStat, cg.Memory().Stat))
	p.Go(read(&s.MemoryPSI, cg.Memory().Pressure))
	p.Go(readMap(&s.IO, cg.IO().Stat))
	p.Go(read(&s.IOPSI, cg.IO().Pressure))

	err = p.Wait()
	if err != nil {
		return
	}

	ret = s
	return
}

func read[T any](dst **T, load func() (T, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		v, err := load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}

		*dst = &v
		return nil
	}
}

func readMap[K comparable, V any](dst *map[K]V, load func() (map[K]V, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		v, err := load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}

		*dst = v
		return nil
	}
}
