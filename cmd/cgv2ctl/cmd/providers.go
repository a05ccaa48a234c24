// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/black-desk/cgroupv2/pkg/cgevmon"
	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/cgroupv2"
	"github.com/black-desk/cgroupv2/pkg/cgroupv2/config"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// cgroupPath is a cgroup path relative to the configured root.
type cgroupPath string

type recursive bool

func provideHierarchy(
	cfg *config.Config, logger *zap.SugaredLogger,
) (
	*cgroupv2.Hierarchy, error,
) {
	return cgroupv2.New(
		cgroupv2.WithConfig(cfg),
		cgroupv2.WithLogger(logger),
	)
}

func provideCGroup(
	h *cgroupv2.Hierarchy, path cgroupPath,
) (
	*cgroup.CGroup, error,
) {
	return h.Open(string(path))
}

func provideMonitor(
	cg *cgroup.CGroup, r recursive, logger *zap.SugaredLogger,
) (
	*cgevmon.CGroupEventsMonitor, error,
) {
	opts := []cgevmon.Opt{
		cgevmon.WithCGroup(cg),
		cgevmon.WithLogger(logger),
	}
	if r {
		opts = append(opts, cgevmon.WithRecursive())
	}

	return cgevmon.New(opts...)
}

var cgroupSet = wire.NewSet(
	provideCGroup,
	provideHierarchy,
)

var monitorSet = wire.NewSet(
	cgroupSet,
	provideMonitor,
)
