// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/black-desk/cgroupv2/pkg/cgevmon"
	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/cgroupv2/config"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func injectedCGroup(
	*config.Config, *zap.SugaredLogger, cgroupPath,
) (
	*cgroup.CGroup, error,
) {
	panic(wire.Build(cgroupSet))
}

func injectedMonitor(
	*config.Config, *zap.SugaredLogger, cgroupPath, recursive,
) (
	*cgevmon.CGroupEventsMonitor, error,
) {
	panic(wire.Build(monitorSet))
}
