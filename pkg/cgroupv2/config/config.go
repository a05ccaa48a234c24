// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

type Config struct {
	Version string `yaml:"version" validate:"required,eq=1"`

	// CgroupRoot is the mount point of the cgroup2 filesystem.
	// AUTO means detect it on load.
	CgroupRoot CGroupRoot `yaml:"cgroup-root" validate:"required,dirpath|eq=AUTO"`
	// Delegate makes Path point to the subtree systemd delegates to
	// the user manager of a uid,
	// which is the part of the hierarchy an unprivileged user can write.
	Delegate *Delegate `yaml:"delegate"`

	log *zap.SugaredLogger `yaml:"-"`
}

type CGroupRoot string

type Delegate struct {
	// UID defaults to the uid of the current process.
	UID *uint32 `yaml:"uid"`
}

// Path is the cgroup directory every relative cgroup path is resolved in.
func (c *Config) Path() string {
	root := string(c.CgroupRoot)
	if c.Delegate == nil || c.Delegate.UID == nil {
		return root
	}

	uid := *c.Delegate.UID
	return filepath.Join(
		root,
		"user.slice",
		fmt.Sprintf("user-%d.slice", uid),
		fmt.Sprintf("user@%d.service", uid),
	)
}
