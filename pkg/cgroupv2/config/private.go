// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"os"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sys/unix"
)

func (c *Config) check() (err error) {
	defer Wrap(&err, "check configuration")

	var validator = validator.New()
	err = validator.Struct(c)
	if err != nil {
		err = fmt.Errorf("validator: %w", err)
		return
	}

	if c.CgroupRoot == CGroupRootAuto {
		var cgroupRoot CGroupRoot
		cgroupRoot, err = getCgroupRoot()
		if err != nil {
			return
		}

		c.CgroupRoot = cgroupRoot

		c.log.Infow(
			"Cgroup mount point auto detection done.",
			"cgroup root", cgroupRoot,
		)
	}

	if c.Delegate != nil && c.Delegate.UID == nil {
		uid := uint32(os.Getuid())
		c.Delegate.UID = &uid
	}

	c.log.Debugw("Configuration checked.",
		"cgroup root", c.CgroupRoot,
		"path", c.Path(),
	)

	return
}

var cgroupRootCandidates = []string{"/sys/fs/cgroup/unified", "/sys/fs/cgroup"}

func getCgroupRoot() (cgroupRoot CGroupRoot, err error) {
	defer Wrap(&err, "get cgroupv2 mount point")

	for i := range cgroupRootCandidates {
		if !isCgroup2(cgroupRootCandidates[i]) {
			continue
		}

		cgroupRoot = CGroupRoot(cgroupRootCandidates[i])
		return
	}

	err = ErrCannotFoundCgroupv2Root
	return
}

func isCgroup2(path string) bool {
	var st unix.Statfs_t
	err := unix.Statfs(path, &st)
	if err != nil {
		return false
	}

	return int64(st.Type) == unix.CGROUP2_SUPER_MAGIC
}
