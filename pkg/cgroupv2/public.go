// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgroupv2

import (
	"path/filepath"
	"strings"

	"github.com/black-desk/cgroupv2/pkg/cgroup"
	. "github.com/black-desk/lib/go/errwrap"
)

// Root is the view of the configured cgroup directory.
func (h *Hierarchy) Root() *cgroup.CGroup {
	return h.root
}

// Open returns the view of the cgroup at rel,
// a path relative to Root.
// A leading "/" is ignored, "", "." and "/" all mean Root itself.
// Paths climbing above Root fail with ErrOutsideRoot.
func (h *Hierarchy) Open(rel string) (ret *cgroup.CGroup, err error) {
	defer Wrap(&err, "open cgroup %s", rel)

	rel = filepath.Clean(strings.TrimLeft(rel, "/"))
	if rel == "." {
		ret = h.root
		return
	}

	if rel == ".." || strings.HasPrefix(rel, "../") {
		err = ErrOutsideRoot
		return
	}

	ret, err = cgroup.New(
		cgroup.WithPath(filepath.Join(h.root.Path(), rel)),
		cgroup.WithLogger(h.log),
	)
	return
}
