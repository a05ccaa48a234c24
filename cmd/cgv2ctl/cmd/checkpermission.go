// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/cgroupv2/config"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
	"kernel.org/pub/linux/libs/security/libcap/cap"
)

// checkPermissionCmd represents the permission command
var checkPermissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Check permission",
	Long: `Check cgv2ctl can write the interface files of the cgroup.
Outside a delegated subtree, also report the capabilities
that let cgv2ctl write files owned by root.`,
	RunE: withDocument(checkPermissionCmdRun),
}

// writableFiles are what the other commands write.
var writableFiles = []string{
	cgroup.FileProcs,
	cgroup.FileSubtreeControl,
	cgroup.FileFreeze,
}

// privilegedCaps are enough to write any cgroup interface file.
var privilegedCaps = []cap.Value{
	cap.SYS_ADMIN,
	cap.DAC_OVERRIDE,
}

func checkWritable(dir string, files []string) (err error) {
	for i := range files {
		path := filepath.Join(dir, files[i])

		err = unix.Access(path, unix.W_OK)
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrNotWritable, path, err)
			return
		}
	}

	return
}

// effectiveCaps returns the values of want effective in capSet.
func effectiveCaps(capSet *cap.Set, want []cap.Value) (ret []cap.Value, err error) {
	defer Wrap(&err, "get effective capabilities")

	for i := range want {
		var has bool
		has, err = capSet.GetFlag(cap.Effective, want[i])
		if err != nil {
			return
		}

		if has {
			ret = append(ret, want[i])
		}
	}

	return
}

func checkPermissionCmdRun() (err error) {
	defer Wrap(&err, "check permission")

	log := checkLogger()

	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	var cg *cgroup.CGroup
	cg, err = injectedCGroup(cfg, log, cgroupPath(flags.CGroup))
	if err != nil {
		return
	}

	if cfg.Delegate == nil {
		var caps []cap.Value
		caps, err = effectiveCaps(cap.GetProc(), privilegedCaps)
		if err != nil {
			return
		}

		if len(caps) == 0 {
			log.Warnw("Neither CAP_SYS_ADMIN nor CAP_DAC_OVERRIDE is effective, "+
				"files owned by root are read-only.",
				"path", cg.Path(),
			)
		} else {
			log.Infow("Privileged capabilities are effective.",
				"capabilities", fmt.Sprint(caps),
			)
		}
	}

	err = checkWritable(cg.Path(), writableFiles)
	if err != nil {
		return
	}

	log.Infow("Interface files are writable.",
		"path", cg.Path(),
	)
	return
}

func init() {
	checkCmd.AddCommand(checkPermissionCmd)
}
