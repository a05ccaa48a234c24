// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/black-desk/cgroupv2/pkg/cgroup"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Freeze every process in the cgroup",
	Long: `Write 1 to cgroup.freeze.
Freezing is asynchronous, use "watch" to see when it is done.`,
	RunE: withDocument(func() error { return setFreezeCmdRun(true) }),
}

var thawCmd = &cobra.Command{
	Use:   "thaw",
	Short: "Thaw every process in the cgroup",
	Long:  `Write 0 to cgroup.freeze.`,
	RunE:  withDocument(func() error { return setFreezeCmdRun(false) }),
}

func setFreezeCmdRun(freeze cgroup.Freeze) (err error) {
	defer Wrap(&err, "set freeze to %v", freeze)

	log := getLogger()

	var cg *cgroup.CGroup
	cg, err = openCGroup(log)
	if err != nil {
		return
	}

	err = cg.SetFreeze(freeze)
	if err != nil {
		return
	}

	log.Infow("Freeze state requested.",
		"path", cg.Path(),
		"freeze", bool(freeze),
	)
	return
}

func init() {
	rootCmd.AddCommand(freezeCmd)
	rootCmd.AddCommand(thawCmd)
}
