// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/spf13/cobra"
)

var checkFlags struct {
	EnableLogger bool
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check system requirements",
	Long:  `Check configuration, cgroup v2 mount and write permission of the cgroup.`,
	RunE:  withDocument(checkCmdRun),
}

func checkCmdRun() (err error) {
	err = checkConfigCmdRun()
	if err != nil {
		return
	}

	err = checkPermissionCmdRun()
	if err != nil {
		return
	}

	return
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.PersistentFlags().BoolVarP(
		&checkFlags.EnableLogger,
		"log", "l", false,
		"print logs while checking",
	)
}
