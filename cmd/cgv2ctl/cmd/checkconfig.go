// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkConfigCmd represents the config command
var checkConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Check configuration",
	Long:  `Validate configuration and find the cgroup v2 mount point.`,
	RunE:  withDocument(checkConfigCmdRun),
}

func checkLogger() *zap.SugaredLogger {
	if checkFlags.EnableLogger {
		return getLogger()
	}

	return zap.NewNop().Sugar()
}

func checkConfigCmdRun() (err error) {
	defer Wrap(&err, "check configuration")

	_, err = loadConfig(checkLogger())
	return
}

func init() {
	checkCmd.AddCommand(checkConfigCmd)
}
