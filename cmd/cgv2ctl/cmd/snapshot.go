// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"os"

	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/snapshot"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print statistics of the cgroup",
	Long: `Read cgroup, cpu, memory and io statistics of the cgroup
and print them as YAML.
Statistics of controllers not enabled are left out.`,
	RunE: withDocument(snapshotCmdRun),
}

func snapshotCmdRun() (err error) {
	defer Wrap(&err, "take snapshot")

	log := getLogger()

	var cg *cgroup.CGroup
	cg, err = openCGroup(log)
	if err != nil {
		return
	}

	var s *snapshot.Snapshot
	s, err = snapshot.Collect(context.Background(), cg)
	if err != nil {
		return
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()

	err = enc.Encode(s)
	return
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
