// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/types"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/spf13/cobra"
)

var subtreeCmd = &cobra.Command{
	Use:   "subtree [+controller|-controller]...",
	Short: "Show or change controllers enabled for children",
	Long: `Without arguments, print cgroup.subtree_control.
Otherwise enable every +controller and disable every -controller,
then print the controllers the kernel actually enabled.`,
	Example: `  cgv2ctl subtree +memory +pids -io`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDocument(func() error {
			return subtreeCmdRun(args)
		})(cmd, args)
	},
}

func parseSubtreeArgs(args []string) (enables, disables []types.ControllerType, err error) {
	defer Wrap(&err, "parse subtree control arguments")

	for i := range args {
		arg := args[i]
		if len(arg) < 2 {
			err = fmt.Errorf("%w: %q", ErrBadSubtreeArg, arg)
			return
		}

		var c types.ControllerType
		c, err = types.ParseControllerType(arg[1:])
		if err != nil {
			return
		}

		switch arg[0] {
		case '+':
			enables = append(enables, c)
		case '-':
			disables = append(disables, c)
		default:
			err = fmt.Errorf("%w: %q", ErrBadSubtreeArg, arg)
			return
		}
	}

	return
}

func subtreeCmdRun(args []string) (err error) {
	defer Wrap(&err, "update subtree control")

	enables, disables, err := parseSubtreeArgs(args)
	if err != nil {
		return
	}

	log := getLogger()

	var cg *cgroup.CGroup
	cg, err = openCGroup(log)
	if err != nil {
		return
	}

	err = cg.SetSubtreeControl(enables, disables)
	if err != nil {
		return
	}

	var enabled []types.ControllerType
	enabled, err = cg.SubtreeControl()
	if err != nil {
		return
	}

	fmt.Println(string(types.ControllerList.Encode(enabled)))

	if missing := notEnabled(enables, enabled); len(missing) != 0 {
		log.Warnw("Kernel did not enable some controllers.",
			"path", cg.Path(),
			"controllers", string(types.ControllerList.Encode(missing)),
		)
	}

	return
}

func notEnabled(want, got []types.ControllerType) (ret []types.ControllerType) {
	enabled := map[types.ControllerType]struct{}{}
	for i := range got {
		enabled[got[i]] = struct{}{}
	}

	for i := range want {
		if _, ok := enabled[want[i]]; !ok {
			ret = append(ret, want[i])
		}
	}

	return
}

func init() {
	rootCmd.AddCommand(subtreeCmd)
}
