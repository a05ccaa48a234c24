// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/cgroupv2/config"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/black-desk/lib/go/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flags struct {
	CfgPath string
	CGroup  string
}

var rootCmd = &cobra.Command{
	Use:   "cgv2ctl",
	Short: "Inspect and adjust cgroups through cgroup v2 interface files",
	Long: `cgv2ctl reads and writes the interface files of one cgroup.
The cgroup is given by --cgroup, relative to the cgroup root
(or the delegated subtree) the configuration resolves to.`,
	SilenceUsage: true,
}

// withDocument appends the help pointer to a failed command.
func withDocument(run func() error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf("\n\n%w\n"+CheckDocumentString, err)
		}()

		err = run()
		return
	}
}

func loadConfig(log *zap.SugaredLogger) (ret *config.Config, err error) {
	defer Wrap(&err, "load configuration from %s", flags.CfgPath)

	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == CGV2CtlCfgPath {
		log.Debugw("Configuration file missing fallback to default config.")

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		return
	}

	ret, err = config.New(
		config.WithContent(content),
		config.WithLogger(log),
	)
	return
}

// openCGroup opens the cgroup selected by --cgroup.
func openCGroup(log *zap.SugaredLogger) (ret *cgroup.CGroup, err error) {
	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	return injectedCGroup(cfg, log, cgroupPath(flags.CGroup))
}

func getLogger() *zap.SugaredLogger {
	return logger.Get("cgv2ctl")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cfgPath := os.Getenv("CONFIGURATION_DIRECTORY")
	if cfgPath == "" {
		cfgPath = CGV2CtlCfgPath
	} else {
		cfgPath += "/config.yaml"
	}

	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", cfgPath,
		"the configure file to use",
	)

	rootCmd.PersistentFlags().StringVarP(
		&flags.CGroup,
		"cgroup", "g", "",
		"the cgroup to operate on, relative to the configured root",
	)
}
