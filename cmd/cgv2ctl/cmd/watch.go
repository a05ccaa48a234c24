// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/black-desk/cgroupv2/pkg/cgevmon"
	"github.com/black-desk/cgroupv2/pkg/cgroupv2/config"
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

var watchFlags struct {
	Recursive bool
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print populated and frozen state of the cgroup on every change",
	RunE:  withDocument(watchCmdRun),
}

func watchCmdRun() (err error) {
	defer Wrap(&err, "watch cgroup events")

	log := getLogger()

	var cfg *config.Config
	cfg, err = loadConfig(log)
	if err != nil {
		return
	}

	var mon *cgevmon.CGroupEventsMonitor
	mon, err = injectedMonitor(
		cfg, log,
		cgroupPath(flags.CGroup), recursive(watchFlags.Recursive),
	)
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

		sig := <-sigCh
		cancel(&ErrCancelBySignal{Signal: sig})
	}()

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(mon.Run)
	p.Go(func(ctx context.Context) error {
		for change := range mon.Events() {
			fmt.Printf("%s populated=%t frozen=%t\n",
				change.Path, change.Events.Populated, change.Events.Frozen)
		}
		return nil
	})

	err = p.Wait()
	if err == nil {
		return
	}

	var cancelBySignal *ErrCancelBySignal
	if errors.As(context.Cause(ctx), &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	return
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(
		&watchFlags.Recursive,
		"recursive", "r", false,
		"also watch every cgroup below",
	)
}
