// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cgevmon_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/black-desk/cgroupv2/internal/test/fakecg"
	"github.com/black-desk/cgroupv2/internal/test/logger"
	"github.com/black-desk/cgroupv2/pkg/cgevmon"
	"github.com/black-desk/cgroupv2/pkg/cgroup"
	"github.com/black-desk/cgroupv2/pkg/codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sourcegraph/conc/pool"
)

func TestCGEvMon(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "cgroup events monitor Suite")
}

const (
	populated = "populated 1\nfrozen 0\n"
	frozen    = "populated 1\nfrozen 1\n"
	empty     = "populated 0\nfrozen 0\n"
)

var _ = Describe("CGroupEventsMonitor", func() {
	var (
		path   string
		cg     *cgroup.CGroup
		ctx    context.Context
		cancel context.CancelFunc
		p      *pool.ErrorPool
	)

	BeforeEach(func() {
		path = fakecg.New(fakecg.Files{
			cgroup.FileEvents:                  populated,
			"app.slice/" + cgroup.FileEvents:   empty,
			"app.slice/" + cgroup.FileProcs:    "",
			"other.slice/" + cgroup.FileFreeze: "0\n",
		})

		var err error
		cg, err = cgroup.New(cgroup.WithPath(path))
		Expect(err).To(Succeed())

		ctx, cancel = context.WithCancel(context.Background())
		p = pool.New().WithErrors()
	})

	start := func(opts ...cgevmon.Opt) *cgevmon.CGroupEventsMonitor {
		log, err := logger.New()
		Expect(err).To(Succeed())

		opts = append([]cgevmon.Opt{
			cgevmon.WithCGroup(cg),
			cgevmon.WithLogger(log),
		}, opts...)

		mon, err := cgevmon.New(opts...)
		Expect(err).To(Succeed())

		p.Go(func() error {
			return mon.Run(ctx)
		})

		return mon
	}

	It("should need a cgroup", func() {
		_, err := cgevmon.New()
		Expect(err).To(MatchError(cgevmon.ErrCGroupMissing))

		_, err = cgevmon.New(cgevmon.WithCGroup(nil))
		Expect(err).To(MatchError(cgevmon.ErrCGroupMissing))
	})

	Context("watching one cgroup", func() {
		var mon *cgevmon.CGroupEventsMonitor

		BeforeEach(func() {
			mon = start()
		})

		AfterEach(func() {
			cancel()
			Expect(p.Wait()).To(MatchError(context.Canceled))
			Eventually(mon.Events()).Should(BeClosed())
		})

		It("should send the current state first", func() {
			Eventually(mon.Events()).Should(Receive(Equal(cgevmon.Change{
				Path:   path,
				Events: cgroup.CGroupEvent{Populated: true},
			})))
		})

		It("should send changes", func() {
			Eventually(mon.Events()).Should(Receive())

			fakecg.Write(path, fakecg.Files{cgroup.FileEvents: frozen})

			Eventually(mon.Events()).WithTimeout(5 * time.Second).
				Should(Receive(Equal(cgevmon.Change{
					Path:   path,
					Events: cgroup.CGroupEvent{Populated: true, Frozen: true},
				})))
		})
	})

	Context("watching a cgroup whose cgroup.events breaks", func() {
		It("should stop with the decode error", func() {
			mon := start()
			Eventually(mon.Events()).Should(Receive())

			fakecg.Write(path, fakecg.Files{cgroup.FileEvents: "populated x\n"})

			Eventually(mon.Events()).WithTimeout(5 * time.Second).Should(BeClosed())
			cancel()

			err := p.Wait()
			Expect(err).To(MatchError(codec.ErrMalformed))
			Expect(err).NotTo(MatchError(context.Canceled))
		})
	})

	Context("watching a subtree", func() {
		var mon *cgevmon.CGroupEventsMonitor

		BeforeEach(func() {
			mon = start(cgevmon.WithRecursive())
		})

		AfterEach(func() {
			cancel()
			Expect(p.Wait()).To(MatchError(context.Canceled))
		})

		It("should send the state of every cgroup", func() {
			var changes []cgevmon.Change
			for range 2 {
				var change cgevmon.Change
				Eventually(mon.Events()).Should(Receive(&change))
				changes = append(changes, change)
			}

			Expect(changes).To(ConsistOf(
				cgevmon.Change{
					Path:   path,
					Events: cgroup.CGroupEvent{Populated: true},
				},
				cgevmon.Change{
					Path:   filepath.Join(path, "app.slice"),
					Events: cgroup.CGroupEvent{},
				},
			))
		})

		It("should send changes of descendants", func() {
			for range 2 {
				Eventually(mon.Events()).Should(Receive())
			}

			fakecg.Write(path, fakecg.Files{"app.slice/" + cgroup.FileEvents: populated})

			Eventually(mon.Events()).WithTimeout(5 * time.Second).
				Should(Receive(Equal(cgevmon.Change{
					Path:   filepath.Join(path, "app.slice"),
					Events: cgroup.CGroupEvent{Populated: true},
				})))
		})
	})

	It("should fail without cgroup.events", func() {
		missing, err := cgroup.New(cgroup.WithPath(filepath.Join(path, "missing")))
		Expect(err).To(Succeed())

		mon, err := cgevmon.New(cgevmon.WithCGroup(missing))
		Expect(err).To(Succeed())

		Expect(mon.Run(ctx)).NotTo(Succeed())
		Expect(mon.Events()).To(BeClosed())
		cancel()
	})
})
