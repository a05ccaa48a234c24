// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Subtree arguments", func() {
	DescribeTable("parse",
		func(args []string, enables, disables []types.ControllerType) {
			gotEnables, gotDisables, err := parseSubtreeArgs(args)
			Expect(err).To(Succeed())
			Expect(gotEnables).To(Equal(enables))
			Expect(gotDisables).To(Equal(disables))
		},
		Entry("nothing", nil, nil, nil),
		Entry("enable",
			[]string{"+memory", "+pids"},
			[]types.ControllerType{types.ControllerMemory, types.ControllerPids},
			nil,
		),
		Entry("mixed",
			[]string{"+cpu", "-io"},
			[]types.ControllerType{types.ControllerCPU},
			[]types.ControllerType{types.ControllerIO},
		),
	)

	DescribeTable("reject",
		func(arg string, expected error) {
			_, _, err := parseSubtreeArgs([]string{arg})
			Expect(err).To(MatchError(expected))
		},
		Entry("no sign", "memory", ErrBadSubtreeArg),
		Entry("sign only", "+", ErrBadSubtreeArg),
		Entry("unknown controller", "+bogus", types.ErrUnknownController),
		Entry("unknown controller is malformed", "-bogus", codec.ErrMalformed),
	)

	It("should report controllers the kernel dropped", func() {
		Expect(notEnabled(
			[]types.ControllerType{types.ControllerCPU, types.ControllerMemory},
			[]types.ControllerType{types.ControllerMemory, types.ControllerIO},
		)).To(Equal([]types.ControllerType{types.ControllerCPU}))

		Expect(notEnabled(
			[]types.ControllerType{types.ControllerMemory},
			[]types.ControllerType{types.ControllerMemory},
		)).To(BeEmpty())
	})
})
