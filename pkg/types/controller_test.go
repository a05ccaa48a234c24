// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types_test

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ControllerType", func() {
	It("should round trip every controller", func() {
		for _, c := range types.AllControllers() {
			text, err := c.MarshalText()
			Expect(err).To(Succeed())

			var decoded types.ControllerType
			Expect(decoded.UnmarshalText(text)).To(Succeed())
			Expect(decoded).To(Equal(c))
		}
	})

	DescribeTable("kernel names",
		func(c types.ControllerType, name string) {
			Expect(c.String()).To(Equal(name))
		},
		Entry(nil, types.ControllerCPUSet, "cpuset"),
		Entry(nil, types.ControllerCPU, "cpu"),
		Entry(nil, types.ControllerIO, "io"),
		Entry(nil, types.ControllerMemory, "memory"),
		Entry(nil, types.ControllerPids, "pids"),
	)

	It("should reject unknown names", func() {
		_, err := types.ParseControllerType("hugetlb")
		Expect(err).To(MatchError(types.ErrUnknownController))
		Expect(err).To(MatchError(codec.ErrMalformed))
	})

	DescribeTable("cgroup.controllers",
		func(content string, expected []types.ControllerType) {
			v, err := types.ControllerList.Decode([]byte(content))
			Expect(err).To(Succeed())
			Expect(v).To(Equal(expected))
		},
		Entry("in file order", "cpu io memory\n", []types.ControllerType{
			types.ControllerCPU,
			types.ControllerIO,
			types.ControllerMemory,
		}),
		Entry("unknown dropped", "cpu bogus memory\n", []types.ControllerType{
			types.ControllerCPU,
			types.ControllerMemory,
		}),
		Entry("none", "\n", []types.ControllerType{}),
	)
})
