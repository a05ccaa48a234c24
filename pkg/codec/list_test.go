// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec_test

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Lists", func() {
	pids := codec.NewlineList[int]{Parse: codec.ParseInt}
	words := codec.SpaceList[string]{
		Parse:  codec.ParseString,
		Format: codec.FormatString,
	}
	numbers := codec.SpaceList[uint64]{
		Parse:  codec.ParseUint64,
		Format: codec.FormatUint64,
	}

	DescribeTable("NewlineList",
		func(content string, expected []int) {
			v, err := pids.Decode([]byte(content))
			Expect(err).To(Succeed())
			Expect(v).To(Equal(expected))
		},
		Entry("in file order", "3\n1\n2\n", []int{3, 1, 2}),
		Entry("empty file", "", []int{}),
		Entry("blank lines", "1\n\n2\n", []int{1, 2}),
		Entry("bad entry dropped", "1\nzombie\n2\n", []int{1, 2}),
	)

	DescribeTable("SpaceList",
		func(content string, expected []uint64) {
			v, err := numbers.Decode([]byte(content))
			Expect(err).To(Succeed())
			Expect(v).To(Equal(expected))
		},
		Entry("in file order", "3 1 2\n", []uint64{3, 1, 2}),
		Entry("empty file", "\n", []uint64{}),
		Entry("bad token dropped", "1 x 2", []uint64{1, 2}),
		Entry("tabs and repeated spaces", "1\t 2  3", []uint64{1, 2, 3}),
	)

	It("should join with single spaces", func() {
		Expect(string(words.Encode([]string{"+cpu", "-io"}))).
			To(Equal("+cpu -io"))
		Expect(words.Encode(nil)).To(BeEmpty())
	})
})
