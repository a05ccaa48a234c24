// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package types_test

import (
	"math"

	"github.com/black-desk/cgroupv2/pkg/codec"
	"github.com/black-desk/cgroupv2/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
)

var _ = Describe("Max", func() {
	DescribeTable("round trip",
		func(v types.Max, text string) {
			Expect(string(types.MaxCodec.Encode(v))).To(Equal(text))

			decoded, err := types.MaxCodec.Decode([]byte(text + "\n"))
			Expect(err).To(Succeed())
			Expect(decoded).To(Equal(v))
		},
		Entry("unbounded", types.Unbounded, "max"),
		Entry("zero", types.Bounded(0), "0"),
		Entry("bounded", types.Bounded(15), "15"),
		Entry("largest", types.Bounded(math.MaxUint64), "18446744073709551615"),
	)

	It("should be unbounded by default", func() {
		var m types.Max
		Expect(m).To(Equal(types.Unbounded))
		Expect(m.String()).To(Equal("max"))
	})

	DescribeTable("reject",
		func(text string) {
			_, err := types.MaxCodec.Decode([]byte(text))
			Expect(err).To(MatchError(codec.ErrMalformed))
		},
		Entry("negative", "-1\n"),
		Entry("upper case", "MAX\n"),
		Entry("word", "unlimited\n"),
		Entry("blank", "\n"),
	)

	It("should fail on empty file", func() {
		_, err := types.MaxCodec.Decode([]byte{})
		Expect(err).To(MatchError(codec.ErrEmptyFile))
	})

	It("should be usable in yaml", func() {
		var v struct {
			Limit types.Max `yaml:"limit"`
		}

		Expect(yaml.Unmarshal([]byte("limit: 1024\n"), &v)).To(Succeed())
		Expect(v.Limit).To(Equal(types.Bounded(1024)))

		Expect(yaml.Unmarshal([]byte("limit: max\n"), &v)).To(Succeed())
		Expect(v.Limit).To(Equal(types.Unbounded))
	})
})
