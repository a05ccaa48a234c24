// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec_test

import (
	"github.com/black-desk/cgroupv2/pkg/codec"
	. "github.com/black-desk/lib/go/gomega-helper"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar", func() {
	DescribeTable("decode uint64",
		func(content string, expected uint64) {
			v, err := codec.Uint64.Decode([]byte(content))
			Expect(err).To(Succeed())
			Expect(v).To(Equal(expected))
		},
		Entry("with newline", "4096\n", uint64(4096)),
		Entry("without newline", "4096", uint64(4096)),
		Entry("zero", "0\n", uint64(0)),
	)

	It("should fail on empty content with ErrEmptyFile", func() {
		_, err := codec.Uint64.Decode(nil)
		Expect(err).To(MatchError(codec.ErrEmptyFile))
	})

	DescribeTable("malformed content",
		func(content string) {
			_, err := codec.Uint16.Decode([]byte(content))
			Expect(err).To(MatchError(codec.ErrMalformed))
			Expect(err).To(MatchErr(&codec.ErrMalformedField{}))
		},
		Entry("word", "max\n"),
		Entry("negative", "-1\n"),
		Entry("overflow", "65536\n"),
		Entry("only newline", "\n"),
		Entry("two newlines", "1\n\n"),
	)

	It("should not report malformed content as an empty file", func() {
		_, err := codec.Bool.Decode([]byte("true\n"))
		Expect(err).To(MatchError(codec.ErrMalformed))
		Expect(err).NotTo(MatchError(codec.ErrEmptyFile))

		_, err = codec.Uint64.Decode(nil)
		Expect(err).NotTo(MatchError(codec.ErrMalformed))
		Expect(err).NotTo(MatchErr(&codec.ErrMalformedField{}))
	})

	It("should carry the offending content", func() {
		_, err := codec.Int8.Decode([]byte("nice\n"))

		var malformed *codec.ErrMalformedField
		Expect(err).To(BeAssignableToTypeOf(malformed))
		malformed = err.(*codec.ErrMalformedField)
		Expect(malformed.Content).To(Equal("nice"))
	})

	DescribeTable("round trip",
		func(encode func() []byte, decode func([]byte) (any, error), expected any) {
			v, err := decode(encode())
			Expect(err).To(Succeed())
			Expect(v).To(Equal(expected))
		},
		Entry("int8",
			func() []byte { return codec.Int8.Encode(-20) },
			func(b []byte) (any, error) { return codec.Int8.Decode(b) },
			int8(-20),
		),
		Entry("int64",
			func() []byte { return codec.Int64.Encode(-1) },
			func(b []byte) (any, error) { return codec.Int64.Decode(b) },
			int64(-1),
		),
		Entry("bool",
			func() []byte { return codec.Bool.Encode(true) },
			func(b []byte) (any, error) { return codec.Bool.Decode(b) },
			true,
		),
		Entry("string",
			func() []byte { return codec.String.Encode("threaded") },
			func(b []byte) (any, error) { return codec.String.Decode(b) },
			"threaded",
		),
	)

	It("should only accept 0 and 1 as bool", func() {
		_, err := codec.Bool.Decode([]byte("true\n"))
		Expect(err).To(MatchError(codec.ErrMalformed))

		v, err := codec.Bool.Decode([]byte("0\n"))
		Expect(err).To(Succeed())
		Expect(v).To(BeFalse())
	})

	It("should format float32 with two decimals", func() {
		Expect(codec.FormatFloat32(95)).To(Equal("95.00"))
		Expect(codec.FormatFloat32(0.5)).To(Equal("0.50"))
	})
})
