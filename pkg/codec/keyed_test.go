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

type counters struct {
	Hits   uint64
	Misses uint64
}

func (c *counters) Set(key, value string) error {
	return codec.Assign(map[string]*uint64{
		"hits":   &c.Hits,
		"misses": &c.Misses,
	}, codec.ParseUint64, key, value)
}

func (c counters) Fields() []codec.Field {
	return []codec.Field{
		{Key: "hits", Value: codec.FormatUint64(c.Hits)},
		{Key: "misses", Value: codec.FormatUint64(c.Misses)},
	}
}

var _ = Describe("FlatKeyed", func() {
	c := codec.FlatKeyed[counters, *counters]{}

	DescribeTable("decode",
		func(content string, expected counters) {
			v, err := c.Decode([]byte(content))
			Expect(err).To(Succeed())
			Expect(v).To(Equal(expected))
		},
		Entry("all keys", "hits 3\nmisses 4\n", counters{Hits: 3, Misses: 4}),
		Entry("missing key keeps default", "misses 4\n", counters{Misses: 4}),
		Entry("unknown key ignored", "hits 1\nevictions 9\n", counters{Hits: 1}),
		Entry("empty file", "", counters{}),
		Entry("stops at blank line", "hits 1\n\nmisses 2\n", counters{Hits: 1}),
	)

	It("should fail as a whole on a bad known value", func() {
		v, err := c.Decode([]byte("hits 1\nmisses many\n"))
		Expect(err).To(MatchError(codec.ErrMalformed))
		Expect(v).To(Equal(counters{}))

		var malformed *codec.ErrMalformedField
		Expect(err).To(BeAssignableToTypeOf(malformed))
		malformed = err.(*codec.ErrMalformedField)
		Expect(malformed.Key).To(Equal("misses"))
		Expect(malformed.Content).To(Equal("many"))
	})

	It("should ignore a bad unknown value", func() {
		v, err := c.Decode([]byte("hits 1\nevictions many\n"))
		Expect(err).To(Succeed())
		Expect(v).To(Equal(counters{Hits: 1}))
	})
})

var _ = Describe("FlatKeyedMap", func() {
	c := codec.FlatKeyedMap[uint64]{Parse: codec.ParseUint64}

	It("should keep every key", func() {
		v, err := c.Decode([]byte("anon 4096\nfile 0\nkernel 8192\n"))
		Expect(err).To(Succeed())
		Expect(v).To(Equal(map[string]uint64{
			"anon":   4096,
			"file":   0,
			"kernel": 8192,
		}))
	})

	It("should fail on a bad value", func() {
		_, err := c.Decode([]byte("anon x\n"))
		Expect(err).To(MatchErr(&codec.ErrMalformedField{}))
	})
})

var _ = Describe("NestedKeyed", func() {
	c := codec.NestedKeyed[string, counters, *counters]{Key: codec.ParseString}
	byNumber := codec.NestedKeyed[uint32, counters, *counters]{Key: codec.ParseUint32}

	It("should decode one record per line", func() {
		v, err := c.Decode([]byte("a hits=1 misses=2\nb hits=3\n"))
		Expect(err).To(Succeed())
		Expect(v).To(Equal(map[string]counters{
			"a": {Hits: 1, Misses: 2},
			"b": {Hits: 3},
		}))
	})

	It("should ignore unknown keys and blank lines", func() {
		v, err := c.Decode([]byte("a hits=1 evictions=x\n\n"))
		Expect(err).To(Succeed())
		Expect(v).To(Equal(map[string]counters{"a": {Hits: 1}}))
	})

	It("should fail on a bad first key", func() {
		_, err := byNumber.Decode([]byte("sda hits=1\n"))
		Expect(err).To(MatchError(codec.ErrMalformed))
	})

	It("should fail on a bad known value", func() {
		_, err := c.Decode([]byte("a hits=lots\n"))
		Expect(err).To(MatchError(codec.ErrMalformed))
	})

	It("should format a line from fields", func() {
		line := codec.EncodeLine(codec.FormatUint32, 8, counters{Hits: 1, Misses: 2})
		Expect(string(line)).To(Equal("8 hits=1 misses=2"))

		v, err := byNumber.Decode(line)
		Expect(err).To(Succeed())
		Expect(v).To(HaveKeyWithValue(uint32(8), counters{Hits: 1, Misses: 2}))
	})
})
