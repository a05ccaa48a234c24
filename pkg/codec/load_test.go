// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec_test

import (
	"errors"

	"github.com/black-desk/cgroupv2/pkg/codec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type memFiles map[string][]byte

var errNoFile = errors.New("no such file")

func (m memFiles) Read(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, errNoFile
	}
	return content, nil
}

func (m memFiles) Write(name string, content []byte) error {
	m[name] = content
	return nil
}

var _ = Describe("Load and Store", func() {
	It("should decode what it reads", func() {
		files := memFiles{"cpu.weight": []byte("100\n")}

		v, err := codec.Load[uint16](files, "cpu.weight", codec.Uint16)
		Expect(err).To(Succeed())
		Expect(v).To(Equal(uint16(100)))
	})

	It("should keep read errors in the chain", func() {
		_, err := codec.Load[uint16](memFiles{}, "cpu.weight", codec.Uint16)
		Expect(err).To(MatchError(errNoFile))
		Expect(err.Error()).To(ContainSubstring("cpu.weight"))
	})

	It("should keep decode errors in the chain", func() {
		files := memFiles{"cpu.weight": []byte("")}

		_, err := codec.Load[uint16](files, "cpu.weight", codec.Uint16)
		Expect(err).To(MatchError(codec.ErrEmptyFile))
	})

	It("should write the encoded value", func() {
		files := memFiles{}

		Expect(codec.Store(files, "cpu.weight", codec.Uint16, 200)).To(Succeed())
		Expect(string(files["cpu.weight"])).To(Equal("200"))
	})
})
