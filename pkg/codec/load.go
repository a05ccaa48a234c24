// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	. "github.com/black-desk/lib/go/errwrap"
)

type Decoder[T any] interface {
	Decode(content []byte) (T, error)
}

type Encoder[T any] interface {
	Encode(v T) []byte
}

// DecoderFunc adapts a plain function to Decoder.
type DecoderFunc[T any] func(content []byte) (T, error)

func (f DecoderFunc[T]) Decode(content []byte) (T, error) {
	return f(content)
}

type Reader interface {
	Read(name string) ([]byte, error)
}

type Writer interface {
	Write(name string, content []byte) error
}

// Load reads the interface file name from r and decodes it.
func Load[T any](r Reader, name string, dec Decoder[T]) (ret T, err error) {
	defer Wrap(&err, "load %s", name)

	var content []byte
	content, err = r.Read(name)
	if err != nil {
		return
	}

	ret, err = dec.Decode(content)
	return
}

// Store encodes v and writes it to the interface file name of w.
func Store[T any](w Writer, name string, enc Encoder[T], v T) (err error) {
	defer Wrap(&err, "store %s", name)

	err = w.Write(name, enc.Encode(v))
	return
}
