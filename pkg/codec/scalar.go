// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"encoding"
	"strings"
)

// Scalar is the codec of interface files holding a single value,
// like cpu.weight or memory.max.
type Scalar[T any] struct {
	Parse  Parser[T]
	Format Formatter[T]
}

// Decode parses content with one trailing newline removed.
// Empty content fails with ErrEmptyFile.
func (c Scalar[T]) Decode(content []byte) (ret T, err error) {
	if len(content) == 0 {
		err = ErrEmptyFile
		return
	}

	s := strings.TrimSuffix(string(content), "\n")

	var v T
	v, err = c.Parse(s)
	if err != nil {
		err = Malformed("", s, err)
		return
	}

	ret = v
	return
}

func (c Scalar[T]) Encode(v T) []byte {
	return []byte(c.Format(v))
}

var (
	Uint64 = Scalar[uint64]{Parse: ParseUint64, Format: FormatUint64}
	Uint32 = Scalar[uint32]{Parse: ParseUint32, Format: FormatUint32}
	Uint16 = Scalar[uint16]{Parse: ParseUint16, Format: FormatUint16}
	Int8   = Scalar[int8]{Parse: ParseInt8, Format: FormatInt8}
	Int    = Scalar[int]{Parse: ParseInt, Format: FormatInt}
	Int64  = Scalar[int64]{Parse: ParseInt64, Format: FormatInt64}
	Bool   = Scalar[bool]{Parse: ParseBool, Format: FormatBool}
	String = Scalar[string]{Parse: ParseString, Format: FormatString}
)

type text[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Text is the Scalar codec of a type that knows its own text form,
// like types.Max or types.ControllerType.
func Text[T encoding.TextMarshaler, PT text[T]]() Scalar[T] {
	return Scalar[T]{
		Parse: func(s string) (ret T, err error) {
			var v T
			err = PT(&v).UnmarshalText([]byte(s))
			if err != nil {
				return
			}

			ret = v
			return
		},
		Format: func(v T) string {
			b, err := v.MarshalText()
			if err != nil {
				return ""
			}
			return string(b)
		},
	}
}
