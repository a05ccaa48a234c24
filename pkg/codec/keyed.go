// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"strings"
)

// Record is a fixed-shape value decoded from keyed content.
// The zero value of a record is its default,
// Set overwrites the field named key.
// Set must ignore keys it does not know,
// and fail only when value is malformed for a known key.
type Record interface {
	Set(key, value string) error
}

type record[T any] interface {
	*T
	Record
}

// Assign is the Set implementation shared by records:
// fields maps keys to the fields they fill.
func Assign[V any](fields map[string]*V, parse Parser[V], key, value string) (err error) {
	field, ok := fields[key]
	if !ok {
		return
	}

	var v V
	v, err = parse(value)
	if err != nil {
		err = Malformed(key, value, err)
		return
	}

	*field = v
	return
}

// FlatKeyed is the codec of "key value" per line files,
// like cpu.stat, decoded into the record T.
// Decoding stops at the first blank line.
// Keys missing from content keep their zero value.
type FlatKeyed[T any, PT record[T]] struct{}

func (FlatKeyed[T, PT]) Decode(content []byte) (ret T, err error) {
	var v T

	lines := strings.Split(string(content), "\n")
	for i := range lines {
		key, value, ok := splitFlatLine(lines[i])
		if !ok {
			break
		}

		err = PT(&v).Set(key, value)
		if err != nil {
			return
		}
	}

	ret = v
	return
}

// FlatKeyedMap decodes "key value" per line files with an open key set,
// like memory.stat.
type FlatKeyedMap[V any] struct {
	Parse Parser[V]
}

func (c FlatKeyedMap[V]) Decode(content []byte) (ret map[string]V, err error) {
	m := map[string]V{}

	lines := strings.Split(string(content), "\n")
	for i := range lines {
		key, value, ok := splitFlatLine(lines[i])
		if !ok {
			break
		}

		var v V
		v, err = c.Parse(value)
		if err != nil {
			err = Malformed(key, value, err)
			return
		}

		m[key] = v
	}

	ret = m
	return
}

// NestedKeyed is the codec of "key1 key2=value key2=value" per line files,
// like io.stat, decoded into a map from key1 to the record V.
type NestedKeyed[K comparable, V any, PV record[V]] struct {
	Key Parser[K]
}

func (c NestedKeyed[K, V, PV]) Decode(content []byte) (ret map[K]V, err error) {
	m := map[K]V{}

	lines := strings.Split(string(content), "\n")
	for i := range lines {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}

		var key K
		key, err = c.Key(fields[0])
		if err != nil {
			err = Malformed("", fields[0], err)
			return
		}

		var v V
		for j := range fields[1:] {
			k, value, _ := strings.Cut(fields[1+j], "=")

			err = PV(&v).Set(k, value)
			if err != nil {
				return
			}
		}

		m[key] = v
	}

	ret = m
	return
}

// Field is one key=value segment of a nested keyed line.
type Field struct {
	Key   string
	Value string
}

// FormatNested builds a single nested keyed line,
// which is how nested keyed files like io.max are written.
func FormatNested(key string, fields []Field) []byte {
	var b strings.Builder

	b.WriteString(key)
	for i := range fields {
		b.WriteByte(' ')
		b.WriteString(fields[i].Key)
		b.WriteByte('=')
		b.WriteString(fields[i].Value)
	}

	return []byte(b.String())
}

// Line is a record that can be written back as one nested keyed line.
type Line interface {
	Fields() []Field
}

// EncodeLine formats "key k=v ..." from the fields of v.
func EncodeLine[K any, V Line](key Formatter[K], k K, v V) []byte {
	return FormatNested(key(k), v.Fields())
}

func splitFlatLine(line string) (key, value string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	key = fields[0]
	value = strings.Join(fields[1:], " ")
	ok = true
	return
}
