// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"errors"
	"strconv"
)

// Parser turns one token of an interface file into a value.
type Parser[T any] func(s string) (T, error)

// Formatter is the inverse of a Parser.
type Formatter[T any] func(v T) string

var (
	errNotBool  = errors.New("expect 0 or 1.")
	errNoString = errors.New("expect a non-empty token.")
)

func ParseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func FormatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func ParseUint32(s string) (ret uint32, err error) {
	var v uint64
	v, err = strconv.ParseUint(s, 10, 32)
	ret = uint32(v)
	return
}

func FormatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func ParseUint16(s string) (ret uint16, err error) {
	var v uint64
	v, err = strconv.ParseUint(s, 10, 16)
	ret = uint16(v)
	return
}

func FormatUint16(v uint16) string {
	return strconv.FormatUint(uint64(v), 10)
}

func ParseUint8(s string) (ret uint8, err error) {
	var v uint64
	v, err = strconv.ParseUint(s, 10, 8)
	ret = uint8(v)
	return
}

func FormatUint8(v uint8) string {
	return strconv.FormatUint(uint64(v), 10)
}

func ParseInt8(s string) (ret int8, err error) {
	var v int64
	v, err = strconv.ParseInt(s, 10, 8)
	ret = int8(v)
	return
}

func FormatInt8(v int8) string {
	return strconv.FormatInt(int64(v), 10)
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func ParseFloat32(s string) (ret float32, err error) {
	var v float64
	v, err = strconv.ParseFloat(s, 32)
	ret = float32(v)
	return
}

// FormatFloat32 prints v the way the kernel prints percentages,
// with two decimals.
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

// ParseBool accepts exactly "0" and "1".
func ParseBool(s string) (ret bool, err error) {
	switch s {
	case "0":
		ret = false
	case "1":
		ret = true
	default:
		err = errNotBool
	}
	return
}

func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func ParseString(s string) (ret string, err error) {
	if s == "" {
		err = errNoString
		return
	}

	ret = s
	return
}

func FormatString(v string) string {
	return v
}
