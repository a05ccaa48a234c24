// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFile = errors.New("empty file.")
	ErrMalformed = errors.New("malformed field.")
)

// ErrMalformedField is returned when content is present
// but can not be decoded as the expected type.
// It matches ErrMalformed with errors.Is.
type ErrMalformedField struct {
	Key     string
	Content string
	Err     error
}

func (e *ErrMalformedField) Error() string {
	msg := fmt.Sprintf("malformed field %q", e.Content)
	if e.Key != "" {
		msg = fmt.Sprintf("malformed field %q (key %s)", e.Content, e.Key)
	}

	if e.Err == nil {
		return msg
	}

	return msg + ": " + e.Err.Error()
}

func (e *ErrMalformedField) Unwrap() error {
	return e.Err
}

func (e *ErrMalformedField) Is(target error) bool {
	return target == ErrMalformed
}

// Malformed wraps err into an *ErrMalformedField carrying content,
// unless err already is one.
func Malformed(key, content string, err error) error {
	var malformed *ErrMalformedField
	if errors.As(err, &malformed) {
		return err
	}

	return &ErrMalformedField{Key: key, Content: content, Err: err}
}
