// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"strings"
)

// SpaceList is the codec of whitespace separated lists,
// like cgroup.controllers.
//
// Tokens that can not be parsed are dropped:
// the kernel may report entries that are not modeled here.
type SpaceList[T any] struct {
	Parse  Parser[T]
	Format Formatter[T]
}

// Decode never fails.
func (c SpaceList[T]) Decode(content []byte) (ret []T, err error) {
	ret = decodeTokens(strings.Fields(string(content)), c.Parse)
	return
}

func (c SpaceList[T]) Encode(vs []T) []byte {
	tokens := make([]string, 0, len(vs))
	for i := range vs {
		tokens = append(tokens, c.Format(vs[i]))
	}

	return []byte(strings.Join(tokens, " "))
}

// NewlineList is the codec of one-entry-per-line lists,
// like cgroup.procs.
// It drops entries that can not be parsed, as SpaceList does.
type NewlineList[T any] struct {
	Parse Parser[T]
}

// Decode never fails.
func (c NewlineList[T]) Decode(content []byte) (ret []T, err error) {
	ret = decodeTokens(strings.Split(string(content), "\n"), c.Parse)
	return
}

func decodeTokens[T any](tokens []string, parse Parser[T]) (ret []T) {
	ret = make([]T, 0, len(tokens))

	for i := range tokens {
		token := strings.TrimSpace(tokens[i])
		if token == "" {
			continue
		}

		v, err := parse(token)
		if err != nil {
			continue
		}

		ret = append(ret, v)
	}

	return
}
