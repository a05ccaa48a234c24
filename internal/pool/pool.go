// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pool is a typed sync.Pool.
package pool

import "sync"

type Pool[T any] struct {
	p     *sync.Pool
	reset func(T)
}

// New returns a pool creating values with newFn.
// reset, if not nil, is called on every value put back.
func New[T any](newFn func() T, reset func(T)) (ret *Pool[T]) {
	ret = &Pool[T]{
		p: &sync.Pool{New: func() any {
			return newFn()
		}},
		reset: reset,
	}
	return
}

func (p *Pool[T]) Get() T {
	return p.p.Get().(T)
}

func (p *Pool[T]) Put(x T) {
	if p.reset != nil {
		p.reset(x)
	}
	p.p.Put(x)
}
