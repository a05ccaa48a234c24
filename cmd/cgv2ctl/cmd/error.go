// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"os"
)

type ErrCancelBySignal struct {
	os.Signal
}

func (e *ErrCancelBySignal) Error() string {
	return fmt.Sprintf("Cancelled by signal (%v).", e.Signal)
}

var (
	ErrBadSubtreeArg = errors.New("expect +controller or -controller.")
	ErrNotWritable   = errors.New("interface file is not writable.")
)
