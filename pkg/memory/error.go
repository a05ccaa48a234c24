// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memory

import "errors"

var ErrDirMissing = errors.New("cgroup directory is missing.")
