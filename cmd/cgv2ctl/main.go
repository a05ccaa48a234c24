// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// cgv2ctl inspects and adjusts cgroups through the cgroup v2 interface files.
package main

import "github.com/black-desk/cgroupv2/cmd/cgv2ctl/cmd"

func main() {
	cmd.Execute()
}
