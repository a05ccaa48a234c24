// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

const (
	CheckDocumentString = `
Go to check
1. documentation https://pkg.go.dev/github.com/black-desk/cgroupv2/cmd/cgv2ctl
2. kernel documentation https://docs.kernel.org/admin-guide/cgroup-v2.html
for some help.
`
	CGV2CtlCfgPath = "/etc/cgv2ctl/config.yaml"
)
