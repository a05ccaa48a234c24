// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io/fs"

	"github.com/black-desk/cgroupv2/internal/test/fakecg"
	"github.com/black-desk/cgroupv2/pkg/cgroup"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"kernel.org/pub/linux/libs/security/libcap/cap"
)

var _ = Describe("Permission check", func() {
	It("should pass when every file is writable", func() {
		dir := fakecg.New(fakecg.Files{
			cgroup.FileProcs:          "",
			cgroup.FileSubtreeControl: "",
			cgroup.FileFreeze:         "0\n",
		})

		Expect(checkWritable(dir, writableFiles)).To(Succeed())
	})

	It("should fail on a missing file", func() {
		dir := fakecg.New(fakecg.Files{
			cgroup.FileProcs: "",
		})

		err := checkWritable(dir, writableFiles)
		Expect(err).To(MatchError(ErrNotWritable))
		Expect(err).To(MatchError(fs.ErrNotExist))
	})
})

var _ = Describe("Capability check", func() {
	It("should report only the effective capabilities", func() {
		capSet := cap.NewSet()
		Expect(capSet.SetFlag(cap.Effective, true, cap.DAC_OVERRIDE, cap.NET_ADMIN)).To(Succeed())

		caps, err := effectiveCaps(capSet, privilegedCaps)
		Expect(err).To(Succeed())
		Expect(caps).To(Equal([]cap.Value{cap.DAC_OVERRIDE}))
	})

	It("should report nothing for an empty set", func() {
		caps, err := effectiveCaps(cap.NewSet(), privilegedCaps)
		Expect(err).To(Succeed())
		Expect(caps).To(BeEmpty())
	})
})
