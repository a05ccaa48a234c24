// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fakecg lays out cgroup interface files in a temporary directory.
package fakecg

import (
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
)

// Files maps interface file names to their content.
type Files map[string]string

// New writes files into a new temporary directory and returns its path.
// The directory is removed when the current test ends.
func New(files Files) string {
	dir := ginkgo.GinkgoT().TempDir()
	Write(dir, files)
	return dir
}

// Write creates or replaces files under dir.
func Write(dir string, files Files) {
	for name, content := range files {
		path := filepath.Join(dir, name)

		err := os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			ginkgo.Fail("create directory of " + path + ": " + err.Error())
		}

		err = os.WriteFile(path, []byte(content), 0o644)
		if err != nil {
			ginkgo.Fail("write " + path + ": " + err.Error())
		}
	}
}

// Read returns the content of the file name under dir.
func Read(dir, name string) string {
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		ginkgo.Fail("read " + name + ": " + err.Error())
	}

	return string(content)
}
