// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logger provides the logger used by tests.
// Logs go to a file so they do not mix with ginkgo output.
package logger

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// EnvLogFile overrides the log file of tests.
const EnvLogFile = "CGV2CTL_TEST_LOGFILE"

func defaultLogFile() string {
	return filepath.Join(
		os.TempDir(),
		"cgv2ctl-test",
		"log-"+time.Now().Format("20060102T150405.000000000")+".txt",
	)
}

// New builds a development logger writing to EnvLogFile,
// or to a fresh file under the temporary directory.
func New() (ret *zap.SugaredLogger, err error) {
	defer Wrap(&err, "create a logger for test")

	path := os.Getenv(EnvLogFile)
	if path == "" {
		path = defaultLogFile()
	}

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	var logger *zap.Logger
	logger, err = cfg.Build()
	if err != nil {
		Wrap(&err, "build zap logger from development config")
		return
	}

	ret = logger.Sugar()
	return
}
