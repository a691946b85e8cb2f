// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - path helpers shared by the daemon commands
package util

import (
	"os"
	"path/filepath"
)

// AbsolutePath - resolve a path against a base directory
//
// absolute paths pass through untouched, relative ones are joined
// onto the base; the result is always cleaned
func AbsolutePath(baseDirectory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(baseDirectory, path))
}

// FileExists - true if the path names an existing regular file
//
// directories and other special files do not count, the certificate
// generator must not treat them as generated output
func FileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}
