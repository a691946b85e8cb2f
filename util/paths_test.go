// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/util"
)

func TestAbsolutePath(t *testing.T) {
	testData := []struct {
		base     string
		path     string
		expected string
	}{
		{"/var/lib/algogate", "algogate.leveldb", "/var/lib/algogate/algogate.leveldb"},
		{"/var/lib/algogate", "/etc/algogated.conf", "/etc/algogated.conf"},
		{"/var/lib/algogate", "./log/../algogated.log", "/var/lib/algogate/algogated.log"},
		{"/var/lib/algogate/", "rpc.crt", "/var/lib/algogate/rpc.crt"},
	}

	for i, item := range testData {
		actual := util.AbsolutePath(item.base, item.path)
		assert.Equal(t, item.expected, actual, "%d: AbsolutePath(%q, %q)", i, item.base, item.path)
	}
}

func TestFileExists(t *testing.T) {
	directory, err := os.MkdirTemp("", "util-test")
	assert.Nil(t, err, "MkdirTemp failed")
	defer os.RemoveAll(directory)

	name := filepath.Join(directory, "present")
	err = os.WriteFile(name, []byte("x"), 0o600)
	assert.Nil(t, err, "WriteFile failed")

	assert.True(t, util.FileExists(name), "regular file not detected")
	assert.False(t, util.FileExists(filepath.Join(directory, "absent")), "missing file detected")
	assert.False(t, util.FileExists(directory), "directory counted as file")
}
