// SPDX-License-Identifier: ISC
// Copyright (c) 2023-2026 Algogate
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algogate/algogated/configuration"
)

type testGateway struct {
	Owner            string `gluamapper:"owner"`
	OwnerRestriction bool   `gluamapper:"owner_restriction"`
}

type testConfiguration struct {
	DataDirectory string      `gluamapper:"data_directory"`
	Listen        []string    `gluamapper:"listen"`
	Gateway       testGateway `gluamapper:"gateway"`
}

const luaFile = `
local M = {}
M.data_directory = "/var/lib/algogated"
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.gateway = {
    owner = "0x66f9664f97f2b50f62d13ea064982f936de76657",
    owner_restriction = true,
}
return M
`

func TestParseConfigurationFile(t *testing.T) {
	directory, err := os.MkdirTemp("", "configuration-test")
	if nil != err {
		t.Fatalf("cannot create test directory: %s", err)
	}
	defer os.RemoveAll(directory)

	fileName := filepath.Join(directory, "test.conf")
	if err := os.WriteFile(fileName, []byte(luaFile), 0600); nil != err {
		t.Fatalf("cannot write configuration: %s", err)
	}

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse failed")

	assert.Equal(t, "/var/lib/algogated", config.DataDirectory, "wrong data directory")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.Listen, "wrong listen list")
	assert.Equal(t, "0x66f9664f97f2b50f62d13ea064982f936de76657", config.Gateway.Owner, "wrong owner")
	assert.True(t, config.Gateway.OwnerRestriction, "restriction flag lost")
}

func TestParseConfigurationFileNotATable(t *testing.T) {
	directory, err := os.MkdirTemp("", "configuration-test")
	if nil != err {
		t.Fatalf("cannot create test directory: %s", err)
	}
	defer os.RemoveAll(directory)

	fileName := filepath.Join(directory, "bad.conf")
	if err := os.WriteFile(fileName, []byte(`return "not a table"`), 0600); nil != err {
		t.Fatalf("cannot write configuration: %s", err)
	}

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.NotNil(t, err, "non-table return not detected")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("/nonexistent/algogated.conf", &config)
	assert.NotNil(t, err, "missing file not detected")
}
