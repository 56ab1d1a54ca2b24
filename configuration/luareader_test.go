// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bintree/configuration"
	"github.com/bitmark-inc/bintree/fault"
)

type item struct {
	Name  string `gluamapper:"name"`
	Count int    `gluamapper:"count"`
	On    bool   `gluamapper:"on"`
}

type testConfiguration struct {
	Title string `gluamapper:"title"`
	Seed  int64  `gluamapper:"seed"`
	Items []item `gluamapper:"items"`
}

const testFile = `
local M = {}

M.title = "selected: " .. (selected or "none")
M.seed = tonumber(seed or "3")

-- arg[0] is the file name
M.items = {
    { name = "first", count = 10, on = true },
    { name = "second" },
}

return M
`

func writeFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	require.Nil(t, os.WriteFile(fileName, []byte(content), 0o600), "write")
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, testFile)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	require.Nil(t, err, "parse")

	assert.Equal(t, "selected: none", config.Title, "title")
	assert.Equal(t, int64(3), config.Seed, "seed")
	require.Equal(t, 2, len(config.Items), "items")
	assert.Equal(t, item{Name: "first", Count: 10, On: true}, config.Items[0], "first")
	assert.Equal(t, item{Name: "second"}, config.Items[1], "second")
}

func TestParseVariables(t *testing.T) {
	fileName := writeFile(t, testFile)

	config := testConfiguration{}
	variables := map[string]string{
		"selected": "avl",
		"seed":     "99",
	}
	err := configuration.ParseConfigurationFile(fileName, &config, variables)
	require.Nil(t, err, "parse")

	assert.Equal(t, "selected: avl", config.Title, "title")
	assert.Equal(t, int64(99), config.Seed, "seed")
}

func TestParseArg(t *testing.T) {
	fileName := writeFile(t, `return { title = arg[0] }`)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	require.Nil(t, err, "parse")
	assert.Equal(t, fileName, config.Title, "arg[0]")
}

func TestParseErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &config, nil)
	assert.NotNil(t, err, "missing file")

	err = configuration.ParseConfigurationFile(writeFile(t, "return {"), &config, nil)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(writeFile(t, "return 5"), &config, nil)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")

	fileName := writeFile(t, testFile)
	err = configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")
}
