// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordtree/configuration"
	"github.com/bitmark-inc/ordtree/fault"
)

type item struct {
	Op    string `gluamapper:"op"`
	Key   string `gluamapper:"key"`
	Value string `gluamapper:"value"`
}

type testConfiguration struct {
	Name  string   `gluamapper:"name"`
	Count int      `gluamapper:"count"`
	Items []item   `gluamapper:"items"`
	Tags  []string `gluamapper:"tags"`
}

const source = `
local count = 0
local items = {}
for i = 1, 3 do
    items[#items + 1] = { op = "insert", key = "k" .. i, value = "v" .. i }
    count = count + 1
end
return {
    name = "sample",
    count = count,
    items = items,
    tags = { "a", "b" },
}
`

func TestParseString(t *testing.T) {
	var c testConfiguration
	err := configuration.ParseConfigurationString(source, &c)
	require.NoError(t, err)

	assert.Equal(t, "sample", c.Name)
	assert.Equal(t, 3, c.Count)
	assert.Equal(t, []string{"a", "b"}, c.Tags)
	require.Len(t, c.Items, 3)
	assert.Equal(t, item{Op: "insert", Key: "k2", Value: "v2"}, c.Items[1])
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.conf")
	err := os.WriteFile(fileName, []byte(`return { name = arg[0] }`), 0600)
	require.NoError(t, err)

	var c testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &c)
	require.NoError(t, err)
	assert.Equal(t, fileName, c.Name, "arg[0] is the file name")
}

func TestParseErrors(t *testing.T) {
	var c testConfiguration

	err := configuration.ParseConfigurationString(source, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	n := 5
	err = configuration.ParseConfigurationString(source, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	err = configuration.ParseConfigurationString(`return {`, &c)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationString(`return 42`, &c)
	assert.Error(t, err, "not a table")

	err = configuration.ParseConfigurationFile("/does/not/exist.conf", &c)
	assert.Error(t, err, "missing file")
}
