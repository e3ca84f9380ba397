// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDic = `
4
# comment
hello
world/S
try/SDG
try/AG
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(testDic))
	require.NoError(t, err)
	assert.Len(t, d, 3)

	assert.True(t, d.Exists("hello"))
	assert.False(t, d.Exists("Hello"))
	assert.Equal(t, "", d["hello"].Flags)
	assert.Equal(t, "S", d["world"].Flags)

	// duplicate forms merge their flags, first insertion order wins
	tr := d["try"]
	require.NotNil(t, tr)
	assert.Equal(t, "SDGA", tr.Flags)
	assert.True(t, tr.HasFlag('S'))
	assert.True(t, tr.HasFlag('A'))
	assert.False(t, tr.HasFlag('Z'))
	assert.False(t, tr.HasFlag(0))

	assert.Equal(t, []string{"hello", "world", "try"}, d.List())
}

func TestParseCountLineOnlyFirst(t *testing.T) {
	// a numeric word on a later line is a word, not a count
	d, err := Parse([]byte("hello\n42\n"))
	require.NoError(t, err)
	assert.True(t, d.Exists("42"))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("hello\n/S\n"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Parse([]byte("hello\n\xff\xfe\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestSaveOpen(t *testing.T) {
	d := make(Dict)
	d.Add("zebra")
	d.Add("apple")
	d.Delete("zebra")
	d.Add("mango")

	file := filepath.Join(t.TempDir(), "userdict")
	require.NoError(t, d.Save(file))

	got, err := Open(file)
	require.NoError(t, err)
	assert.True(t, got.Exists("apple"))
	assert.True(t, got.Exists("mango"))
	assert.False(t, got.Exists("zebra"))
}
