// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/lexis/affix"
	"cogentcore.org/lexis/dict"
	"cogentcore.org/lexis/langdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	ck := NewChecker(langdata.Embedded())
	require.NoError(t, ck.LoadDictionary("en_US"))
	return ck
}

func TestCheckWordNotLoaded(t *testing.T) {
	ck := NewChecker(langdata.Embedded())
	_, err := ck.CheckWord("hello")
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = ck.Suggest("hello")
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Equal(t, "", ck.Locale())
}

func TestCheckWord(t *testing.T) {
	ck := newTestChecker(t)
	assert.Equal(t, "en_US", ck.Locale())

	tests := []struct {
		word string
		want Result
	}{
		{"hello", Found},
		{"Hello", Found},
		{"HELLO", Found},
		{"helo", NotFound},
		{"", NotFound},
		{"I'm", Found},
		{"damn", Questionable},
		{"DAMN", Questionable},
		{"damns", Questionable}, // affix-derived forms keep the marker
		{"tries", Found},        // try + SFX S (y -> ies)
		{"tried", Found},        // try + SFX D
		{"trying", Found},       // try + SFX G
		{"watches", Found},      // watch + SFX S (es)
		{"monkeys", Found},      // monkey + SFX S (vowel + y)
		{"monkeies", NotFound},  // condition rejects the ies rule
		{"rebuild", Found},      // PFX A
		{"undo", Found},         // PFX U
		{"rebuilds", Found},     // one prefix plus one suffix
		{"reworking", Found},
		{"rereworking", NotFound}, // no deeper recursion
		{"timing", Found},         // time + SFX G (strip e)
		{"xyzzy", NotFound},
	}
	for _, tt := range tests {
		got, err := ck.CheckWord(tt.word)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "word %q", tt.word)
	}
}

func TestLoadDictionaryUnknownLocale(t *testing.T) {
	ck := newTestChecker(t)
	err := ck.LoadDictionary("zz_ZZ")
	assert.ErrorIs(t, err, langdata.ErrUnknownLocale)

	// last-known-good: the en_US dictionary is still active
	res, err := ck.CheckWord("hello")
	require.NoError(t, err)
	assert.Equal(t, Found, res)
	assert.Equal(t, "en_US", ck.Locale())
}

func TestLoadDictionaryMalformed(t *testing.T) {
	provider := langdata.NewFS(fstest.MapFS{
		"en_US.aff": {Data: []byte("PFX A Y 2\nPFX A 0 re .\n")},
		"en_US.dic": {Data: []byte("hello\n")},
		"en_GB.aff": {Data: []byte("SET UTF-8\n")},
		"en_GB.dic": {Data: []byte("hello/Q\n")},
	})
	ck := NewChecker(provider)

	err := ck.LoadDictionary("en_US")
	assert.ErrorIs(t, err, affix.ErrMalformed)
	_, err = ck.CheckWord("hello")
	assert.ErrorIs(t, err, ErrNotLoaded)

	// entry flags must reference defined rules
	err = ck.LoadDictionary("en_GB")
	assert.ErrorIs(t, err, dict.ErrMalformed)
}

func TestLoadDictionarySwitchLocale(t *testing.T) {
	ck := newTestChecker(t)
	require.NoError(t, ck.LoadDictionary("de_DE"))
	assert.Equal(t, "de_DE", ck.Locale())

	res, err := ck.CheckWord("Katzen")
	require.NoError(t, err)
	assert.Equal(t, Found, res)

	// the old locale's words are gone: one dictionary at a time
	res, err = ck.CheckWord("hello")
	require.NoError(t, err)
	assert.Equal(t, NotFound, res)
}

func TestUserDict(t *testing.T) {
	ck := newTestChecker(t)
	file := filepath.Join(t.TempDir(), "userdict")
	ck.OpenUser(file) // missing file: empty user dict

	res, err := ck.CheckWord("xyzzy")
	require.NoError(t, err)
	assert.Equal(t, NotFound, res)

	ck.AddWord("Xyzzy")
	res, err = ck.CheckWord("xyzzy")
	require.NoError(t, err)
	assert.Equal(t, Found, res)

	// learned words survive a save/open round trip
	ck2 := newTestChecker(t)
	require.NoError(t, ck2.OpenUser(file))
	res, err = ck2.CheckWord("xyzzy")
	require.NoError(t, err)
	assert.Equal(t, Found, res)

	ck.DeleteWord("xyzzy")
	res, err = ck.CheckWord("xyzzy")
	require.NoError(t, err)
	assert.Equal(t, NotFound, res)
}

func TestIgnoreWord(t *testing.T) {
	ck := newTestChecker(t)
	ck.IgnoreWord("Frobnicate")
	res, err := ck.CheckWord("frobnicate")
	require.NoError(t, err)
	assert.Equal(t, Found, res)
}

func TestWordList(t *testing.T) {
	ck := newTestChecker(t)
	ck.AddWord("aardvark")
	words := ck.WordList()
	assert.Contains(t, words, "hello")
	assert.Contains(t, words, "aardvark")
	assert.IsIncreasing(t, words)
}

func FuzzCheckWord(f *testing.F) {
	ck := NewChecker(langdata.Embedded())
	if err := ck.LoadDictionary("en_US"); err != nil {
		f.Fatal(err)
	}
	f.Add("hello")
	f.Add("I'm")
	f.Add("")
	f.Add("   ")
	f.Add("\xff\xfe")
	f.Add("rebuilds")
	f.Fuzz(func(t *testing.T, word string) {
		// must not panic on any input
		if _, err := ck.CheckWord(word); err != nil {
			t.Error(err)
		}
	})
}
