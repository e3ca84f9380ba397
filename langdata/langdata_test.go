// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langdata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en_US", "en_US"},
		{"en-US", "en_US"},
		{"EN_us", "en_US"},
		{"de_DE", "de_DE"},
		{"fr-FR", "fr_FR"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.locale)
		require.NoError(t, err, "locale %q", tt.locale)
		assert.Equal(t, tt.want, got, "locale %q", tt.locale)
	}
}

func TestNormalizeErrors(t *testing.T) {
	for _, locale := range []string{"", "en", "zz_ZZ", "not a locale"} {
		_, err := Normalize(locale)
		assert.ErrorIs(t, err, ErrUnknownLocale, "locale %q", locale)
	}
}

func TestTag(t *testing.T) {
	tag, err := Tag("de_DE")
	require.NoError(t, err)
	assert.Equal(t, "de-DE", tag.String())

	_, err = Tag("!!")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestEmbedded(t *testing.T) {
	p := Embedded()
	for _, locale := range []string{"en_US", "de_DE", "fr_FR"} {
		aff, err := p.Affix(locale)
		require.NoError(t, err, "locale %q", locale)
		assert.NotEmpty(t, aff)

		words, err := p.Words(locale)
		require.NoError(t, err, "locale %q", locale)
		assert.NotEmpty(t, words)

		bounds, err := p.Boundaries(locale)
		require.NoError(t, err, "locale %q", locale)
		assert.NotEmpty(t, bounds)
	}

	// a valid locale with no embedded data
	_, err := p.Affix("pt_BR")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestNewFS(t *testing.T) {
	p := NewFS(fstest.MapFS{
		"en_US.aff":  {Data: []byte("SET UTF-8\n")},
		"en_US.dic":  {Data: []byte("hello\n")},
		"en_US.toml": {Data: []byte("locale = \"en_US\"\n")},
	})

	// lookups normalize the locale first
	words, err := p.Words("en-US")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(words))

	_, err = p.Boundaries("de_DE")
	assert.ErrorIs(t, err, ErrUnknownLocale)
	_, err = p.Affix("en")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}
