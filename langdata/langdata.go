// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langdata supplies the raw per-locale source data (affix
// rules, dictionary word lists, and word boundary rules) consumed by
// the spell and segment packages. Data is addressed by locale
// identifiers of the form language_REGION, e.g. "en_US".
package langdata

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLocale indicates that no data is available for the
// requested locale.
var ErrUnknownLocale = errors.New("langdata: unknown locale")

// Provider supplies the raw source data for one locale. All data must
// be fully materialized before the corresponding load or configure
// call is issued; Provider methods never block on anything other than
// reading already available bytes.
type Provider interface {
	// Affix returns the affix rule source for the locale.
	Affix(locale string) ([]byte, error)

	// Words returns the dictionary word list source for the locale.
	Words(locale string) ([]byte, error)

	// Boundaries returns the word boundary rule source for the locale.
	Boundaries(locale string) ([]byte, error)
}

//go:embed data
var embedded embed.FS

// Embedded returns a Provider serving the locale data compiled into
// the library: en_US, de_DE, and fr_FR.
func Embedded() Provider {
	sub, _ := fs.Sub(embedded, "data")
	return NewFS(sub)
}

// NewFS returns a Provider reading <locale>.aff, <locale>.dic, and
// <locale>.toml files from the root of the given filesystem. Locale
// identifiers are normalized before lookup, so "en-US" and "en_US"
// address the same files.
func NewFS(fsys fs.FS) Provider {
	return &fsProvider{fsys: fsys}
}

type fsProvider struct {
	fsys fs.FS
}

func (p *fsProvider) Affix(locale string) ([]byte, error) {
	return p.read(locale, ".aff")
}

func (p *fsProvider) Words(locale string) ([]byte, error) {
	return p.read(locale, ".dic")
}

func (p *fsProvider) Boundaries(locale string) ([]byte, error) {
	return p.read(locale, ".toml")
}

func (p *fsProvider) read(locale, ext string) ([]byte, error) {
	loc, err := Normalize(locale)
	if err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(p.fsys, loc+ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, loc)
	}
	return b, nil
}

// Normalize canonicalizes a locale identifier of the form
// language_REGION (or an equivalent BCP 47 tag) into the ll_RR form
// used to key locale data files. The language and region must both be
// given explicitly: "en_US" normalizes to "en_US", but a bare "en"
// is rejected with ErrUnknownLocale.
func Normalize(locale string) (string, error) {
	tag, err := Tag(locale)
	if err != nil {
		return "", err
	}
	base, bc := tag.Base()
	reg, rc := tag.Region()
	if bc != language.Exact || rc != language.Exact || !reg.IsCountry() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return base.String() + "_" + reg.String(), nil
}

// Tag parses a locale identifier into a language tag, accepting both
// the language_REGION form and BCP 47 tags.
func Tag(locale string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return tag, nil
}
