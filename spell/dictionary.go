// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"fmt"
	"strings"
	"unicode"

	"cogentcore.org/lexis/affix"
	"cogentcore.org/lexis/dict"
	"cogentcore.org/lexis/langdata"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result classifies a checked word.
type Result int32

const (
	// NotFound means the word is not derivable from the dictionary.
	NotFound Result = iota

	// Found means the word is a standard entry or derived from one.
	Found

	// Questionable means the word is spelled correctly but the entry
	// carries the questionable marker.
	Questionable
)

func (r Result) String() string {
	switch r {
	case NotFound:
		return "misspelled"
	case Found:
		return "ok"
	case Questionable:
		return "questionable"
	}
	return "invalid"
}

// Dictionary is the loaded spelling state for one locale: the affix
// rule table plus the dictionary store. It is immutable once loaded;
// loading a new locale replaces it wholesale.
type Dictionary struct {
	// Locale is the normalized ll_RR identifier the data was loaded for.
	Locale string

	// Tag is the language tag used for locale-aware case folding.
	Tag language.Tag

	// Table is the affix rule table.
	Table *affix.Table

	// Words is the dictionary store.
	Words dict.Dict

	// alphabet holds the characters used to generate suggestion edits:
	// the affix TRY directive, or the letters of the word list itself.
	alphabet []rune
}

// NewDictionary parses affix and word sources into a ready Dictionary.
// Every flag referenced by an entry must be defined by the affix table
// or be its WARN flag; undefined flags are a malformed source.
func NewDictionary(locale string, affSrc, dicSrc []byte) (*Dictionary, error) {
	loc, err := langdata.Normalize(locale)
	if err != nil {
		return nil, err
	}
	tb, err := affix.Parse(affSrc)
	if err != nil {
		return nil, fmt.Errorf("spell: affix source for %s: %w", loc, err)
	}
	words, err := dict.Parse(dicSrc)
	if err != nil {
		return nil, fmt.Errorf("spell: word list for %s: %w", loc, err)
	}
	for _, e := range words {
		for _, f := range e.Flags {
			if f == tb.WarnFlag {
				e.Warn = true
				continue
			}
			if !tb.Has(f) {
				return nil, fmt.Errorf("%w: entry %q references undefined flag %q",
					dict.ErrMalformed, e.Word, f)
			}
		}
	}
	tag, err := langdata.Tag(loc)
	if err != nil {
		return nil, err
	}
	return &Dictionary{
		Locale:   loc,
		Tag:      tag,
		Table:    tb,
		Words:    words,
		alphabet: alphabet(tb, words),
	}, nil
}

// alphabet returns the suggestion alphabet: the TRY characters if
// declared, otherwise the letters occurring in the word list.
func alphabet(tb *affix.Table, words dict.Dict) []rune {
	if tb.TryChars != "" {
		return []rune(tb.TryChars)
	}
	seen := make(map[rune]bool)
	var ab []rune
	for w := range words {
		for _, r := range w {
			if !seen[r] && unicode.IsLetter(r) {
				seen[r] = true
				ab = append(ab, r)
			}
		}
	}
	return ab
}

// Lookup finds the entry a word form derives from, or nil. It tries
// the exact form, the locale lowercase form, and for all-uppercase
// input the title-case form, each directly and then through affix
// derivation.
func (d *Dictionary) Lookup(word string) *dict.Entry {
	if word == "" {
		return nil
	}
	for _, w := range d.caseForms(word) {
		if e, ok := d.Words[w]; ok {
			return e
		}
		if e := d.derive(w); e != nil {
			return e
		}
	}
	return nil
}

// caseForms returns the candidate normalizations of a word for lookup.
func (d *Dictionary) caseForms(word string) []string {
	forms := []string{word}
	lower := cases.Lower(d.Tag).String(word)
	if lower == word {
		return forms
	}
	forms = append(forms, lower)
	if strings.ToUpper(word) == word {
		// all-caps input also matches capitalized entries: "ENGLISH"
		// is a valid rendering of "English"
		forms = append(forms, cases.Title(d.Tag).String(lower))
	}
	return forms
}

// derive attempts to reduce the form to a known base via at most one
// suffix, one prefix, or one cross-product prefix+suffix pair. There
// is no deeper recursion.
func (d *Dictionary) derive(form string) *dict.Entry {
	for flag, rules := range d.Table.Suffixes {
		for _, r := range rules {
			base, ok := r.Base(form)
			if !ok {
				continue
			}
			if e, ok := d.Words[base]; ok && e.HasFlag(flag) {
				return e
			}
		}
	}
	for flag, rules := range d.Table.Prefixes {
		for _, r := range rules {
			base, ok := r.Base(form)
			if !ok {
				continue
			}
			if e, ok := d.Words[base]; ok && e.HasFlag(flag) {
				return e
			}
			if !r.CrossProduct {
				continue
			}
			if e := d.deriveSuffixed(base, flag); e != nil {
				return e
			}
		}
	}
	return nil
}

// deriveSuffixed strips one cross-product suffix from an already
// prefix-stripped form; the entry must carry both flags.
func (d *Dictionary) deriveSuffixed(form string, pflag rune) *dict.Entry {
	for sflag, rules := range d.Table.Suffixes {
		for _, r := range rules {
			if !r.CrossProduct {
				continue
			}
			base, ok := r.Base(form)
			if !ok {
				continue
			}
			if e, ok := d.Words[base]; ok && e.HasFlag(pflag) && e.HasFlag(sflag) {
				return e
			}
		}
	}
	return nil
}

// result classifies a lookup outcome.
func (d *Dictionary) result(e *dict.Entry) Result {
	switch {
	case e == nil:
		return NotFound
	case e.Warn:
		return Questionable
	}
	return Found
}
