// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spell implements locale-aware spell checking and correction
// suggestions against a single active dictionary of base word forms
// and affix rules.
package spell

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/lexis/dict"
	"cogentcore.org/lexis/langdata"
	"golang.org/x/exp/maps"
)

// ErrNotLoaded indicates that CheckWord or Suggest was called before
// any dictionary was successfully loaded. It is a programming-contract
// violation on the caller's side, reported synchronously rather than
// by panicking.
var ErrNotLoaded = errors.New("spell: no dictionary loaded")

// Checker answers spell check and suggestion queries against the
// currently loaded dictionary. At most one dictionary is active at a
// time: LoadDictionary replaces it atomically, and a failed load keeps
// the previous dictionary active. Checker is safe for concurrent use;
// a waiting load blocks new readers, so reads never go stale behind a
// pending replacement.
type Checker struct {
	// UserFile is the path of the user's dictionary of learned words,
	// set by OpenUser.
	UserFile string

	provider langdata.Provider

	mu      sync.RWMutex
	dict    *Dictionary
	user    dict.Dict
	ignore  dict.Dict
	watcher *watcher
}

// NewChecker returns a Checker drawing locale data from the provider.
func NewChecker(provider langdata.Provider) *Checker {
	return &Checker{
		provider: provider,
		user:     make(dict.Dict),
		ignore:   make(dict.Dict),
	}
}

// LoadDictionary loads the affix rules and word list for the locale
// from the provider and replaces the active dictionary. Callers never
// observe a half-updated dictionary: the swap happens only after both
// sources parse completely, and on failure the previously loaded
// dictionary, if any, remains active.
func (ck *Checker) LoadDictionary(locale string) error {
	affSrc, err := ck.provider.Affix(locale)
	if err != nil {
		return fmt.Errorf("spell: %w", err)
	}
	dicSrc, err := ck.provider.Words(locale)
	if err != nil {
		return fmt.Errorf("spell: %w", err)
	}
	d, err := NewDictionary(locale, affSrc, dicSrc)
	if err != nil {
		return err
	}
	ck.mu.Lock()
	ck.dict = d
	ck.mu.Unlock()
	return nil
}

// Locale returns the locale of the active dictionary, or "" if none
// is loaded.
func (ck *Checker) Locale() string {
	ck.mu.RLock()
	defer ck.mu.RUnlock()
	if ck.dict == nil {
		return ""
	}
	return ck.dict.Locale
}

// CheckWord classifies a word as NotFound, Found, or Questionable.
// User words and session-ignored words report Found. A dictionary
// must have been loaded first; otherwise ErrNotLoaded is returned.
func (ck *Checker) CheckWord(word string) (Result, error) {
	ck.mu.RLock()
	defer ck.mu.RUnlock()
	if ck.dict == nil {
		return NotFound, ErrNotLoaded
	}
	lw := strings.ToLower(word)
	if ck.ignore.Exists(lw) || ck.user.Exists(lw) {
		return Found, nil
	}
	return ck.dict.result(ck.dict.Lookup(word)), nil
}

// Suggest returns up to MaxSuggestions corrections for the word,
// ordered best first. Every returned word checks as valid against the
// active dictionary. Suggestions are produced even when the input
// itself is correctly spelled; in particular the input may reappear
// under a different case when that case is independently valid.
func (ck *Checker) Suggest(word string) ([]string, error) {
	ck.mu.RLock()
	defer ck.mu.RUnlock()
	if ck.dict == nil {
		return nil, ErrNotLoaded
	}
	return ck.dict.Suggest(word), nil
}

// WordList returns all known base word forms, locale dictionary and
// user words combined, sorted.
func (ck *Checker) WordList() []string {
	ck.mu.RLock()
	defer ck.mu.RUnlock()
	all := make(dict.Dict, len(ck.user))
	if ck.dict != nil {
		maps.Copy(all, ck.dict.Words)
	}
	maps.Copy(all, ck.user)
	words := maps.Keys(all)
	slices.Sort(words)
	return words
}
