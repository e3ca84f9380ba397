// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segment implements locale-aware word boundary analysis:
// it classifies text into word, number, whitespace, and punctuation
// runs using per-locale boundary rules.
package segment

import (
	"errors"
	"fmt"
	"sync"

	"cogentcore.org/lexis/langdata"
	"github.com/rivo/uniseg"
)

// ErrNotConfigured indicates that Boundaries was called before any
// locale was successfully configured. It is a programming-contract
// violation on the caller's side, reported synchronously rather than
// by panicking.
var ErrNotConfigured = errors.New("segment: no locale configured")

// Segmenter classifies text into runs per the configured locale rules.
// At most one rule set is active at a time: Configure replaces it
// atomically, and a failed configure keeps the previous rules active.
// Segmenter is safe for concurrent use; a waiting configure blocks new
// readers.
type Segmenter struct {
	provider langdata.Provider

	mu    sync.RWMutex
	rules *Rules
}

// New returns a Segmenter drawing locale rules from the provider.
func New(provider langdata.Provider) *Segmenter {
	return &Segmenter{provider: provider}
}

// Configure loads the boundary rules for a locale of the form
// language_REGION (e.g. "en_US") and replaces the active rules. On
// failure the previously configured rules, if any, remain active.
func (sg *Segmenter) Configure(locale string) error {
	src, err := sg.provider.Boundaries(locale)
	if err != nil {
		return fmt.Errorf("segment: %w", err)
	}
	rl, err := ParseRules(src)
	if err != nil {
		return err
	}
	sg.mu.Lock()
	sg.rules = rl
	sg.mu.Unlock()
	return nil
}

// Locale returns the configured locale, or "" if none is configured.
func (sg *Segmenter) Locale() string {
	sg.mu.RLock()
	defer sg.mu.RUnlock()
	if sg.rules == nil {
		return ""
	}
	return sg.rules.Locale
}

// cluster is one grapheme cluster with its rune offset and class.
type cluster struct {
	off   int // rune offset of the cluster start
	runes []rune
	class Class
}

// Boundaries returns the word boundary offsets of the text: a strictly
// increasing sequence of rune offsets starting at 0 and ending at the
// rune length. Empty text yields an empty sequence. Consecutive
// offsets delimit one classified run each; punctuation counts as a
// word-like unit, one mark per run. Grapheme clusters are never split.
func (sg *Segmenter) Boundaries(text string) ([]int, error) {
	sg.mu.RLock()
	defer sg.mu.RUnlock()
	if sg.rules == nil {
		return nil, ErrNotConfigured
	}
	if text == "" {
		return []int{}, nil
	}
	cl := sg.rules.clusters(text)
	bounds := []int{0}
	for i := 1; i < len(cl); i++ {
		if breakBetween(cl[i-1].class, cl[i].class) {
			bounds = append(bounds, cl[i].off)
		}
	}
	last := cl[len(cl)-1]
	return append(bounds, last.off+len(last.runes)), nil
}

// clusters splits the text into classified grapheme clusters and
// absorbs mid-letter and mid-number exception clusters into the runs
// around them, so "I'm" and "3.14" each stay one run.
func (rl *Rules) clusters(text string) []cluster {
	var cl []cluster
	off := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		rs := gr.Runes()
		cl = append(cl, cluster{off: off, runes: rs, class: classify(rs)})
		off += len(rs)
	}
	for i := 1; i+1 < len(cl); i++ {
		if len(cl[i].runes) != 1 {
			continue
		}
		r := cl[i].runes[0]
		switch {
		case rl.midLetter[r] && cl[i-1].class == Letter && cl[i+1].class == Letter:
			cl[i].class = Letter
		case rl.midNumber[r] && cl[i-1].class == Digit && cl[i+1].class == Digit:
			cl[i].class = Digit
		}
	}
	return cl
}

// breakBetween reports whether a boundary falls between two adjacent
// clusters. Letter, digit, and whitespace runs merge; punctuation,
// symbols, and other characters break one by one.
func breakBetween(prev, cur Class) bool {
	if prev != cur {
		return true
	}
	switch cur {
	case Letter, Digit, Space:
		return false
	}
	return true
}
