// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexis provides locale-aware spell checking and word
// segmentation: hunspell-style dictionaries with affix rules, ranked
// correction suggestions, and rule-based word boundary analysis.
package lexis

import (
	"unicode"

	"cogentcore.org/lexis/segment"
	"cogentcore.org/lexis/spell"
)

// Span is one misspelled or questionable word within checked text.
type Span struct {
	// Word is the text of the word run.
	Word string

	// Start and End are the rune offsets of the run within the text.
	Start, End int

	// Result is the spell check classification of the word.
	Result spell.Result
}

// CheckText segments the text into runs and spell checks each word
// run, returning spans for every word that is misspelled or
// questionable. The checker must have a dictionary loaded and the
// segmenter must be configured.
func CheckText(ck *spell.Checker, sg *segment.Segmenter, text string) ([]Span, error) {
	bounds, err := sg.Boundaries(text)
	if err != nil {
		return nil, err
	}
	rs := []rune(text)
	var spans []Span
	for i := 0; i+1 < len(bounds); i++ {
		st, ed := bounds[i], bounds[i+1]
		word := string(rs[st:ed])
		if !isWord(word) {
			continue
		}
		res, err := ck.CheckWord(word)
		if err != nil {
			return nil, err
		}
		if res == spell.Found {
			continue
		}
		spans = append(spans, Span{Word: word, Start: st, End: ed, Result: res})
	}
	return spans, nil
}

// isWord reports whether the run starts with a letter.
func isWord(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}
