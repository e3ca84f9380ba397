// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"sort"
	"unicode"

	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

// MaxSuggestions caps the number of corrections returned by Suggest,
// bounding worst-case work on long inputs. Ranking is: the input under
// a different case first, then Levenshtein distance ascending, then
// dictionary insertion order.
const MaxSuggestions = 15

// candidate is one verified correction awaiting ranking.
type candidate struct {
	word     string // suggestion text, case-matched to the input
	caseOnly bool   // the input itself under a different case
	dist     int    // Levenshtein distance from the input
	ord      int    // dictionary insertion order tie-break
}

// Suggest generates, verifies, and ranks corrections for the word.
// Candidates come from case variants of the input, single edits over
// the dictionary alphabet, and splits into two valid sub-words; each
// must derive from the dictionary to survive.
func (d *Dictionary) Suggest(word string) []string {
	if word == "" {
		return nil
	}
	lev := metrics.NewLevenshtein()
	lower := cases.Lower(d.Tag).String(word)

	seen := make(map[string]bool)
	var cands []candidate
	add := func(form, out string, caseOnly bool) {
		if out == "" || seen[out] {
			return
		}
		e := d.Lookup(form)
		if e == nil {
			return
		}
		seen[out] = true
		cands = append(cands, candidate{
			word:     out,
			caseOnly: caseOnly,
			dist:     lev.Distance(lower, cases.Lower(d.Tag).String(out)),
			ord:      e.Ord,
		})
	}

	// the input itself under a different case
	if lower != word {
		add(lower, lower, true)
	}
	if title := cases.Title(d.Tag).String(lower); title != word {
		add(title, title, true)
	}

	// single edits over the dictionary alphabet
	for _, edit := range edits1(lower, d.alphabet) {
		add(edit, matchCase(word, edit), false)
	}

	// splits into two dictionary-valid sub-words
	rs := []rune(lower)
	for i := 1; i < len(rs); i++ {
		left, right := string(rs[:i]), string(rs[i:])
		le := d.Lookup(left)
		if le == nil || d.Lookup(right) == nil {
			continue
		}
		out := matchCase(word, left) + " " + right
		if seen[out] {
			continue
		}
		seen[out] = true
		cands = append(cands, candidate{word: out, dist: 1, ord: le.Ord})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		ci, cj := cands[i], cands[j]
		if ci.caseOnly != cj.caseOnly {
			return ci.caseOnly
		}
		if ci.dist != cj.dist {
			return ci.dist < cj.dist
		}
		return ci.ord < cj.ord
	})
	if len(cands) > MaxSuggestions {
		cands = cands[:MaxSuggestions]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}

// edits1 returns every string one edit away from the word: deletions,
// adjacent transpositions, substitutions, and insertions drawn from
// the dictionary alphabet.
func edits1(word string, alphabet []rune) []string {
	rs := []rune(word)
	out := make([]string, 0, len(rs)*(2*len(alphabet)+2))
	for i := range rs {
		out = append(out, string(rs[:i])+string(rs[i+1:]))
	}
	for i := 0; i+1 < len(rs); i++ {
		t := append([]rune(nil), rs...)
		t[i], t[i+1] = t[i+1], t[i]
		out = append(out, string(t))
	}
	for i := range rs {
		for _, c := range alphabet {
			if c == rs[i] {
				continue
			}
			t := append([]rune(nil), rs...)
			t[i] = c
			out = append(out, string(t))
		}
	}
	for i := 0; i <= len(rs); i++ {
		for _, c := range alphabet {
			out = append(out, string(rs[:i])+string(c)+string(rs[i:]))
		}
	}
	return out
}

// matchCase copies the upper/lower case pattern of src onto trg,
// so corrections render in the case the user typed.
func matchCase(src, trg string) string {
	rsc := []rune(src)
	rtg := []rune(trg)
	n := min(len(rsc), len(rtg))
	for i := 0; i < n; i++ {
		if unicode.IsUpper(rsc[i]) {
			rtg[i] = unicode.ToUpper(rtg[i])
		} else {
			rtg[i] = unicode.ToLower(rtg[i])
		}
	}
	return string(rtg)
}
