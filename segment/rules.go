// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/pelletier/go-toml/v2"
)

// ErrMalformed indicates a structural error in a boundary rule source.
var ErrMalformed = errors.New("segment: malformed rules")

// Class is the boundary class of a grapheme cluster.
type Class int32

const (
	// Other covers unassigned and control characters; every cluster is
	// its own run.
	Other Class = iota

	// Letter clusters merge into word runs.
	Letter

	// Digit clusters merge into number runs.
	Digit

	// Punct clusters are single-cluster runs unless absorbed by a
	// mid-letter or mid-number exception.
	Punct

	// Symbol clusters are single-cluster runs.
	Symbol

	// Space clusters merge into whitespace runs.
	Space
)

func (c Class) String() string {
	switch c {
	case Letter:
		return "letter"
	case Digit:
		return "digit"
	case Punct:
		return "punct"
	case Symbol:
		return "symbol"
	case Space:
		return "space"
	}
	return "other"
}

// Rules is the boundary rule set for one locale, loaded from a TOML
// source. Rules are immutable once parsed; configuring a new locale
// replaces them wholesale.
type Rules struct {
	// Locale is the ll_RR identifier the rules apply to.
	Locale string `toml:"locale"`

	// MidLetter lists characters that do not break a word run when
	// they appear between two letters, such as the apostrophe in
	// "I'm".
	MidLetter []string `toml:"mid_letter"`

	// MidNumber lists characters that do not break a number run when
	// they appear between two digits, such as the decimal point in
	// "3.14".
	MidNumber []string `toml:"mid_number"`

	midLetter map[rune]bool
	midNumber map[rune]bool
}

// ParseRules reads a TOML boundary rule source.
func ParseRules(src []byte) (*Rules, error) {
	rl := &Rules{}
	if err := toml.Unmarshal(src, rl); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if rl.Locale == "" {
		return nil, fmt.Errorf("%w: missing locale", ErrMalformed)
	}
	rl.midLetter = runeSet(rl.MidLetter)
	rl.midNumber = runeSet(rl.MidNumber)
	return rl, nil
}

func runeSet(ss []string) map[rune]bool {
	m := make(map[rune]bool, len(ss))
	for _, s := range ss {
		for _, r := range s {
			m[r] = true
		}
	}
	return m
}

// classify returns the class of a grapheme cluster, determined by its
// first rune.
func classify(rs []rune) Class {
	r := rs[0]
	switch {
	case unicode.IsLetter(r) || unicode.IsMark(r):
		return Letter
	case unicode.IsNumber(r):
		return Digit
	case unicode.IsSpace(r):
		return Space
	case unicode.IsPunct(r):
		return Punct
	case unicode.IsSymbol(r):
		return Symbol
	}
	return Other
}
