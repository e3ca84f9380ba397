// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict implements the dictionary store: the set of known base
// word forms, each annotated with the affix flags that apply to it.
// The same line-oriented word list format serves both locale
// dictionaries and user dictionaries of learned words.
package dict

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrMalformed indicates a structural error in a dictionary source.
var ErrMalformed = errors.New("dict: malformed source")

// Entry is one base word form. Entries are immutable once loaded.
type Entry struct {
	// Word is the base form as it appears in the dictionary.
	Word string

	// Flags are the affix flags applicable to this entry.
	Flags string

	// Warn marks the entry as questionable: spelled correctly but
	// possibly inappropriate. Set by the loader from the affix table's
	// WARN flag.
	Warn bool

	// Ord is the insertion order of the entry, used as the final
	// tie-break when ranking suggestions.
	Ord int
}

// HasFlag reports whether the entry carries the given affix flag.
func (e *Entry) HasFlag(flag rune) bool {
	return flag != 0 && strings.ContainsRune(e.Flags, flag)
}

// Dict maps a word form to its entry.
type Dict map[string]*Entry

// Parse reads a dictionary word list. The first content line may be an
// approximate entry count, which is skipped; every other non-blank,
// non-comment line is a word optionally followed by /flags. If the
// same form appears twice its flags are merged.
func Parse(src []byte) (Dict, error) {
	d := make(Dict)
	sc := bufio.NewScanner(bytes.NewReader(src))
	ln := 0
	first := true
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d: invalid UTF-8", ErrMalformed, ln)
		}
		word, flags, _ := strings.Cut(line, "/")
		word = strings.TrimSpace(word)
		if word == "" {
			return nil, fmt.Errorf("%w: line %d: missing word", ErrMalformed, ln)
		}
		d.add(word, flags)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	return d, nil
}

// Open reads a word list file saved with Save.
func Open(filename string) (Dict, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func (d Dict) add(word, flags string) {
	if e, ok := d[word]; ok {
		for _, f := range flags {
			if !strings.ContainsRune(e.Flags, f) {
				e.Flags += string(f)
			}
		}
		return
	}
	d[word] = &Entry{Word: word, Flags: flags, Ord: len(d)}
}

// Add inserts a word with no flags, as used for user dictionaries.
func (d Dict) Add(word string) {
	d.add(word, "")
}

// Exists reports whether the exact word form is present.
func (d Dict) Exists(word string) bool {
	_, ok := d[word]
	return ok
}

// Delete removes a word form.
func (d Dict) Delete(word string) {
	delete(d, word)
}

// List returns all word forms in insertion order.
func (d Dict) List() []string {
	words := make([]string, 0, len(d))
	for w := range d {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		return d[words[i]].Ord < d[words[j]].Ord
	})
	return words
}

// Save writes the word list one word per line, the format used for
// user dictionaries. Flags are not persisted: user words are plain
// forms.
func (d Dict) Save(filename string) error {
	var b strings.Builder
	for _, w := range d.List() {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return os.WriteFile(filename, []byte(b.String()), 0666)
}
