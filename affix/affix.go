// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affix implements parsing and storage of prefix and suffix
// rules in the hunspell affix file format. An affix rule describes how
// to derive a valid word form from a dictionary base form by stripping
// and adding characters, subject to a condition on the base form.
package affix

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrMalformed indicates a structural error in an affix source.
var ErrMalformed = errors.New("affix: malformed source")

// Kind distinguishes prefix rules from suffix rules.
type Kind int32

const (
	Prefix Kind = iota
	Suffix
)

func (k Kind) String() string {
	if k == Prefix {
		return "prefix"
	}
	return "suffix"
}

// Rule is one affix transformation: a derived form is produced by
// removing Strip from the base word and attaching Add, provided the
// base word matches Cond. Rules are immutable once parsed.
type Rule struct {
	// Flag links the rule to the dictionary entries that permit it.
	Flag rune

	// Kind is Prefix or Suffix.
	Kind Kind

	// Strip is removed from the base word before Add is attached.
	Strip string

	// Add is the affix text itself.
	Add string

	// Cond constrains the base words the rule may attach to. It is a
	// character-class pattern anchored at the start (prefix rules) or
	// end (suffix rules) of the base word; "." matches any base.
	Cond string

	// CrossProduct permits combining this rule with one rule of the
	// opposite kind.
	CrossProduct bool

	cond *regexp2.Regexp // compiled Cond; nil matches every base
}

// Matches reports whether the base word satisfies the rule condition.
func (r *Rule) Matches(base string) bool {
	if r.cond == nil {
		return true
	}
	ok, err := r.cond.MatchString(base)
	return err == nil && ok
}

// Base reverses the rule on a derived form: it removes Add, restores
// Strip, and returns the base word. ok is false if the form cannot
// have been produced by this rule.
func (r *Rule) Base(form string) (base string, ok bool) {
	if r.Kind == Prefix {
		if !strings.HasPrefix(form, r.Add) || len(form) == len(r.Add) {
			return "", false
		}
		base = r.Strip + form[len(r.Add):]
	} else {
		if !strings.HasSuffix(form, r.Add) || len(form) == len(r.Add) {
			return "", false
		}
		base = form[:len(form)-len(r.Add)] + r.Strip
	}
	if !r.Matches(base) {
		return "", false
	}
	return base, true
}

// Table holds the affix rules for one locale, grouped by flag.
// It is immutable once parsed.
type Table struct {
	// Prefixes and Suffixes group rules by flag.
	Prefixes map[rune][]*Rule
	Suffixes map[rune][]*Rule

	// TryChars is the TRY directive: the alphabet used when generating
	// spelling suggestions, most frequent characters first.
	TryChars string

	// WarnFlag is the WARN directive: dictionary entries carrying this
	// flag are spelled correctly but questionable. Zero if undeclared.
	WarnFlag rune

	// Encoding is the SET directive value, retained for diagnostics.
	Encoding string
}

// Has reports whether any rule group defines the flag.
func (tb *Table) Has(flag rune) bool {
	if _, ok := tb.Prefixes[flag]; ok {
		return true
	}
	_, ok := tb.Suffixes[flag]
	return ok
}

// Len returns the total number of rules in the table.
func (tb *Table) Len() int {
	n := 0
	for _, rs := range tb.Prefixes {
		n += len(rs)
	}
	for _, rs := range tb.Suffixes {
		n += len(rs)
	}
	return n
}

// group tracks the PFX/SFX group currently being parsed.
type group struct {
	kind  Kind
	flag  rune
	cross bool
	left  int // rules still expected
}

// Parse reads an affix source. It understands the SET, TRY, and WARN
// directives and PFX/SFX rule groups; other hunspell directives are
// ignored. Structural errors (bad group headers, flag mismatches,
// uncompilable conditions, truncated groups) return ErrMalformed.
func Parse(src []byte) (*Table, error) {
	tb := &Table{
		Prefixes: make(map[rune][]*Rule),
		Suffixes: make(map[rune][]*Rule),
	}
	var grp *group
	sc := bufio.NewScanner(bytes.NewReader(src))
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		switch f[0] {
		case "SET":
			if len(f) < 2 {
				return nil, lineErr(ln, "SET requires a value")
			}
			tb.Encoding = f[1]
		case "TRY":
			if len(f) < 2 {
				return nil, lineErr(ln, "TRY requires a value")
			}
			tb.TryChars = f[1]
		case "WARN":
			flag, err := parseFlag(f, ln)
			if err != nil {
				return nil, err
			}
			tb.WarnFlag = flag
		case "PFX", "SFX":
			kind := Prefix
			if f[0] == "SFX" {
				kind = Suffix
			}
			if grp == nil {
				g, err := parseHeader(kind, f, ln)
				if err != nil {
					return nil, err
				}
				grp = g
				continue
			}
			r, err := parseRule(grp, kind, f, ln)
			if err != nil {
				return nil, err
			}
			if kind == Prefix {
				tb.Prefixes[r.Flag] = append(tb.Prefixes[r.Flag], r)
			} else {
				tb.Suffixes[r.Flag] = append(tb.Suffixes[r.Flag], r)
			}
			grp.left--
			if grp.left == 0 {
				grp = nil
			}
		default:
			// other hunspell directives (REP, MAP, COMPOUND*, ...) are
			// not needed by the checker and pass through silently
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if grp != nil {
		return nil, fmt.Errorf("%w: %s group %q is missing %d rule(s)",
			ErrMalformed, grp.kind, grp.flag, grp.left)
	}
	return tb, nil
}

// parseHeader reads a group header line: PFX flag cross count.
func parseHeader(kind Kind, f []string, ln int) (*group, error) {
	if len(f) != 4 {
		return nil, lineErr(ln, "group header needs flag, cross product, and count")
	}
	flag, err := parseFlag(f, ln)
	if err != nil {
		return nil, err
	}
	var cross bool
	switch f[2] {
	case "Y":
		cross = true
	case "N":
		cross = false
	default:
		return nil, lineErr(ln, "cross product must be Y or N, not %q", f[2])
	}
	n, err := strconv.Atoi(f[3])
	if err != nil || n < 1 {
		return nil, lineErr(ln, "invalid rule count %q", f[3])
	}
	return &group{kind: kind, flag: flag, cross: cross, left: n}, nil
}

// parseRule reads a rule line within a group: PFX flag strip add [cond].
func parseRule(grp *group, kind Kind, f []string, ln int) (*Rule, error) {
	if kind != grp.kind {
		return nil, lineErr(ln, "%s rule inside %s group", kind, grp.kind)
	}
	flag, err := parseFlag(f, ln)
	if err != nil {
		return nil, err
	}
	if flag != grp.flag {
		return nil, lineErr(ln, "rule flag %q does not match group flag %q", flag, grp.flag)
	}
	if len(f) < 4 {
		return nil, lineErr(ln, "rule needs strip and add fields")
	}
	r := &Rule{Flag: flag, Kind: kind, CrossProduct: grp.cross, Cond: "."}
	if f[2] != "0" {
		r.Strip = f[2]
	}
	if f[3] != "0" {
		r.Add = f[3]
	}
	if len(f) > 4 {
		r.Cond = f[4]
	}
	if r.Cond != "." {
		pat := "(?:" + r.Cond + ")$"
		if kind == Prefix {
			pat = "^(?:" + r.Cond + ")"
		}
		re, err := regexp2.Compile(pat, regexp2.None)
		if err != nil {
			return nil, lineErr(ln, "invalid condition %q: %s", r.Cond, err)
		}
		r.cond = re
	}
	return r, nil
}

// parseFlag reads the single-rune flag in field 1.
func parseFlag(f []string, ln int) (rune, error) {
	if len(f) < 2 {
		return 0, lineErr(ln, "missing flag")
	}
	rs := []rune(f[1])
	if len(rs) != 1 {
		return 0, lineErr(ln, "flag %q must be a single character", f[1])
	}
	return rs[0], nil
}

func lineErr(ln int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, ln, fmt.Sprintf(format, args...))
}
