// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lexis checks spelling and word boundaries from the command
// line, using the locale data embedded in the library.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/lexis"
	"cogentcore.org/lexis/langdata"
	"cogentcore.org/lexis/segment"
	"cogentcore.org/lexis/spell"
	golocale "github.com/jeandeaual/go-locale"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var (
	localeFlag string
	userFlag   string
)

func main() {
	root := &cobra.Command{
		Use:          "lexis",
		Short:        "lexis checks spelling and word boundaries",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&localeFlag, "locale", "",
		"locale to use, e.g. en_US (default: the system locale)")
	root.PersistentFlags().StringVar(&userFlag, "user", "",
		"user dictionary file (default: ~/.lexis/userdict)")
	root.AddCommand(checkCmd(), suggestCmd(), segmentCmd(), textCmd(), wordsCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// curLocale resolves the locale flag, falling back to the system
// locale and then to en_US.
func curLocale() string {
	if localeFlag != "" {
		return localeFlag
	}
	loc, err := golocale.GetLocale()
	if err != nil {
		slog.Warn("detecting system locale", "err", err)
		return "en_US"
	}
	return strings.ReplaceAll(loc, "-", "_")
}

// userFile resolves the user dictionary path.
func userFile() string {
	if userFlag != "" {
		return userFlag
	}
	home, err := homedir.Dir()
	if err != nil {
		slog.Warn("locating home directory", "err", err)
		return ""
	}
	return filepath.Join(home, ".lexis", "userdict")
}

// newChecker loads the current locale's dictionary and user words.
func newChecker() (*spell.Checker, error) {
	ck := spell.NewChecker(langdata.Embedded())
	if err := ck.LoadDictionary(curLocale()); err != nil {
		return nil, err
	}
	if file := userFile(); file != "" {
		ck.OpenUser(file) // missing file just means no learned words yet
	}
	return ck, nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "report the spelling status of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ck, err := newChecker()
			if err != nil {
				return err
			}
			for _, w := range args {
				res, err := ck.CheckWord(w)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", w, res)
			}
			return nil
		},
	}
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <word>",
		Short: "print ranked corrections for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ck, err := newChecker()
			if err != nil {
				return err
			}
			sugs, err := ck.Suggest(args[0])
			if err != nil {
				return err
			}
			for _, s := range sugs {
				fmt.Println(s)
			}
			return nil
		},
	}
}

func segmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment <text>",
		Short: "print the classified runs of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sg := segment.New(langdata.Embedded())
			if err := sg.Configure(curLocale()); err != nil {
				return err
			}
			text := strings.Join(args, " ")
			bounds, err := sg.Boundaries(text)
			if err != nil {
				return err
			}
			rs := []rune(text)
			for i := 0; i+1 < len(bounds); i++ {
				st, ed := bounds[i], bounds[i+1]
				fmt.Printf("[%d,%d)\t%q\n", st, ed, string(rs[st:ed]))
			}
			return nil
		},
	}
}

func wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "list all known words, dictionary and learned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ck, err := newChecker()
			if err != nil {
				return err
			}
			for _, w := range ck.WordList() {
				fmt.Println(w)
			}
			return nil
		},
	}
}

func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <text>",
		Short: "spell check whole text and report misspelled spans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ck, err := newChecker()
			if err != nil {
				return err
			}
			sg := segment.New(langdata.Embedded())
			if err := sg.Configure(curLocale()); err != nil {
				return err
			}
			spans, err := lexis.CheckText(ck, sg, strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, sp := range spans {
				fmt.Printf("[%d,%d)\t%s\t%s\n", sp.Start, sp.End, sp.Word, sp.Result)
			}
			return nil
		},
	}
}
