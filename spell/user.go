// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"errors"
	"log/slog"
	"strings"

	"cogentcore.org/lexis/dict"
	"github.com/fsnotify/fsnotify"
)

// user dictionary: words the user has learned, kept in a plain word
// list file so it can be edited or synced by other tools.

// OpenUser loads the user dictionary from the given file and records
// the path for later saves. A missing file is not an error: it leaves
// an empty user dictionary that is created on the first save.
func (ck *Checker) OpenUser(filename string) error {
	d, err := dict.Open(filename)
	ck.mu.Lock()
	defer ck.mu.Unlock()
	ck.UserFile = filename
	if err != nil {
		ck.user = make(dict.Dict)
		return err
	}
	ck.user = d
	return nil
}

// AddWord adds the word to the user dictionary and saves it if a user
// file is set. Added words check as Found from then on.
func (ck *Checker) AddWord(word string) {
	ck.mu.Lock()
	ck.user.Add(strings.ToLower(word))
	ck.mu.Unlock()
	ck.saveUser()
}

// DeleteWord removes a word added by AddWord, in case it was learned
// by accident.
func (ck *Checker) DeleteWord(word string) {
	ck.mu.Lock()
	ck.user.Delete(strings.ToLower(word))
	ck.mu.Unlock()
	ck.saveUser()
}

// IgnoreWord ignores the word for the rest of the session without
// persisting it.
func (ck *Checker) IgnoreWord(word string) {
	ck.mu.Lock()
	ck.ignore.Add(strings.ToLower(word))
	ck.mu.Unlock()
}

// SaveUser writes the user dictionary to UserFile.
func (ck *Checker) SaveUser() error {
	ck.mu.RLock()
	defer ck.mu.RUnlock()
	if ck.UserFile == "" {
		return nil
	}
	return ck.user.Save(ck.UserFile)
}

func (ck *Checker) saveUser() {
	if ck.UserFile == "" {
		return
	}
	if err := ck.SaveUser(); err != nil {
		slog.Error("spell: saving user dictionary", "file", ck.UserFile, "err", err)
	}
}

// watcher reloads the user dictionary when the file changes on disk.
type watcher struct {
	fw *fsnotify.Watcher
}

// WatchUser starts watching UserFile and reloads the user dictionary
// whenever it is modified outside this process. Close stops the watch.
func (ck *Checker) WatchUser() error {
	if ck.UserFile == "" {
		return errors.New("spell: no user dictionary file to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(ck.UserFile); err != nil {
		fw.Close()
		return err
	}
	ck.watcher = &watcher{fw: fw}
	go ck.watchLoop(fw)
	return nil
}

func (ck *Checker) watchLoop(fw *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				if err := ck.OpenUser(ck.UserFile); err != nil {
					slog.Error("spell: reloading user dictionary", "file", ck.UserFile, "err", err)
				}
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Error("spell: user dictionary watcher", "err", err)
		}
	}
}

// Close stops the user dictionary watcher, if any.
func (ck *Checker) Close() error {
	if ck.watcher == nil {
		return nil
	}
	err := ck.watcher.fw.Close()
	ck.watcher = nil
	return err
}
