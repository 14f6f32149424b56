// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const defaultSettle = 2 * time.Second

// Watcher - re-read the configuration file when it changes
//
// the directory is watched so that editors replacing the file by
// rename are seen, events are coalesced for the settle period
type Watcher struct {
	log      *logger.L
	fileName string
	settle   time.Duration
	watcher  *fsnotify.Watcher
	reload   func(*Configuration)
}

// NewWatcher - watch fileName, settle <= 0 selects the default delay
func NewWatcher(fileName string, settle time.Duration, reload func(*Configuration)) (*Watcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	if settle <= 0 {
		settle = defaultSettle
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	if err := w.Add(filepath.Dir(fileName)); nil != err {
		w.Close()
		return nil, err
	}

	return &Watcher{
		log:      logger.New("config"),
		fileName: fileName,
		settle:   settle,
		watcher:  w,
		reload:   reload,
	}, nil
}

// Run - background process, stops and releases the watch on shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.fileName)

	// nil until a change is pending
	var settled <-chan time.Time

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !w.relevant(event) {
				continue loop
			}
			w.log.Debugf("file event: %v", event)
			settled = time.After(w.settle)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watch error: %s", err)

		case <-settled:
			settled = nil
			w.refresh()
		}
	}
	w.log.Info("stopped")
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.fileName {
		return false
	}
	return 0 != event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename)
}

func (w *Watcher) refresh() {
	conf, err := Get(w.fileName)
	if nil != err {
		w.log.Errorf("failed to read configuration from: %q  error: %s", w.fileName, err)
		return
	}
	w.log.Infof("reloaded: chains: %d  tokens: %d", len(conf.Chains), len(conf.Tokens))
	w.reload(conf)
}
