// Package watcher monitors the knowledge snapshot file for external changes.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher invokes a callback whenever the watched snapshot file is written or
// created. The callback runs on the watcher goroutine; callers that mutate
// shared state must hand the event off to their own event loop.
type Watcher struct {
	fw     *fsnotify.Watcher
	path   string
	onEdit func()
	logger *zap.Logger
	done   chan struct{}
}

// New watches the snapshot at path. The parent directory must exist; the file
// itself may not yet.
func New(path string, onEdit func(), logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace files on save and
	// the inode-level watch would be lost.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		fw:     fw,
		path:   filepath.Clean(path),
		onEdit: onEdit,
		logger: logger,
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Info("knowledge snapshot changed", zap.String("path", w.path))
			w.onEdit()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops watching and waits for the event loop to drain.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
