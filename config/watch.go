package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchPollInterval is the fallback polling cadence when fsnotify is
// unavailable on the platform.
const watchPollInterval = 500 * time.Millisecond

// Watch follows a parameter file and sends a freshly parsed File after each
// change. The initial contents are sent immediately. The channel is closed
// when the context is cancelled. Parse failures on intermediate writes are
// skipped so editors that save in multiple steps do not break the stream.
//
// The watch is installed before Watch returns, so changes made after the
// call cannot fall between the initial load and the first event.
func Watch(ctx context.Context, path string) (<-chan File, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	initial, err := LoadFormat(path, format)
	if err != nil {
		return nil, err
	}

	ch := make(chan File, 1)
	ch <- initial

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		go func() {
			defer close(ch)
			watchPolling(ctx, ch, path, format)
		}()
		return ch, nil
	}

	// Watch the directory; editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		go func() {
			defer close(ch)
			watchPolling(ctx, ch, path, format)
		}()
		return ch, nil
	}

	go func() {
		defer close(ch)
		defer watcher.Close()
		watchEvents(ctx, ch, watcher, path, format)
	}()

	return ch, nil
}

// watchEvents reloads the file on fsnotify write and create events.
func watchEvents(ctx context.Context, ch chan<- File, watcher *fsnotify.Watcher, path string, format Format) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := LoadFormat(path, format)
			if err != nil {
				continue
			}
			send(ctx, ch, cfg)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// watchPolling reloads the file whenever its mtime advances.
func watchPolling(ctx context.Context, ch chan<- File, path string, format Format) {
	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			cfg, err := LoadFormat(path, format)
			if err != nil {
				continue
			}
			send(ctx, ch, cfg)
		}
	}
}

func send(ctx context.Context, ch chan<- File, cfg File) {
	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
