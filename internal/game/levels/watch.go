package levels

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch invokes notify whenever a level file at or under path is
// written or created. Used by `play --watch` to rebuild the world while
// editing level files. The returned closer stops the watcher.
//
// When path names a single file, the watch is placed on its parent
// directory and filtered by name: editors save with a rename over the
// original, which would detach a watch on the file itself.
func Watch(path string, notify func()) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watchDir := path
	only := ""
	if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
		watchDir = filepath.Dir(path)
		only = filepath.Base(path)
	}
	if err := watcher.Add(watchDir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				name := filepath.Base(event.Name)
				if only != "" {
					if name == only {
						notify()
					}
					continue
				}
				ext := strings.ToLower(filepath.Ext(name))
				if ext == ".yaml" || ext == ".yml" {
					notify()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watch errors are not fatal to a running game.
			}
		}
	}()

	return watcher, nil
}
