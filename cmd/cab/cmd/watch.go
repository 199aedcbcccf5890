package cmd

import (
	"fmt"
	"io"

	"github.com/fsnotify/fsnotify"
)

// watchFile re-runs run every time path changes on disk, until the watcher
// errors out. run receives the file's current contents.
func watchFile(out io.Writer, path string, run func([]byte) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			src, _, err := readSource([]string{path})
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if err := run(src); err != nil {
				fmt.Fprintln(out, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}
