package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchGolden watches the golden document for changes and invokes
// callback after each write, debounced so editor save bursts trigger a
// single re-check. Blocks until the watcher fails or its channels close.
func (c *Checker) WatchGolden(ui UICallback, callback func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }() //nolint:errcheck

	goldenPath := c.golden.Path()

	if err := watcher.Add(goldenPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", goldenPath, err)
	}

	// Also watch the directory for when the file is deleted/recreated.
	goldenDir := filepath.Dir(goldenPath)
	if err := watcher.Add(goldenDir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", goldenDir, err)
	}

	fmt.Printf("Watching for changes to %s...\n", goldenPath)
	fmt.Println("Press Ctrl+C to stop")

	// Debounce rapid changes
	var debounceTimer *time.Timer
	const debounceDelay = 1 * time.Second

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Name != goldenPath {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				debounceTimer = time.AfterFunc(debounceDelay, func() {
					fmt.Printf("\nDetected change to %s\n", filepath.Base(goldenPath))

					if _, err := os.Stat(goldenPath); err != nil {
						ui.ShowWarning("File Not Found", "Golden document was deleted or is inaccessible")
						return
					}

					if err := callback(); err != nil {
						ui.ShowError("Check Failed", err.Error())
					} else {
						ui.ShowSuccess("Check completed")
					}

					fmt.Println("\nStill watching for changes...")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.log.Warn().Err(err).Msg("watch error")
		}
	}
}
