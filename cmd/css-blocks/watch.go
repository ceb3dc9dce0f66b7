package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(cfgPath *string) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-validate definition files when they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(*cfgPath)
			if err != nil {
				return err
			}

			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			return watchCSS(cmd, target, debounce, func(changed []string) {
				for _, path := range changed {
					diags, err := checkFile(opts, path)
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
						continue
					}
					for _, d := range diags {
						fmt.Fprintln(cmd.ErrOrStderr(), d.String())
					}
					if len(diags) == 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
					}
				}
			})
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 250*time.Millisecond, "delay before re-checking after a change")
	return cmd
}

func watchCSS(cmd *cobra.Command, target string, debounce time.Duration, onChange func(changed []string)) error {
	root, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchRecursive(watcher, root); err != nil {
		return err
	}

	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	pending := false
	pendingPaths := map[string]bool{}

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			path := filepath.Clean(event.Name)
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, path)
					continue
				}
			}
			if !strings.HasSuffix(path, ".css") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			pendingPaths[path] = true
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			changed := make([]string, 0, len(pendingPaths))
			for path := range pendingPaths {
				changed = append(changed, path)
			}
			sort.Strings(changed)
			pendingPaths = map[string]bool{}
			onChange(changed)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}

func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		name := entry.Name()
		if path != root && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
