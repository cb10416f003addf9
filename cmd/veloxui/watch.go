package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultDebounce = 200 * time.Millisecond

func newWatchCmd(v *viper.Viper) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch [globs...]",
		Short: "Generate the definitions matching the globs on every change",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettings(v)
			if err != nil {
				return err
			}
			patterns, err := s.patterns(args)
			if err != nil {
				return err
			}
			logger := s.logger(cmd.ErrOrStderr())
			cfg, err := s.config(logger)
			if err != nil {
				return err
			}
			w := &watcher{
				patterns: patterns,
				debounce: debounce,
				logger:   logger,
				run: func(ctx context.Context) error {
					return generate(ctx, cfg, logger, patterns)
				},
			}
			return w.watch(cmd.Context())
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "quiet period before regenerating")
	return cmd
}

// watcher runs a generation on start and again once the files matching
// patterns stop changing for the debounce period.
type watcher struct {
	patterns []string
	debounce time.Duration
	logger   zerolog.Logger
	run      func(context.Context) error
}

// watch blocks until ctx is done. Generation failures are logged and do not
// stop watching.
func (w *watcher) watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	for _, p := range w.patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
		if err := w.add(fw, filepath.FromSlash(base)); err != nil {
			return err
		}
	}

	w.generate(ctx)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.add(fw, ev.Name); err != nil {
						w.logger.Warn().Err(err).Str("dir", ev.Name).Msg("watch directory")
					}
					continue
				}
			}
			if ev.Op == fsnotify.Chmod || !w.matches(ev.Name) {
				continue
			}
			w.logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("definition changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch")
		case <-fire:
			fire = nil
			w.generate(ctx)
		}
	}
}

func (w *watcher) generate(ctx context.Context) {
	if err := w.run(ctx); err != nil {
		w.logger.Error().Err(err).Msg("generation failed")
	}
}

// add watches dir and every directory below it.
func (w *watcher) add(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}

func (w *watcher) matches(name string) bool {
	name = filepath.ToSlash(filepath.Clean(name))
	for _, p := range w.patterns {
		if ok, _ := doublestar.Match(filepath.ToSlash(filepath.Clean(p)), name); ok {
			return true
		}
	}
	return false
}
