// Package config is the configuration pipeline: it runs a
// user-supplied executable that emits control-protocol lines on standard
// output, feeds each line through the command dispatcher, and watches the
// executable's path for changes to trigger a reload.
package config

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"

	"github.com/fsnotify/fsnotify"
	"github.com/mywm/mywm/internal/log"
	"github.com/mywm/mywm/internal/shellwords"
)

var logger = log.WithComponent("config")

// Dispatch submits one parsed command to the reactor and blocks for its
// result.
type Dispatch func(verb string, args []string) error

// Pipeline runs a single configuration executable.
type Pipeline struct {
	Path     string
	Dispatch Dispatch
}

// New builds a pipeline for the executable at path.
func New(path string, dispatch Dispatch) *Pipeline {
	return &Pipeline{Path: path, Dispatch: dispatch}
}

// RunOnce executes the configuration source once, reading its stdout line
// by line and dispatching each as a command. Commands that already
// succeeded before a later failure are retained; a non-zero exit is
// reported as a "config <exit-code>" error so the IPC reply for an
// interactive `reload-config` becomes exactly "ERR config <exit-code>".
func (p *Pipeline) RunOnce() error {
	cmd := exec.Command(p.Path)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("config: failed to open stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("config: failed to start %s: %w", p.Path, err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		verb, args, err := splitLine(line)
		if err != nil {
			logger.Warn().Err(err).Str("line", line).Msg("config line failed to parse")
			continue
		}
		if err := p.Dispatch(verb, args); err != nil {
			logger.Warn().Err(err).Str("verb", verb).Msg("config line failed to apply")
		}
	}

	waitErr := cmd.Wait()
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			return fmt.Errorf("config %d", exitErr.ExitCode())
		}
		return fmt.Errorf("config: %w", waitErr)
	}
	return nil
}

func splitLine(line string) (string, []string, error) {
	fields, err := shellwords.Split(line)
	if err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty line")
	}
	return fields[0], fields[1:], nil
}

// Watch establishes a filesystem-change watch on the configuration path and
// submits a `reload-config` command through dispatch whenever it changes.
// It blocks until ctx is cancelled.
func (p *Pipeline) Watch(ctx context.Context, reloadDispatch Dispatch) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(p.Path); err != nil {
		return fmt.Errorf("config: failed to watch %s: %w", p.Path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := reloadDispatch("reload-config", nil); err != nil {
				logger.Warn().Err(err).Msg("reload-config failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("config watcher error")
		}
	}
}
