package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mywm/mywm/bar"
	"github.com/mywm/mywm/config"
	"github.com/mywm/mywm/internal/daemonconfig"
	"github.com/mywm/mywm/internal/log"
	"github.com/mywm/mywm/ipc"
	"github.com/mywm/mywm/wm"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the window manager daemon",
	RunE:  runDaemon,
}

// runDaemon performs the full startup sequence:
// connect to X, become the window manager, bring up the IPC control plane
// and bar publisher, replay the configuration source once, then watch it
// for changes until the reactor exits. Grounded on FocusStreamer's
// cmd/focusstreamer/commands/serve.go's component-assembly shape, adapted
// from an HTTP+overlay daemon to the window manager's reactor.
func runDaemon(cmd *cobra.Command, args []string) error {
	settings, err := daemonconfig.Load()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Init(settings.LogLevel, settings.LogPretty)
	logger := log.WithComponent("daemon")

	w, err := wm.New()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer w.Close()

	if err := w.Init(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	hub := ipc.NewHub()
	publisher := bar.New(hub)
	w.Emit = publisher.Publish
	w.Spawn = spawnDetached

	pipeline := config.New(settings.ConfigExec, w.Submit)
	w.ReloadTrigger = pipeline.RunOnce

	ln, err := ipc.Listen(settings.SocketPath)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	server := ipc.NewServer(ln, hub, w.SubmitWithFlush)

	reactorErr := make(chan error, 1)
	go func() { reactorErr <- w.Run() }()

	go func() {
		if err := server.Serve(); err != nil {
			logger.Error().Err(err).Msg("ipc server stopped")
		}
	}()

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	go func() {
		if err := pipeline.Watch(watchCtx, w.Submit); err != nil {
			logger.Warn().Err(err).Msg("config watcher stopped")
		}
	}()

	if err := pipeline.RunOnce(); err != nil {
		logger.Warn().Err(err).Msg("initial configuration failed")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		w.Quit()
	}()

	err = <-reactorErr
	server.Close()
	if err != nil {
		logger.Error().Err(err).Msg("reactor exited")
		return err
	}
	return nil
}

// spawnDetached launches a `spawn` command line as a detached child
//. The shell does the quoting/PATH lookup, the same
// delegation to an external command-launcher.
func spawnDetached(cmdline string) error {
	c := exec.Command("/bin/sh", "-c", cmdline)
	c.Stdin, c.Stdout, c.Stderr = nil, nil, nil
	return c.Start()
}
