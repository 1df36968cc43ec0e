// Package daemonconfig resolves the window manager daemon's own startup
// settings (socket path, which executable produces the configuration
// protocol lines, log level) from flags and environment; no settings file
// is read. This is distinct from the `config` package, which executes the
// user's configuration program and replays its output against the running
// window manager — daemonconfig only decides *how to start*.
//
// Grounded on FocusStreamer's cmd/focusstreamer/commands/root.go (cobra
// flags bound into viper) and internal/config (a small persisted settings
// struct), adapted from an HTTP server's settings to a window manager
// daemon's.
package daemonconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings is the fully resolved daemon configuration.
type Settings struct {
	SocketPath string
	ConfigExec string
	LogLevel   string
	LogPretty  bool
}

// defaultSocketPath is "$XDG_RUNTIME_DIR/mywm.sock", falling back to
// "/tmp/mywm.sock".
func defaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "mywm.sock")
	}
	return "/tmp/mywm.sock"
}

func defaultConfigExec() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mywm", "config")
}

// Load reads daemon settings from viper, which has already had CLI flags
// bound to it by internal/commands. Environment variables are read under
// the MYWM_ prefix (MYWM_SOCKET, MYWM_CONFIG_EXEC, MYWM_LOG_LEVEL,
// MYWM_LOG_PRETTY), matching viper's standard precedence: flag > env >
// default.
func Load() (*Settings, error) {
	v := viper.GetViper()
	v.SetEnvPrefix("mywm")
	v.AutomaticEnv()

	v.SetDefault("socket", defaultSocketPath())
	v.SetDefault("config_exec", defaultConfigExec())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", isTerminal(os.Stderr))

	s := &Settings{
		SocketPath: v.GetString("socket"),
		ConfigExec: v.GetString("config_exec"),
		LogLevel:   v.GetString("log_level"),
		LogPretty:  v.GetBool("log_pretty"),
	}
	if s.SocketPath == "" {
		return nil, fmt.Errorf("daemonconfig: socket path resolved empty")
	}
	return s, nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
