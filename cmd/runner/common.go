package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/spike-runner/internal/audio"
	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/storage"
)

// newLogger returns a stderr logger for server commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newGameLogger returns the logger for commands that own the terminal.
// Output goes to ~/.runner/debug.log with --debug and is dropped otherwise.
// The returned func closes the log file.
func newGameLogger() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}

	path := filepath.Join(runnerDir(), "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger("runner"), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger("runner"), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "runner",
	})
	return logger, func() { f.Close() }
}

// runnerDir is the per-user data directory.
func runnerDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".runner"
	}
	return filepath.Join(home, ".runner")
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the runtime config from global flags and the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database. Play continues without persistence when it
// cannot be opened, so a failure is only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// startAudio opens the sound device unless muted. It returns nil when audio
// is off or unavailable.
func startAudio(muted bool, logger *log.Logger) *audio.SoundManager {
	if muted {
		return nil
	}
	sounds := audio.NewSoundManager(audio.DefaultConfig())
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return nil
	}
	return sounds
}
