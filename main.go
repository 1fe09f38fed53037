package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/javanhut/RookTerm/config"
	"github.com/javanhut/RookTerm/emulator"
	"github.com/javanhut/RookTerm/shell"
	"github.com/javanhut/RookTerm/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rookterm:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cols, rows := cfg.Terminal.Cols, cfg.Terminal.Rows
	stdinFd := int(os.Stdin.Fd())
	if term.IsTerminal(stdinFd) {
		if c, r, err := term.GetSize(stdinFd); err == nil {
			cols, rows = c, r
		}
	}

	sess, err := shell.NewSession(cfg, uint16(cols), uint16(rows))
	if err != nil {
		return err
	}
	defer sess.Close()

	tm := terminal.New(cols, rows)
	logger.Info("session started",
		zap.String("id", tm.ID),
		zap.Int("cols", cols),
		zap.Int("rows", rows))

	var oldState *term.State
	if term.IsTerminal(stdinFd) {
		oldState, err = term.MakeRaw(stdinFd)
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(stdinFd, oldState)
	}

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			c, r, err := term.GetSize(stdinFd)
			if err != nil {
				continue
			}
			tm.Resize(c, r)
			if err := sess.Resize(uint16(c), uint16(r)); err != nil {
				logger.Warn("pty resize failed", zap.Error(err))
			}
		}
	}()

	done := make(chan struct{})
	go pumpOutput(tm, sess, logger, done)

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				if _, werr := sess.Write(buf[:n]); werr != nil {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	<-done
	logger.Info("shell exited", zap.String("id", tm.ID))
	return nil
}

// pumpOutput copies shell output to the host terminal while running it
// through the emulator, answering the queries that require a reply on the
// PTY and surfacing the rest as log events.
func pumpOutput(tm *terminal.Terminal, sess *shell.Session, logger *zap.Logger, done chan<- struct{}) {
	defer close(done)

	buf := make([]byte, 8192)
	for {
		n, err := sess.Read(buf)
		if n > 0 {
			os.Stdout.Write(buf[:n])
			for _, ev := range tm.Process(buf[:n]) {
				handleEvent(tm, sess, logger, ev)
			}
		}
		if err != nil {
			if err != io.EOF && !sess.HasExited() {
				logger.Warn("pty read failed", zap.Error(err))
			}
			return
		}
	}
}

func handleEvent(tm *terminal.Terminal, sess *shell.Session, logger *zap.Logger, ev emulator.TerminalEvent) {
	switch e := ev.(type) {
	case emulator.CursorPositionReportEvent:
		sess.Write([]byte(tm.Emulator.CursorPositionReport()))
	case emulator.DeviceAttributesEvent:
		sess.Write([]byte(tm.Emulator.DeviceAttributes()))
	case emulator.ColorQueryEvent:
		sess.Write([]byte(tm.Emulator.ColorQueryReport(e.Index)))
	case emulator.ResizeRequestEvent:
		tm.Resize(e.Cols, e.Rows)
		if err := sess.Resize(uint16(e.Cols), uint16(e.Rows)); err != nil {
			logger.Warn("pty resize failed", zap.Error(err))
		}
	case emulator.TitleChangedEvent:
		logger.Debug("title changed", zap.String("title", e.Title))
	case emulator.IconNameChangedEvent:
		logger.Debug("icon name changed", zap.String("name", e.Name))
	case emulator.BellEvent:
		logger.Debug("bell")
	case emulator.ClipboardSetEvent:
		if decoded, err := base64.StdEncoding.DecodeString(e.Data); err == nil {
			logger.Debug("clipboard set",
				zap.String("clipboard", e.Clipboard),
				zap.Int("bytes", len(decoded)))
		}
	case emulator.HyperlinkEvent:
		if e.URL != "" {
			logger.Debug("hyperlink opened", zap.String("url", e.URL))
		}
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	// Keep the interactive stream clean; logs go to stderr only
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
