// Package shell runs a child shell on a pseudo-terminal and exposes its
// byte streams to the emulator host.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"

	"github.com/javanhut/RookTerm/config"
)

// Session manages a pseudo-terminal connection to a shell
type Session struct {
	cmd      *exec.Cmd
	pty      *os.File
	mu       sync.Mutex
	exited   bool
	exitedMu sync.Mutex
}

// NewSession starts a shell on a new PTY sized to cols x rows
func NewSession(cfg config.Config, cols, rows uint16) (*Session, error) {
	shell := findShellFromConfig(cfg)

	// Get user info from system, not environment
	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("resolving current user: %w", err)
	}

	var args []string
	if !cfg.Shell.SourceRC {
		args = append(args, "--noprofile", "--norc")
	}
	cmd := exec.Command(shell, args...)

	// Create new session - critical for independence from parent terminal
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	// Clean environment - don't inherit from parent terminal
	env := []string{
		"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin",
		"TERM=" + cfg.Terminal.Term,
		"COLORTERM=truecolor",
		"HOME=" + currentUser.HomeDir,
		"USER=" + currentUser.Username,
		"SHELL=" + shell,
		"LANG=en_US.UTF-8",
		"LC_ALL=en_US.UTF-8",
	}
	for k, v := range cfg.Shell.Env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env

	// Start in home directory
	cmd.Dir = currentUser.HomeDir

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: cols,
		Rows: rows,
	})
	if err != nil {
		return nil, fmt.Errorf("starting shell on pty: %w", err)
	}

	session := &Session{
		cmd: cmd,
		pty: ptmx,
	}

	// Monitor for process exit
	go func() {
		cmd.Wait()
		session.exitedMu.Lock()
		session.exited = true
		session.exitedMu.Unlock()
	}()

	return session, nil
}

// findShellFromConfig finds the shell from config or falls back to system default
func findShellFromConfig(cfg config.Config) string {
	if cfg.Shell.Path != "" {
		if _, err := os.Stat(cfg.Shell.Path); err == nil {
			return cfg.Shell.Path
		}
	}
	return findShell()
}

// findShell finds the default shell from system user database
func findShell() string {
	// Get shell from /etc/passwd, not environment variable
	currentUser, err := user.Current()
	if err == nil {
		shell := getUserShell(currentUser.Username)
		if shell != "" {
			if _, err := os.Stat(shell); err == nil {
				return shell
			}
		}
	}

	// Fallback to common shells
	shells := []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/usr/bin/zsh", "/bin/sh"}
	for _, shell := range shells {
		if _, err := os.Stat(shell); err == nil {
			return shell
		}
	}
	return "/bin/sh"
}

// getUserShell reads the user's shell from /etc/passwd
func getUserShell(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}

// Read reads from the PTY
func (s *Session) Read(buf []byte) (int, error) {
	return s.pty.Read(buf)
}

// Write writes to the PTY
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty.Write(data)
}

// Resize resizes the PTY
func (s *Session) Resize(cols, rows uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pty.Setsize(s.pty, &pty.Winsize{
		Cols: cols,
		Rows: rows,
	})
}

// HasExited returns true if the shell process has exited
func (s *Session) HasExited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close closes the PTY session
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

// Reader returns an io.Reader for the PTY
func (s *Session) Reader() io.Reader {
	return s.pty
}

// Writer returns an io.Writer for the PTY
func (s *Session) Writer() io.Writer {
	return s.pty
}
