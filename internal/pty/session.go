// Package pty spawns the child shell inside a cross-platform pseudo-terminal
// and ferries bytes between it and a vt.Terminal.
package pty

import (
	"io"
	"log"
	"os"
	"os/user"
	"sync"

	gopty "github.com/aymanbagabas/go-pty"
	"github.com/google/uuid"

	"github.com/justy989/cursedterm/internal/vt"
)

// Status is the lifecycle state of a Session's child process.
type Status int

const (
	StatusRunning Status = iota
	StatusExited
	StatusError
)

// Session wraps a PTY-backed shell process and the vt.Terminal it drives.
// It owns the reader task and the wait task (spec §5); the key-writer task
// lives in internal/app, which calls WriteKey.
type Session struct {
	mu sync.Mutex

	// ID tags every log line this session emits, so a log file spanning
	// several invocations of the program can be split back out per-run.
	ID string

	Term   *vt.Terminal
	Status Status

	p   gopty.Pty
	cmd *gopty.Cmd

	done chan struct{}

	// OutputCh receives a non-blocking signal each time the reader task
	// writes new bytes into Term. internal/app does not read it; the
	// renderer repaints on its own tick.
	OutputCh chan struct{}

	ExitCode int
	logger   *log.Logger
}

// New creates a Session around an already-constructed Terminal. Start must
// be called before the PTY is usable.
func New(term *vt.Terminal, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		ID:       uuid.NewString(),
		Term:     term,
		OutputCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Start launches shell (the user's $SHELL if empty) inside a PTY sized to
// the terminal's fixed rows/cols, with the child environment spec §6
// describes: COLUMNS/LINES/TERMCAP unset, LOGNAME/USER/SHELL/HOME/TERM set.
func (s *Session) Start(shell string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shell == "" {
		shell = defaultShell()
	}

	p, err := gopty.New()
	if err != nil {
		s.Status = StatusError
		return err
	}
	if err := p.Resize(s.Term.Cols(), s.Term.Rows()); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	cmd := p.Command(shell)
	cmd.Env = childEnv(shell)

	if err := cmd.Start(); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	s.p = p
	s.cmd = cmd

	go s.readLoop()
	go s.waitLoop()

	return nil
}

// childEnv builds the child process environment per spec §6: drop COLUMNS,
// LINES and TERMCAP from the inherited environment, then set LOGNAME, USER,
// SHELL, HOME and TERM explicitly.
func childEnv(shell string) []string {
	dropped := map[string]bool{"COLUMNS": true, "LINES": true, "TERMCAP": true}
	env := make([]string, 0, len(os.Environ())+5)
	for _, kv := range os.Environ() {
		if key, _, ok := splitEnv(kv); ok && dropped[key] {
			continue
		}
		env = append(env, kv)
	}

	name, home := currentUser()
	env = append(env,
		"LOGNAME="+name,
		"USER="+name,
		"SHELL="+shell,
		"HOME="+home,
		"TERM=xterm",
	)
	return env
}

func splitEnv(kv string) (key, value string, ok bool) {
	for i := 0; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], true
		}
	}
	return "", "", false
}

func currentUser() (name, home string) {
	u, err := user.Current()
	if err != nil {
		return "", ""
	}
	return u.Username, u.HomeDir
}

// defaultShell returns $SHELL, falling back to /bin/bash (spec §6).
func defaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}

// readLoop is the reader task (spec §5): blocking-reads the PTY, feeds
// every byte through Term.Write (which UTF-8 decodes and interprets), and
// signals OutputCh without blocking.
func (s *Session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.p.Read(buf)
		if n > 0 {
			s.Term.Write(buf[:n])
			select {
			case s.OutputCh <- struct{}{}:
			default:
			}
		}
		if err != nil {
			break
		}
	}
}

// waitLoop is the wait task: blocks for the child to exit, records its
// exit code, and closes done.
func (s *Session) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	if err != nil && s.cmd.ProcessState != nil {
		s.ExitCode = s.cmd.ProcessState.ExitCode()
	} else if err != nil {
		s.ExitCode = 1
	}
	s.Status = StatusExited
	s.mu.Unlock()
	close(s.done)
}

// WriteKey is the key-writer task's entry point (spec §5): it writes raw
// key bytes to the PTY and, when local echo is enabled, renders them into
// Term directly — the one path besides the reader that mutates the grid,
// so Term itself serializes the two under its own mutex (spec §9).
func (s *Session) WriteKey(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	n, err := pty.Write(p)
	if err != nil {
		s.logger.Printf("[pty] %s key write failed: %v", s.ID, err)
		return n, err
	}
	if s.Term.EchoEnabled() {
		for _, r := range string(p) {
			s.Term.Put(r)
		}
	}
	return n, nil
}

// WriteResponse implements vt.Responder: it answers DECID/CPR sequences
// the interpreter emits unprompted (spec §6).
func (s *Session) WriteResponse(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	return pty.Write(p)
}

// Close kills the child process and closes the PTY, then waits for the
// wait task to observe the exit.
func (s *Session) Close() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.p
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if pty != nil {
		pty.Close()
	}
	<-s.done
}

// Done returns a channel closed when the child process exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// IsRunning reports whether the child process is still alive.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status == StatusRunning
}
