package session

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/labrig/labrig-go/pkg/log"
)

// Session is the bookkeeping unit for one experiment run: a run ID, a place
// on disk, and an event log that devices write into. Inject Logger() into
// each device taking part in the run.
type Session struct {
	id    string
	name  string
	path  string
	file  *log.FileLogger
	out   log.Logger
	start time.Time
}

// Config configures a session.
type Config struct {
	// Name labels the run and its files. Required.
	Name string

	// BaseDir is where the session lives. Defaults to the current directory.
	BaseDir string

	// InPlace writes the session files directly into BaseDir instead of
	// creating a dedicated <name>_<timestamp> directory.
	InPlace bool

	// Console optionally mirrors events to an slog.Logger.
	Console *slog.Logger
}

// New creates the session directory (unless InPlace), opens the event log
// and records the session start.
func New(cfg Config) (*Session, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("session: name is required")
	}
	base := cfg.BaseDir
	if base == "" {
		base = "."
	}

	stamp := time.Now().Format("2006-01-02_15.04.05")
	var path, logPath string
	if cfg.InPlace {
		path = base
		logPath = filepath.Join(base, cfg.Name+"_"+stamp+".rlog")
	} else {
		path = filepath.Join(base, cfg.Name+"_"+stamp)
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, err
		}
		logPath = filepath.Join(path, cfg.Name+".rlog")
	}

	file, err := log.NewFileLogger(logPath)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:    uuid.NewString(),
		name:  cfg.Name,
		path:  path,
		file:  file,
		start: time.Now(),
	}

	var sink log.Logger = file
	if cfg.Console != nil {
		sink = log.NewMultiLogger(file, log.NewSlogAdapter(cfg.Console))
	}
	s.out = &stamper{id: s.id, next: sink}

	s.out.Log(log.Event{
		Timestamp: s.start,
		Category:  log.CategoryState,
		State: &log.StateChangeEvent{
			Entity:   log.StateEntitySession,
			NewState: "started",
			Reason:   cfg.Name,
		},
	})

	return s, nil
}

// ID returns the run UUID.
func (s *Session) ID() string {
	return s.id
}

// Name returns the session name.
func (s *Session) Name() string {
	return s.name
}

// Path returns the directory holding the session files.
func (s *Session) Path() string {
	return s.path
}

// LogPath returns the event log file path.
func (s *Session) LogPath() string {
	return s.file.Path()
}

// Logger returns the logger to inject into devices. Every event is stamped
// with the session's run ID.
func (s *Session) Logger() log.Logger {
	return s.out
}

// Close records the session end and closes the event log.
// It is safe to call Close multiple times.
func (s *Session) Close() error {
	s.out.Log(log.Event{
		Timestamp: time.Now(),
		Category:  log.CategoryState,
		State: &log.StateChangeEvent{
			Entity:   log.StateEntitySession,
			OldState: "started",
			NewState: "closed",
		},
	})
	return s.file.Close()
}

// stamper fills in the session ID on events that don't carry one.
type stamper struct {
	id   string
	next log.Logger
}

func (st *stamper) Log(event log.Event) {
	if event.SessionID == "" {
		event.SessionID = st.id
	}
	st.next.Log(event)
}

// Compile-time interface satisfaction check.
var _ log.Logger = (*stamper)(nil)
