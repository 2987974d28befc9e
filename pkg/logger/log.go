package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type LogStatus int

const (
	VERBOSE LogStatus = iota
	DEBUG
	INFO
	SUCCESS
	WARNING
	ERROR
	FATAL
)

func (e LogStatus) String() string {
	return []string{
		"V",
		"D",
		"*",
		"+",
		"!",
		"-",
		"!!!",
	}[e]
}

func (e LogStatus) Color() *color.Color {
	return []*color.Color{
		color.New(color.FgWhite, color.Italic),
		color.New(color.FgWhite, color.Italic),
		color.New(color.FgBlue),
		color.New(color.FgHiGreen),
		color.New(color.FgYellow),
		color.New(color.FgHiRed),
		color.New(color.FgHiRed, color.Bold),
	}[e]
}

// ParseLevel maps a config log_level string to a minimum LogStatus.
// Unrecognised values fall back to INFO.
func ParseLevel(level string) LogStatus {
	switch strings.ToUpper(level) {
	case "VERBOSE":
		return VERBOSE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING":
		return WARNING
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

type Logger interface {
	Emit(LogStatus, string, ...interface{})
}

type loggerImpl struct {
	name string
	mgr  *Manager
}

func (l *loggerImpl) Emit(status LogStatus, message string, interpolations ...interface{}) {
	l.mgr.Emit(status, l.name, message, interpolations...)
}

// Manager dispatches named loggers over a shared sink. Unlike a package-global
// logging setup, each Manager owns its own output and minimum level, so two
// instances in one process never race on shared handlers.
type Manager struct {
	mu      sync.Mutex
	minStat LogStatus
	out     io.Writer
	file    io.Writer
	offset  int
}

// New creates a Manager writing colorized output to stdout. An optional
// log file receives the same lines uncolored.
func New(minStat LogStatus, logFile io.Writer) *Manager {
	return &Manager{
		minStat: minStat,
		out:     os.Stdout,
		file:    logFile,
	}
}

// NewWithOutput is like New but with an explicit primary sink; used by tests.
func NewWithOutput(minStat LogStatus, out io.Writer) *Manager {
	return &Manager{minStat: minStat, out: out}
}

// GetLogger returns a named logger backed by this manager
func (m *Manager) GetLogger(name string) Logger {
	return &loggerImpl{name: name, mgr: m}
}

func (m *Manager) Emit(status LogStatus, name string, message string, interpolations ...interface{}) {
	if status < m.minStat {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(name) > m.offset {
		m.offset = len(name)
	}
	padding := strings.Repeat(" ", m.offset-len(name))
	msg := fmt.Sprintf("[%s] %s(%s) %s", name, padding, status, fmt.Sprintf(message, interpolations...))

	status.Color().Fprint(m.out, msg)
	if m.file != nil {
		fmt.Fprint(m.file, msg)
	}
}
