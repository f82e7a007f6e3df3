package logger

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event names, written as the "msg" of each log line.
const (
	EventSessionStart   = "session_start"
	EventSessionEnd     = "session_end"
	EventRunCommand     = "run_command"
	EventCommandExit    = "command_exit"
	EventBuiltin        = "builtin"
	EventUnknownCommand = "unknown_command"
	EventInvalidInput   = "invalid_input"
	EventExecFailed     = "exec_failed"
	EventWaitFailed     = "wait_failed"
	EventSpawnFailed    = "spawn_failed"
	EventReadFailed     = "read_failed"
)

// Logger captures interaction events for shell sessions.
type Logger struct {
	log *zap.Logger
}

// NewJSONLinesLogger creates a Logger that writes one JSON object per line to
// w, dropping events below level.
func NewJSONLinesLogger(w io.Writer, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(w), lvl)
	return New(zap.New(core)), nil
}

// New wraps an existing zap logger.
func New(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

// NewNop creates a Logger that discards everything.
func NewNop() *Logger {
	return New(zap.NewNop())
}

// Sync flushes buffered events.
func (l *Logger) Sync() error {
	return l.log.Sync()
}

// NewSession creates a logger with a freshly generated session ID.
func (l *Logger) NewSession() *SessionLogger {
	sessionID := uuid.NewString()
	return &SessionLogger{
		log:       l.log.With(zap.String("session_id", sessionID)),
		sessionID: sessionID,
	}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	log       *zap.Logger
	sessionID string
}

// SessionID returns the ID attached to every event.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

func (l *SessionLogger) SessionStart(workDir string, searchPath []string) {
	l.log.Info(EventSessionStart, zap.String("work_dir", workDir), zap.Strings("search_path", searchPath))
}

func (l *SessionLogger) SessionEnd(exitStatus int) {
	l.log.Info(EventSessionEnd, zap.Int("exit_code", exitStatus))
}

// RunCommand records an external command about to be launched.
func (l *SessionLogger) RunCommand(argv []string, path string) {
	l.log.Info(EventRunCommand, zap.Strings("argv", argv), zap.String("path", path))
}

// CommandExit records the exit code of a reaped child.
func (l *SessionLogger) CommandExit(argv []string, exitCode int) {
	l.log.Info(EventCommandExit, zap.Strings("argv", argv), zap.Int("exit_code", exitCode))
}

// Builtin records a builtin invocation, err is nil if it succeeded.
func (l *SessionLogger) Builtin(argv []string, err error) {
	if err != nil {
		l.log.Warn(EventBuiltin, zap.Strings("argv", argv), zap.Error(err))
		return
	}
	l.log.Info(EventBuiltin, zap.Strings("argv", argv))
}

func (l *SessionLogger) UnknownCommand(argv []string) {
	l.log.Warn(EventUnknownCommand, zap.Strings("argv", argv))
}

func (l *SessionLogger) InvalidInput(err error) {
	l.log.Warn(EventInvalidInput, zap.Error(err))
}

func (l *SessionLogger) ExecFailed(argv []string, path string, err error) {
	l.log.Warn(EventExecFailed, zap.Strings("argv", argv), zap.String("path", path), zap.Error(err))
}

func (l *SessionLogger) WaitFailed(argv []string, err error) {
	l.log.Error(EventWaitFailed, zap.Strings("argv", argv), zap.Error(err))
}

func (l *SessionLogger) SpawnFailed(argv []string, err error) {
	l.log.Error(EventSpawnFailed, zap.Strings("argv", argv), zap.Error(err))
}

func (l *SessionLogger) ReadFailed(err error) {
	l.log.Error(EventReadFailed, zap.Error(err))
}
