package logger

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
)

// LogEntry is a single decoded event from a JSON lines log.
type LogEntry struct {
	Level     string   `json:"level"`
	Timestamp string   `json:"timestamp"`
	Event     string   `json:"msg"`
	SessionID string   `json:"session_id"`
	Argv      []string `json:"argv,omitempty"`
	Path      string   `json:"path,omitempty"`
	ExitCode  *int     `json:"exit_code,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Command returns the name of the command the event is about.
func (le *LogEntry) Command() string {
	if len(le.Argv) == 0 {
		return ""
	}
	return le.Argv[0]
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries    int        `json:"log_entries"`
	Sessions      int        `json:"sessions"`
	UnknownEvents StrCounter `json:"unknown_events,omitempty"`

	RunCommand     RunCommandReport `json:"run_command_report"`
	UnknownCommand StrCounter       `json:"unknown_command_report"`
	Builtins       StrCounter       `json:"builtin_report"`
	ExitCodes      StrCounter       `json:"exit_code_report"`
	Failures       *PathCounter     `json:"failure_report"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		Failures: NewPathCounter("event", "command", "error"),
	}
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch le.Event {
	case EventSessionStart:
		r.Sessions++
	case EventRunCommand:
		r.RunCommand.update(le)
	case EventUnknownCommand:
		r.UnknownCommand.Increment(le.Command())
	case EventBuiltin:
		r.Builtins.Increment(le.Command())
		if le.Error != "" {
			r.Failures.Increment(le.Event, le.Command(), le.Error)
		}
	case EventCommandExit:
		if le.ExitCode != nil {
			r.ExitCodes.Increment(strconv.Itoa(*le.ExitCode))
		}
	case EventExecFailed, EventWaitFailed, EventSpawnFailed, EventReadFailed, EventInvalidInput:
		r.Failures.Increment(le.Event, le.Command(), le.Error)
	case EventSessionEnd:
		// Ignore
	default:
		r.UnknownEvents.Increment(le.Event)
	}
}

type RunCommandReport struct {
	// Paths commands resolved to.
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	// Names of the commands as typed.
	CommandNames StrCounter `json:"command_names"`
}

func (r *RunCommandReport) update(le *LogEntry) {
	r.ResolvedCommandPaths.Increment(le.Path)
	if name := le.Command(); name != "" {
		r.CommandNames.Increment(name)
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the number of times key was seen.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of tuples seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Count returns the number of times the tuple was seen.
func (ctr *PathCounter) Count(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
