// Package log provides centralised audit logging for pathkit operations.
// Logs are stored in ~/.pathkit/log/pathkit-log.db and record every CLI
// command and MCP tool invocation across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("path:dirname", "dirname").
//		Platform(p.String()).
//		Path(input).
//		Result(out).
//		Write(err)
//
//	log.Event("path:walkup", "walkup").
//		Path(input).
//		Detail("root", root).
//		Detail("visited", n).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "path:join",
// "core:check", "mcp:path_resolve".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source   string `json:"source"`             // e.g., "path:join", "mcp:path_join"
	Action   string `json:"action"`             // operation name: dirname, join, resolve, etc.
	Platform string `json:"platform,omitempty"` // path convention applied: posix or windows
	Path     string `json:"path,omitempty"`     // input: primary path argument

	// Output field, populated after the operation succeeds
	Result string `json:"result,omitempty"`

	// Timing
	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`          // whether operation succeeded
	Error   string         `json:"error,omitempty"`  // error message if failed
	Detail  map[string]any `json:"detail,omitempty"` // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "path:join", "core:config")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:path_join")
//
// The action names the operation that was performed.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the primary path argument of the operation.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Platform records which path convention the operation applied.
func (b *Builder) Platform(name string) *Builder {
	b.entry.Platform = name
	return b
}

// Result sets the textual output of the operation.
//
// Only call after confirming success:
//
//	out, err := p.ResolveRelative(in)
//	l := log.Event("path:resolve", "resolve").Path(in)
//	if err == nil {
//		l.Result(out)
//	}
//	l.Write(err)
func (b *Builder) Result(result string) *Builder {
	b.entry.Result = result
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// extra arguments, walk roots, visit counts, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory of the invocation.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
