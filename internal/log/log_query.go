// log_query.go reads and prunes the audit log.
//
// Kept apart from log_storage.go, which only ever appends. These functions
// back the history and vacuum commands and open the database on demand so
// they work whether or not the global logger is initialised.

package log

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotOpen is returned when a query runs before [Open].
var ErrNotOpen = errors.New("audit log not open")

// Record is a stored audit log entry.
type Record struct {
	ID      int64  `json:"id"`
	Project string `json:"project"`
	Entry
}

// Query filters a call to [Recent].
type Query struct {
	Limit   int    // Maximum rows, newest first (0 = 20)
	Source  string // Exact source match, e.g. "path:join"
	Failed  bool   // Only failed operations
	Project bool   // Only the current project
}

const defaultLimit = 20

func current() (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil, ErrNotOpen
	}
	return global, nil
}

// Recent returns audit entries newest first.
func Recent(q Query) ([]Record, error) {
	l, err := current()
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	stmt := `SELECT id, start, end, project, source, action, platform, path,
	                result, success, error, detail
	         FROM log WHERE 1=1`
	var args []any
	if q.Source != "" {
		stmt += " AND source = ?"
		args = append(args, q.Source)
	}
	if q.Failed {
		stmt += " AND success = 0"
	}
	if q.Project {
		stmt += " AND project = ?"
		args = append(args, l.project)
	}
	stmt += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := l.db.Query(stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query log: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		r                                    Record
		platform, path, result, errMsg, dets sql.NullString
		success                              int
	)
	err := rows.Scan(&r.ID, &r.Start, &r.End, &r.Project,
		&r.Source, &r.Action, &platform, &path,
		&result, &success, &errMsg, &dets)
	if err != nil {
		return r, fmt.Errorf("scan log row: %w", err)
	}
	r.Platform = platform.String
	r.Path = path.String
	r.Result = result.String
	r.Success = success == 1
	r.Error = errMsg.String
	if dets.Valid {
		// A detail column that fails to decode keeps the rest of the row.
		_ = json.Unmarshal([]byte(dets.String), &r.Detail)
	}
	return r, nil
}

// Prune removes entries that started before now minus olderThan. A nil
// olderThan matches every entry. With dryRun set the matching rows are
// counted but kept.
func Prune(olderThan *time.Duration, dryRun bool) (int64, error) {
	l, err := current()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Unix() + 1
	if olderThan != nil {
		cutoff = time.Now().Add(-*olderThan).Unix()
	}

	if dryRun {
		var n int64
		err := l.db.QueryRow(`SELECT COUNT(*) FROM log WHERE start < ?`, cutoff).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("count log rows: %w", err)
		}
		return n, nil
	}

	res, err := l.db.Exec(`DELETE FROM log WHERE start < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune log: %w", err)
	}
	// Reclaim the freed pages; failure here leaves a larger file, not lost data.
	_, _ = l.db.Exec(`VACUUM`)
	return n, nil
}
