package store

import (
	"fmt"
	"strings"

	"hustlebot/internal/db"
)

// ArchiveStore mirrors turns into SQL for inspection across runs. It is a
// write-behind sink; the in-memory log never reads it back during chat.
type ArchiveStore struct {
	db    *db.DB
	runID string
}

// NewArchiveStore tags every saved turn with runID.
func NewArchiveStore(database *db.DB, runID string) *ArchiveStore {
	return &ArchiveStore{db: database, runID: runID}
}

// SaveTurn inserts one turn for userID.
func (as *ArchiveStore) SaveTurn(userID string, turn Turn) error {
	if userID == "" {
		return fmt.Errorf("user_id is required")
	}

	query := as.rebind(`
		INSERT INTO turns (run_id, user_id, role, text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if _, err := as.db.Exec(query, as.runID, userID, turn.Role, turn.Text, turn.Timestamp); err != nil {
		return fmt.Errorf("failed to save turn: %w", err)
	}
	return nil
}

// History returns the most recent limit turns for userID in arrival order. A
// non-positive limit means DefaultGetLimit.
func (as *ArchiveStore) History(userID string, limit int) ([]Turn, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if limit <= 0 {
		limit = DefaultGetLimit
	}

	query := as.rebind(`
		SELECT role, text, created_at
		FROM turns
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?
	`)
	rows, err := as.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.Role, &t.Text, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	// Rows come newest first; flip back to arrival order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// rebind rewrites ? placeholders to $n for postgres.
func (as *ArchiveStore) rebind(query string) string {
	if as.db.Driver() != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
