package store

import (
	"sync"
	"time"

	"hustlebot/internal/logger"
)

// DefaultGetLimit caps Get when the caller passes a non-positive limit.
const DefaultGetLimit = 20

// MemoryStore holds every session's turns in memory and mirrors each append
// to the optional session file and turn archive. Memory stays authoritative:
// a failing mirror is reported to diagnostics and otherwise ignored. Sessions
// grow without bound; there is no eviction.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Turn
	file     *SessionFile
	archive  *ArchiveStore
	diag     logger.Logger
}

// NewMemoryStore builds the store and, when a session file is given, loads
// the previous history from it. An unreadable or corrupt file resets the
// history to empty and is only visible on the diagnostics channel.
func NewMemoryStore(file *SessionFile, archive *ArchiveStore, diag logger.Logger) *MemoryStore {
	if diag == nil {
		diag = logger.Discard()
	}
	m := &MemoryStore{
		sessions: make(map[string][]Turn),
		file:     file,
		archive:  archive,
		diag:     diag,
	}
	if file != nil {
		sessions, err := file.Load()
		if err != nil {
			diag.Warnf("session file unreadable, starting empty: %v", err)
		} else if sessions != nil {
			m.sessions = sessions
		}
	}
	return m
}

// Append records a turn stamped with the current time, then rewrites the
// persisted snapshot and mirrors the turn to the archive.
func (m *MemoryStore) Append(userID, role, text string) {
	turn := Turn{Role: role, Text: text, Timestamp: time.Now().Unix()}

	m.mu.Lock()
	m.sessions[userID] = append(m.sessions[userID], turn)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	if m.file != nil {
		if err := m.file.Write(snapshot); err != nil {
			m.diag.Warnf("session file write failed: %v", err)
		}
	}
	if m.archive != nil {
		if err := m.archive.SaveTurn(userID, turn); err != nil {
			m.diag.Warnf("turn archive write failed: %v", err)
		}
	}
}

// Get returns the most recent limit turns for userID in arrival order. A
// non-positive limit means DefaultGetLimit. The returned slice is a copy.
func (m *MemoryStore) Get(userID string, limit int) []Turn {
	if limit <= 0 {
		limit = DefaultGetLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	turns := m.sessions[userID]
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

func (m *MemoryStore) snapshotLocked() map[string][]Turn {
	snapshot := make(map[string][]Turn, len(m.sessions))
	for id, turns := range m.sessions {
		snapshot[id] = append([]Turn(nil), turns...)
	}
	return snapshot
}
