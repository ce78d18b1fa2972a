package engine

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ScoreSnapshot is one frame of a recorded match: the scoreboard as it stood
// after a simulation step.
type ScoreSnapshot struct {
	Minute     int
	Phase      Phase
	HomeScore  int
	AwayScore  int
	EventCount int
}

// Replay holds the sequential scoreboard snapshots of a match so a finished
// game can be re-stepped for presentation without re-simulating it.
type Replay struct {
	MatchID      string
	States       []ScoreSnapshot
	CurrentIndex int
	mu           sync.RWMutex
}

// NewReplay creates an empty replay for the match.
func NewReplay(matchID string) *Replay {
	return &Replay{MatchID: matchID}
}

// RecordState appends a snapshot.
func (r *Replay) RecordState(snapshot ScoreSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.States = append(r.States, snapshot)
}

// Start rewinds the cursor to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CurrentIndex = 0
}

// Next returns the next snapshot and advances, or nil at the end.
func (r *Replay) Next() *ScoreSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex < len(r.States) {
		state := r.States[r.CurrentIndex]
		r.CurrentIndex++
		return &state
	}
	return nil
}

// Previous steps the cursor back and returns that snapshot, or nil at the
// beginning.
func (r *Replay) Previous() *ScoreSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		state := r.States[r.CurrentIndex]
		return &state
	}
	return nil
}

// Skip moves the cursor forward or backward by count frames, clamped to the
// recording bounds, and returns the snapshot there.
func (r *Replay) Skip(count int) *ScoreSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.CurrentIndex + count
	if idx >= len(r.States) {
		idx = len(r.States) - 1
	}
	if idx < 0 {
		idx = 0
	}
	r.CurrentIndex = idx
	if idx < len(r.States) {
		state := r.States[idx]
		return &state
	}
	return nil
}

// Size returns the number of recorded snapshots.
func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.States)
}

// SaveToFile writes the replay to a gzipped gob file in the directory.
func (r *Replay) SaveToFile(directory string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("create replay directory: %w", err)
	}
	path := filepath.Join(directory, r.MatchID+".replay.gz")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	payload := struct {
		MatchID string
		States  []ScoreSnapshot
	}{MatchID: r.MatchID, States: r.States}
	if err := gob.NewEncoder(gz).Encode(payload); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

// LoadReplayFromFile reads a replay previously written by SaveToFile.
func LoadReplayFromFile(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open replay stream: %w", err)
	}
	defer gz.Close()

	var payload struct {
		MatchID string
		States  []ScoreSnapshot
	}
	if err := gob.NewDecoder(gz).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	return &Replay{MatchID: payload.MatchID, States: payload.States}, nil
}
