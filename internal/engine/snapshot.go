package engine

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a complete saved run: the seed plus the log of every consumed
// intent. Replaying the log against a fresh session rebuilds the exact
// world, so nothing else needs to be serialized.
type Snapshot struct {
	Seed    int64    `json:"seed"`
	Turn    int      `json:"turn"`
	Intents []Intent `json:"intents"`
}

// Snapshot serializes the session.
func (s *Session) Snapshot() ([]byte, error) {
	snap := Snapshot{
		Seed:    s.seed,
		Turn:    s.turn,
		Intents: s.intents,
	}
	return json.Marshal(snap)
}

// Resume rebuilds a session from Snapshot data by replaying its intent log.
// A log that no longer replays cleanly is reported as corrupt.
func Resume(data []byte) (*Session, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	s, err := NewSession(snap.Seed)
	if err != nil {
		return nil, err
	}
	for i, intent := range snap.Intents {
		if _, err := s.Submit(intent); err != nil {
			return nil, fmt.Errorf("corrupt snapshot: intent %d rejected on replay: %w", i, err)
		}
	}
	if s.turn != snap.Turn {
		return nil, fmt.Errorf("corrupt snapshot: replayed %d turns, snapshot says %d", s.turn, snap.Turn)
	}
	return s, nil
}
