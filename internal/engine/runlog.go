package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Seed          int64          `json:"seed"`
	Outcome       string         `json:"outcome"` // "victory" or "terminated"
	FloorsReached int            `json:"floors_reached"`
	TurnsPlayed   int            `json:"turns_played"`
	EnemiesKilled map[string]int `json:"enemies_killed"`
	DamageDealt   int            `json:"damage_dealt"`
	DamageTaken   int            `json:"damage_taken"`
	CauseOfDeath  string         `json:"cause_of_death,omitempty"`
}

func newRunLog(seed int64) RunLog {
	return RunLog{
		Seed:          seed,
		FloorsReached: 1,
		EnemiesKilled: make(map[string]int),
	}
}

// saveRunLog appends the finished run as a single JSON line to runs.jsonl.
// Errors are silently discarded so a disk problem never crashes the game.
func saveRunLog(log RunLog) {
	dir, err := runLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	f.Write(data)         //nolint:errcheck
	f.Write([]byte("\n")) //nolint:errcheck
}

// runLogDir follows the XDG Base Directory spec:
// $XDG_DATA_HOME/warehouse-crawler, defaulting to
// ~/.local/share/warehouse-crawler.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "warehouse-crawler"), nil
}
