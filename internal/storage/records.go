package storage

import (
	"encoding/json"
	"fmt"
)

// Persisted record types. Payloads are a closed set of versioned records,
// one per fixed key, rather than open-ended dynamic maps.

const (
	// KeyLastResult holds the final statistics of the most recent run.
	KeyLastResult = "classic:last_result"

	// KeySettings holds the player's gameplay settings.
	KeySettings = "classic:settings"

	recordVersion = 1
)

// LastResult is the persisted final statistics of a run.
type LastResult struct {
	Version              int     `json:"v"`
	Spawned              int     `json:"spawned"`
	Escaped              int     `json:"escaped"`
	Hits                 int     `json:"hits"`
	Misses               int     `json:"misses"`
	Score                int     `json:"score"`
	DifficultyMultiplier float64 `json:"difficultyMultiplier"`
	TimeMs               int64   `json:"timeMs"`
}

// Settings is the persisted gameplay settings record.
type Settings struct {
	Version               int     `json:"v"`
	UIOpacity             float64 `json:"uiOpacity"`
	SpeedLevel            int     `json:"speedLevel"`
	DifficultyProgression bool    `json:"difficultyProgression"`
}

// SaveLastResult writes the record under its fixed key.
func SaveLastResult(s Store, r LastResult) error {
	r.Version = recordVersion
	return putJSON(s, KeyLastResult, r)
}

// LoadLastResult reads the record, reporting whether one was stored.
// A record with an unknown version is treated as absent.
func LoadLastResult(s Store) (LastResult, bool, error) {
	var r LastResult
	ok, err := getJSON(s, KeyLastResult, &r)
	if err != nil || !ok {
		return LastResult{}, false, err
	}
	if r.Version != recordVersion {
		return LastResult{}, false, nil
	}
	return r, true, nil
}

// SaveSettings writes the record under its fixed key.
func SaveSettings(s Store, set Settings) error {
	set.Version = recordVersion
	return putJSON(s, KeySettings, set)
}

// LoadSettings reads the record, reporting whether one was stored.
// A record with an unknown version is treated as absent.
func LoadSettings(s Store) (Settings, bool, error) {
	var set Settings
	ok, err := getJSON(s, KeySettings, &set)
	if err != nil || !ok {
		return Settings{}, false, err
	}
	if set.Version != recordVersion {
		return Settings{}, false, nil
	}
	return set, true, nil
}

func putJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %q: %w", key, err)
	}
	return s.Put(key, data)
}

func getJSON(s Store, key string, v any) (bool, error) {
	data, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("storage: cannot decode %q: %w", key, err)
	}
	return true, nil
}
