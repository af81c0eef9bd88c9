// Package backup reads and writes the portable JSON backup file.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/dateutil"
	"github.com/2beens/fittrack/internal/settings"
	"github.com/2beens/fittrack/internal/workouts"
)

var (
	ErrMalformedImport = errors.New("malformed import data")
	// ErrInvalidRecord wraps ErrMalformedImport.
	ErrInvalidRecord = fmt.Errorf("%w: invalid workout record", ErrMalformedImport)
)

const ContentType = "application/json"

// Snapshot is the full exported state.
type Snapshot struct {
	Workouts []workouts.Workout `json:"workouts"`
	Settings settings.Settings  `json:"settings"`
}

// Import is a parsed backup file. Nil fields were absent (or null) in the
// file and must be left untouched.
type Import struct {
	Workouts []workouts.Workout
	Settings *settings.Partial
}

func (i Import) HasWorkouts() bool {
	return i.Workouts != nil
}

func (i Import) HasSettings() bool {
	return i.Settings != nil
}

// Export renders the snapshot as indented JSON.
func Export(s Snapshot) ([]byte, error) {
	if s.Workouts == nil {
		s.Workouts = []workouts.Workout{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// FileName is the suggested download name for a backup taken on date.
func FileName(date time.Time) string {
	return fmt.Sprintf("fittrack-backup-%s.json", dateutil.Format(date))
}

// Parse decodes a backup file. Both top-level fields are optional. Every
// workout must carry an id, a valid date and a type, and ids must be unique;
// otherwise the whole file is rejected.
func Parse(data []byte) (Import, error) {
	var raw struct {
		Workouts json.RawMessage `json:"workouts"`
		Settings json.RawMessage `json:"settings"`
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Import{}, fmt.Errorf("%w: expected a JSON object", ErrMalformedImport)
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Import{}, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}

	var imp Import
	if isPresent(raw.Workouts) {
		var ws []workouts.Workout
		if err := json.Unmarshal(raw.Workouts, &ws); err != nil {
			return Import{}, fmt.Errorf("%w: workouts: %w", ErrMalformedImport, err)
		}
		if ws == nil {
			ws = []workouts.Workout{}
		}
		if err := validateWorkouts(ws); err != nil {
			return Import{}, err
		}
		imp.Workouts = ws
	}

	if isPresent(raw.Settings) {
		var partial settings.Partial
		if err := json.Unmarshal(raw.Settings, &partial); err != nil {
			return Import{}, fmt.Errorf("%w: settings: %w", ErrMalformedImport, err)
		}
		imp.Settings = &partial
	}

	return imp, nil
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func validateWorkouts(ws []workouts.Workout) error {
	seen := make(map[string]struct{}, len(ws))
	for i, w := range ws {
		if strings.TrimSpace(w.ID) == "" {
			return fmt.Errorf("%w: #%d has no id", ErrInvalidRecord, i)
		}
		if _, ok := seen[w.ID]; ok {
			return fmt.Errorf("%w: duplicate id [%s]", ErrInvalidRecord, w.ID)
		}
		seen[w.ID] = struct{}{}

		if !dateutil.IsValid(w.Date) {
			return fmt.Errorf("%w: [%s] has invalid date [%s]", ErrInvalidRecord, w.ID, w.Date)
		}
		if strings.TrimSpace(w.Type) == "" {
			return fmt.Errorf("%w: [%s] has no type", ErrInvalidRecord, w.ID)
		}
	}
	return nil
}
