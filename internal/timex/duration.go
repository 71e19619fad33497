// Package timex provides a time.Duration wrapper that can be unmarshalled
// from JSON either as a duration string ("30m") or as integer nanoseconds.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration is a JSON-friendly wrapper around time.Duration.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}
