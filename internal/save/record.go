// Package save persists the single player record: the high score plus the
// credits and upgrades fields other clients may store alongside it.
//
// The record is opaque to the service. FileStore keeps whatever JSON it is
// given, Handler exposes it over HTTP, and Client talks to that handler.
// Both FileStore and Client satisfy Saver.
package save

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is the typed view of the stored document. It is read-only: writes
// go through the raw document so fields this view does not model survive.
type Record struct {
	HighScore int               `json:"highScore"`
	Credits   int               `json:"credits"`
	Upgrades  []json.RawMessage `json:"upgrades"`
}

// DefaultRecord is returned when nothing has been saved yet.
func DefaultRecord() Record {
	return Record{Upgrades: []json.RawMessage{}}
}

// Saver loads and fully replaces the stored document.
type Saver interface {
	LoadRaw(ctx context.Context) ([]byte, error)
	SaveRaw(ctx context.Context, data []byte) error
}

// Load reads the record from s. Fields with an unexpected type read as
// their zero value instead of failing the whole record.
func Load(ctx context.Context, s Saver) (Record, error) {
	data, err := s.LoadRaw(ctx)
	if err != nil {
		return Record{}, err
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return Record{}, err
	}

	r := DefaultRecord()
	r.HighScore = intField(doc, "highScore")
	r.Credits = intField(doc, "credits")
	if raw, ok := doc["upgrades"]; ok {
		var upgrades []json.RawMessage
		if json.Unmarshal(raw, &upgrades) == nil && upgrades != nil {
			r.Upgrades = upgrades
		}
	}
	return r, nil
}

// RecordHighScore raises the stored high score to score if it is higher.
// It reports whether the record changed. Only highScore is rewritten; every
// other field is stored back as it was.
func RecordHighScore(ctx context.Context, s Saver, score int) (bool, error) {
	data, err := s.LoadRaw(ctx)
	if err != nil {
		return false, fmt.Errorf("load record: %w", err)
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return false, err
	}
	if score <= intField(doc, "highScore") {
		return false, nil
	}

	doc["highScore"], _ = json.Marshal(score)
	out, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("encode record: %w", err)
	}
	if err := s.SaveRaw(ctx, out); err != nil {
		return false, fmt.Errorf("save record: %w", err)
	}
	return true, nil
}

func decodeDocument(data []byte) (map[string]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}
	return doc, nil
}

// intField reads a numeric field, truncating fractions. Missing or
// non-numeric fields read as 0.
func intField(doc map[string]json.RawMessage, key string) int {
	var f float64
	if err := json.Unmarshal(doc[key], &f); err != nil {
		return 0
	}
	return int(f)
}

// truthy reports whether a decoded JSON value counts as a record worth
// storing. null, false, 0, "", "0" and empty arrays or objects do not.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != "" && x != "0"
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

var (
	_ Saver = (*FileStore)(nil)
	_ Saver = (*Client)(nil)
)

// Open returns a Client when url is set, otherwise a FileStore at path.
func Open(path, url string) Saver {
	if url != "" {
		return NewClient(url, nil)
	}
	return NewFileStore(path)
}
