package save

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "save.json"))
}

func TestLoadRawDefault(t *testing.T) {
	s := newTestStore(t)
	data, err := s.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if got, want := string(data), `{"highScore":0,"credits":0,"upgrades":[]}`; got != want {
		t.Errorf("LoadRaw = %s, want %s", got, want)
	}
}

func TestSaveRawKeepsDocument(t *testing.T) {
	s := newTestStore(t)
	in := `{ "highScore": 120, "credits": 4, "upgrades": ["speed", {"lvl": 2}], "extra": true }`
	if err := s.SaveRaw(context.Background(), []byte(in)); err != nil {
		t.Fatalf("SaveRaw: %v", err)
	}

	data, err := s.LoadRaw(context.Background())
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	want := `{"highScore":120,"credits":4,"upgrades":["speed",{"lvl":2}],"extra":true}`
	if string(data) != want {
		t.Errorf("stored %s, want %s", data, want)
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestSaveRawRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"highScore":`},
		{"empty body", ``},
		{"null", `null`},
		{"false", `false`},
		{"zero", `0`},
		{"empty string", `""`},
		{"string zero", `"0"`},
		{"empty array", `[]`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if err := s.SaveRaw(context.Background(), []byte(tt.body)); !errors.Is(err, ErrInvalid) {
				t.Fatalf("SaveRaw(%q) = %v, want ErrInvalid", tt.body, err)
			}
			if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
				t.Error("rejected document must not be written")
			}
		})
	}
}

func TestRecordHighScoreKeepsOtherFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	in := `{"highScore":10,"credits":2.5,"upgrades":["shield"],"profile":{"name":"neo"}}`
	if err := s.SaveRaw(ctx, []byte(in)); err != nil {
		t.Fatal(err)
	}

	changed, err := RecordHighScore(ctx, s, 250)
	if err != nil || !changed {
		t.Fatalf("RecordHighScore = %v, %v", changed, err)
	}
	data, err := s.LoadRaw(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"highScore": `250`,
		"credits":   `2.5`,
		"upgrades":  `["shield"]`,
		"profile":   `{"name":"neo"}`,
	}
	if len(doc) != len(want) {
		t.Errorf("stored %s, want exactly %d fields", data, len(want))
	}
	for k, v := range want {
		if string(doc[k]) != v {
			t.Errorf("%s = %s, want %s", k, doc[k], v)
		}
	}

	changed, err = RecordHighScore(ctx, s, 100)
	if err != nil || changed {
		t.Errorf("lower score should not change the record: %v, %v", changed, err)
	}
}

func TestLoadIsLenient(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if err := s.SaveRaw(ctx, []byte(`{"highScore":"lots","credits":3.9,"upgrades":{"x":1}}`)); err != nil {
		t.Fatal(err)
	}
	r, err := Load(ctx, s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.HighScore != 0 || r.Credits != 3 || r.Upgrades == nil || len(r.Upgrades) != 0 {
		t.Errorf("record = %+v", r)
	}
}

func TestRecordHighScoreRejectsNonObject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if err := s.SaveRaw(ctx, []byte(`[1,2]`)); err != nil {
		t.Fatal(err)
	}
	if _, err := RecordHighScore(ctx, s, 10); err == nil {
		t.Error("expected an error for a document that is not an object")
	}
}

func TestLoadDefaultRecord(t *testing.T) {
	r, err := Load(context.Background(), newTestStore(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.HighScore != 0 || r.Credits != 0 || r.Upgrades == nil || len(r.Upgrades) != 0 {
		t.Errorf("record = %+v, want defaults", r)
	}
	data, _ := json.Marshal(r)
	if string(data) != `{"highScore":0,"credits":0,"upgrades":[]}` {
		t.Errorf("marshalled default = %s", data)
	}
}
