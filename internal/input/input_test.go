package input

import (
	"testing"
	"time"
)

func newTestStream(data string) *Stream {
	s := &Stream{ch: make(chan byte, len(data)+1)}
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
	return s
}

func TestReadDecodesBothSchemes(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestStream("a \x1b[C\r")

	keys, got := s.Read(now)
	if !got {
		t.Fatal("expected bytes to be reported")
	}

	for _, k := range []Key{KeyA, KeySpace, KeyRight, KeyEnter} {
		if !keys.Pressed(k) {
			t.Errorf("key %d not pressed", k)
		}
	}
	for _, k := range []Key{KeyD, KeyLeft, KeyQuit} {
		if keys.Pressed(k) {
			t.Errorf("key %d unexpectedly pressed", k)
		}
	}
}

func TestKeysExpireAfterHoldDuration(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestStream("w")

	keys, _ := s.Read(now)
	if !keys.Pressed(KeyW) {
		t.Fatal("W should be held right after the press")
	}

	keys, got := s.Read(now.Add(keyHoldDuration + time.Millisecond))
	if got {
		t.Error("no new bytes expected")
	}
	if keys.Pressed(KeyW) {
		t.Error("W should be released after the hold duration")
	}
}

func TestReadMarksClosedStream(t *testing.T) {
	s := newTestStream("")
	close(s.ch)
	s.Read(time.Now())
	if !s.Closed() {
		t.Error("stream should report closed after channel close")
	}
}

func TestResetReleasesKeys(t *testing.T) {
	now := time.Now()
	s := newTestStream("q")
	if keys, _ := s.Read(now); !keys.Pressed(KeyQuit) {
		t.Fatal("q should map to quit")
	}
	s.Reset()
	if keys, _ := s.Read(now); keys.Pressed(KeyQuit) {
		t.Error("quit should be released after Reset")
	}
}

func TestMissingKeyReadsReleased(t *testing.T) {
	var k Keys
	if k.Pressed(KeyEnter) {
		t.Error("nil table must read as released")
	}
}

func TestArrowSplitAcrossReads(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, split := range []int{1, 2} {
		seq := "\x1b[D"
		s := newTestStream(seq[:split])
		if keys, _ := s.Read(now); keys.Pressed(KeyLeft) || keys.Pressed(KeyD) {
			t.Fatalf("split %d: partial sequence must not press a key", split)
		}

		for i := split; i < len(seq); i++ {
			s.ch <- seq[i]
		}
		keys, _ := s.Read(now)
		if !keys.Pressed(KeyLeft) {
			t.Errorf("split %d: left arrow not pressed", split)
		}
		if keys.Pressed(KeyD) || keys.Pressed(KeyA) {
			t.Errorf("split %d: arrow leaked into the WASD keys", split)
		}
	}
}

func TestLoneEscapeKeepsFollowingKeys(t *testing.T) {
	now := time.Now()
	s := newTestStream("\x1b")
	s.Read(now)
	s.ch <- 'a'
	if keys, _ := s.Read(now); !keys.Pressed(KeyA) {
		t.Error("a key after a lone escape should still register")
	}
}
