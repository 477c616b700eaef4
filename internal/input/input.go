package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), never releases.
const keyHoldDuration = 80 * time.Millisecond

// Key is a logical key identifier.
type Key int

const (
	KeyA Key = iota
	KeyD
	KeyW
	KeyS
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyQuit
	keyCount
)

// Keys is the shared key-state table: logical key to pressed.
// Missing keys read as released.
type Keys map[Key]bool

// Pressed reports whether k is currently held.
func (k Keys) Pressed(key Key) bool {
	return k[key]
}

// Controls binds the five actions of one player to logical keys.
type Controls struct {
	Left, Right, Up, Down, Fire Key
}

// The two fixed control schemes.
var (
	SchemeWASD   = Controls{Left: KeyA, Right: KeyD, Up: KeyW, Down: KeyS, Fire: KeySpace}
	SchemeArrows = Controls{Left: KeyLeft, Right: KeyRight, Up: KeyUp, Down: KeyDown, Fire: KeyEnter}
)

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	lastSeen [keyCount]time.Time
	closed   bool
	pending  []byte // Unfinished escape sequence from the previous drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Read drains all available bytes from the stream (non-blocking) and
// returns the key table as of now. Returns true if any byte arrived.
func (s *Stream) Read(now time.Time) (Keys, bool) {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	return s.snapshot(now), len(buf) > 0
}

// Reset forgets all held keys, e.g. after a screen transition.
func (s *Stream) Reset() {
	s.lastSeen = [keyCount]time.Time{}
}

// apply parses raw bytes and updates key timestamps.
// Handles CSI escape sequences for arrow keys, including ones split
// across drains.
func (s *Stream) apply(buf []byte, now time.Time) {
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			rest := buf[i+1:]
			switch {
			case len(rest) == 0, len(rest) == 1 && rest[0] == '[':
				s.pending = append([]byte(nil), buf[i:]...)
				return
			case rest[0] == '[':
				if key, ok := arrowKey(rest[1]); ok {
					s.lastSeen[key] = now
				}
				i += 2
				continue
			}
		}

		if key, ok := byteKey(b); ok {
			s.lastSeen[key] = now
		}
	}
}

// snapshot builds the key table from the timestamps.
func (s *Stream) snapshot(now time.Time) Keys {
	keys := make(Keys, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys[k] = !s.lastSeen[k].IsZero() && now.Sub(s.lastSeen[k]) < keyHoldDuration
	}
	return keys
}

func arrowKey(code byte) (Key, bool) {
	switch code {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'a', 'A':
		return KeyA, true
	case 'd', 'D':
		return KeyD, true
	case 'w', 'W':
		return KeyW, true
	case 's', 'S':
		return KeyS, true
	case ' ':
		return KeySpace, true
	case '\n', '\r':
		return KeyEnter, true
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	}
	return 0, false
}
