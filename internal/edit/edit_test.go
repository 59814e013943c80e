package edit

import (
	"errors"
	"testing"
)

func TestNewChangeValidation(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		length      int
		replacement string
		wantErr     bool
	}{
		{"replace", 2, 3, "abc", false},
		{"insert", 5, 0, "abc", false},
		{"delete", 5, 3, "", false},
		{"negative start", -1, 3, "abc", true},
		{"negative length", 0, -2, "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChange(tt.start, tt.length, tt.replacement)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewChange(%d, %d, %q) error = %v, wantErr %v", tt.start, tt.length, tt.replacement, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEdit) {
				t.Errorf("error = %v, want ErrInvalidEdit", err)
			}
		})
	}
}

func TestNewMoveValidation(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		length  int
		dest    int
		wantErr bool
	}{
		{"forward", 3, 4, 10, false},
		{"backward", 10, 4, 3, false},
		{"dest at start", 3, 4, 3, false},
		{"dest at end", 3, 4, 7, false},
		{"dest inside range", 3, 4, 5, true},
		{"negative dest", 3, 4, -1, true},
		{"negative length", 3, -1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMove(tt.start, tt.length, tt.dest)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMove(%d, %d, %d) error = %v, wantErr %v", tt.start, tt.length, tt.dest, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEdit) {
				t.Errorf("error = %v, want ErrInvalidEdit", err)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	mk := func(start, length int) *Edit {
		e, err := NewChange(start, length, "")
		if err != nil {
			t.Fatalf("NewChange(%d, %d): %v", start, length, err)
		}
		return e
	}

	tests := []struct {
		name             string
		a, b             *Edit
		before, after    bool
		intersects       bool
		contains, inside bool
	}{
		{"disjoint left", mk(0, 3), mk(5, 3), true, false, false, false, false},
		{"disjoint right", mk(8, 3), mk(2, 3), false, true, false, false, false},
		{"touching", mk(0, 5), mk(5, 3), true, false, false, false, false},
		{"overlap", mk(2, 4), mk(4, 4), false, false, true, false, false},
		{"covers", mk(2, 8), mk(4, 2), false, false, true, true, false},
		{"covered", mk(4, 2), mk(2, 8), false, false, true, false, true},
		{"identical", mk(3, 3), mk(3, 3), false, false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.before {
				t.Errorf("Before() = %v, want %v", got, tt.before)
			}
			if got := tt.a.After(tt.b); got != tt.after {
				t.Errorf("After() = %v, want %v", got, tt.after)
			}
			if got := tt.a.Intersects(tt.b); got != tt.intersects {
				t.Errorf("Intersects() = %v, want %v", got, tt.intersects)
			}
			if got := tt.a.Contains(tt.b); got != tt.contains {
				t.Errorf("Contains() = %v, want %v", got, tt.contains)
			}
			if got := tt.a.Inside(tt.b); got != tt.inside {
				t.Errorf("Inside() = %v, want %v", got, tt.inside)
			}
		})
	}
}

func TestChangeApply(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		start       int
		length      int
		replacement string
		want        string
	}{
		{"replace middle", "hello world", 6, 5, "there", "hello there"},
		{"insert", "hello", 5, 0, "!", "hello!"},
		{"delete", "hello world", 5, 6, "", "hello"},
		{"replace at start", "abcdef", 0, 3, "X", "Xdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewChange(tt.start, tt.length, tt.replacement)
			if err != nil {
				t.Fatalf("NewChange: %v", err)
			}
			got, err := e.Apply(tt.text)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

// A change whose range ends exactly at the buffer's last byte must
// apply; only ranges extending past the buffer are rejected.
func TestChangeReachingBufferEnd(t *testing.T) {
	e, err := NewChange(3, 2, "p!")
	if err != nil {
		t.Fatalf("NewChange: %v", err)
	}
	got, err := e.Apply("hello")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != "help!" {
		t.Errorf("Apply() = %q, want %q", got, "help!")
	}

	past, err := NewChange(3, 3, "x")
	if err != nil {
		t.Fatalf("NewChange: %v", err)
	}
	if _, err := past.Apply("hello"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Apply() error = %v, want ErrOutOfRange", err)
	}
}

func TestMoveApply(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		e, err := NewMove(2, 3, 8)
		if err != nil {
			t.Fatalf("NewMove: %v", err)
		}
		got, err := e.Apply("0123456789")
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if got != "0156723489" {
			t.Errorf("Apply() = %q, want %q", got, "0156723489")
		}
	})

	t.Run("backward", func(t *testing.T) {
		e, err := NewMove(5, 3, 2)
		if err != nil {
			t.Fatalf("NewMove: %v", err)
		}
		got, err := e.Apply("0123456789")
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if got != "0156723489" {
			t.Errorf("Apply() = %q, want %q", got, "0156723489")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		e, err := NewMove(8, 5, 0)
		if err != nil {
			t.Fatalf("NewMove: %v", err)
		}
		if _, err := e.Apply("0123456789"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Apply() error = %v, want ErrOutOfRange", err)
		}
	})
}

// Moving a block away and back again must restore the original text.
func TestMoveIdentity(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		length int
		dest   int
	}{
		{"forward", 2, 3, 8},
		{"backward", 5, 3, 2},
		{"to end", 0, 4, 10},
		{"to start", 6, 4, 0},
	}

	const text = "0123456789"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := NewMove(tt.start, tt.length, tt.dest)
			if err != nil {
				t.Fatalf("NewMove: %v", err)
			}
			moved, err := first.Apply(text)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			// Where the block landed after removal shifted the buffer.
			newStart := tt.dest
			if tt.start < tt.dest {
				newStart = tt.dest - tt.length
			}
			back, err := NewMove(newStart, tt.length, backDest(tt.start, tt.length, newStart))
			if err != nil {
				t.Fatalf("NewMove back: %v", err)
			}
			restored, err := back.Apply(moved)
			if err != nil {
				t.Fatalf("Apply() back error = %v", err)
			}
			if restored != text {
				t.Errorf("round trip = %q, want %q", restored, text)
			}
		})
	}
}

// backDest computes the destination that returns a moved block to its
// original start offset.
func backDest(origStart, length, newStart int) int {
	if newStart < origStart {
		// Block sits before its old position; moving it forward has to
		// aim past its own removal.
		return origStart + length
	}
	return origStart
}
