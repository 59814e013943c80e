package edit

import (
	"errors"
	"testing"
)

func mustChange(t *testing.T, start, length int, replacement string) *Edit {
	t.Helper()
	e, err := NewChange(start, length, replacement)
	if err != nil {
		t.Fatalf("NewChange(%d, %d, %q): %v", start, length, replacement, err)
	}
	return e
}

func mustMove(t *testing.T, start, length, dest int) *Edit {
	t.Helper()
	e, err := NewMove(start, length, dest)
	if err != nil {
		t.Fatalf("NewMove(%d, %d, %d): %v", start, length, dest, err)
	}
	return e
}

func TestMergeChangeAfterChange(t *testing.T) {
	tests := []struct {
		name      string
		applied   *Edit
		pending   *Edit
		wantStart int
	}{
		// A 3-byte range replaced by 5 bytes shifts later edits by +2.
		{"growth shifts later edit", mustChange(t, 0, 3, "ABCDE"), mustChange(t, 10, 2, "x"), 12},
		{"shrink shifts later edit", mustChange(t, 0, 3, "A"), mustChange(t, 10, 2, "x"), 8},
		{"earlier edit unaffected", mustChange(t, 10, 2, "long replacement"), mustChange(t, 2, 3, "x"), 2},
		{"touching edit shifts", mustChange(t, 0, 5, "1234567"), mustChange(t, 5, 1, "x"), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.pending.Merge(tt.applied); err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			if tt.pending.Start != tt.wantStart {
				t.Errorf("Start = %d, want %d", tt.pending.Start, tt.wantStart)
			}
		})
	}
}

// Two changes with intersecting ranges conflict no matter which one is
// applied first.
func TestMergeOverlapConflictIsSymmetric(t *testing.T) {
	a := mustChange(t, 2, 4, "x")
	b := mustChange(t, 4, 3, "y")

	if err := b.Merge(a); !errors.Is(err, ErrOverlap) {
		t.Errorf("b.Merge(a) error = %v, want ErrOverlap", err)
	}
	a = mustChange(t, 2, 4, "x")
	b = mustChange(t, 4, 3, "y")
	if err := a.Merge(b); !errors.Is(err, ErrOverlap) {
		t.Errorf("a.Merge(b) error = %v, want ErrOverlap", err)
	}
}

func TestMergeChangeAfterMove(t *testing.T) {
	tests := []struct {
		name      string
		applied   *Edit
		pending   *Edit
		wantStart int
		wantErr   bool
	}{
		{"inside moved block travels with it", mustMove(t, 5, 5, 20), mustChange(t, 7, 2, "x"), 22, false},
		{"before source and destination", mustMove(t, 10, 5, 20), mustChange(t, 3, 2, "x"), 3, false},
		{"between destination and source shifts forward", mustMove(t, 10, 5, 2), mustChange(t, 5, 2, "x"), 10, false},
		{"between source and destination shifts back", mustMove(t, 2, 3, 20), mustChange(t, 10, 2, "x"), 7, false},
		{"after source and destination", mustMove(t, 2, 3, 20), mustChange(t, 25, 2, "x"), 25, false},
		{"straddling block boundary conflicts", mustMove(t, 5, 5, 20), mustChange(t, 8, 5, "x"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pending.Merge(tt.applied)
			if tt.wantErr {
				if !errors.Is(err, ErrOverlap) {
					t.Fatalf("Merge() error = %v, want ErrOverlap", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			if tt.pending.Start != tt.wantStart {
				t.Errorf("Start = %d, want %d", tt.pending.Start, tt.wantStart)
			}
		})
	}
}

func TestMergeMoveAfterChange(t *testing.T) {
	t.Run("start and dest shift with growth", func(t *testing.T) {
		applied := mustChange(t, 5, 2, "abcd") // +2
		pending := mustMove(t, 10, 3, 20)
		if err := pending.Merge(applied); err != nil {
			t.Fatalf("Merge() error = %v", err)
		}
		if pending.Start != 12 {
			t.Errorf("Start = %d, want 12", pending.Start)
		}
		if pending.Dest != 22 {
			t.Errorf("Dest = %d, want 22", pending.Dest)
		}
	})

	t.Run("move containing the change is kept", func(t *testing.T) {
		applied := mustChange(t, 5, 2, "abcd")
		pending := mustMove(t, 4, 6, 20)
		if err := pending.Merge(applied); err != nil {
			t.Fatalf("Merge() error = %v", err)
		}
		// Contains the change but starts before it: start stays.
		if pending.Start != 4 {
			t.Errorf("Start = %d, want 4", pending.Start)
		}
		if pending.Dest != 22 {
			t.Errorf("Dest = %d, want 22", pending.Dest)
		}
	})

	t.Run("partial overlap conflicts", func(t *testing.T) {
		applied := mustChange(t, 5, 4, "ab")
		pending := mustMove(t, 7, 6, 20)
		if err := pending.Merge(applied); !errors.Is(err, ErrOverlap) {
			t.Errorf("Merge() error = %v, want ErrOverlap", err)
		}
	})

	t.Run("destination inside changed range conflicts", func(t *testing.T) {
		applied := mustChange(t, 5, 5, "ab")
		pending := mustMove(t, 20, 3, 7)
		if err := pending.Merge(applied); !errors.Is(err, ErrOverlap) {
			t.Errorf("Merge() error = %v, want ErrOverlap", err)
		}
	})
}

func TestMergeMoveAfterMove(t *testing.T) {
	tests := []struct {
		name      string
		applied   *Edit
		pending   *Edit
		wantStart int
		wantErr   bool
	}{
		{"before source and destination", mustMove(t, 10, 5, 20), mustMove(t, 3, 2, 0), 3, false},
		{"between destination and source shifts forward", mustMove(t, 10, 5, 2), mustMove(t, 5, 2, 0), 10, false},
		{"between source and destination shifts back", mustMove(t, 2, 3, 20), mustMove(t, 10, 2, 25), 7, false},
		{"after source and destination", mustMove(t, 2, 3, 10), mustMove(t, 15, 2, 20), 15, false},
		{"overlapping moves conflict", mustMove(t, 5, 5, 20), mustMove(t, 8, 4, 30), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pending.Merge(tt.applied)
			if tt.wantErr {
				if !errors.Is(err, ErrOverlap) {
					t.Fatalf("Merge() error = %v, want ErrOverlap", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			if tt.pending.Start != tt.wantStart {
				t.Errorf("Start = %d, want %d", tt.pending.Start, tt.wantStart)
			}
		})
	}
}
