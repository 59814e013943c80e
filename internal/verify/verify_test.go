package verify

import (
	"context"
	"testing"
)

func TestHasSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"clean", "const a = `x${y}`;\n", false},
		{"broken", "const a = ;\n", true},
		{"unterminated template", "const a = `x${y;\n", true},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.HasSyntaxErrors(context.Background(), []byte(tt.content))
			if err != nil {
				t.Fatalf("HasSyntaxErrors() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HasSyntaxErrors(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestCheckConversion(t *testing.T) {
	v := New()
	ctx := context.Background()

	t.Run("clean to clean", func(t *testing.T) {
		before := []byte("const a = 'x' + y;\n")
		after := []byte("const a = `x${y}`;\n")
		if err := v.CheckConversion(ctx, before, after); err != nil {
			t.Errorf("CheckConversion() error = %v", err)
		}
	})

	t.Run("introduced breakage is rejected", func(t *testing.T) {
		before := []byte("const a = 'x' + y;\n")
		after := []byte("const a = `x${y;\n")
		if err := v.CheckConversion(ctx, before, after); err == nil {
			t.Error("CheckConversion() should fail when output stops parsing")
		}
	})

	t.Run("already broken input passes through", func(t *testing.T) {
		before := []byte("const = ;\n")
		after := []byte("const = ; extra = ;\n")
		if err := v.CheckConversion(ctx, before, after); err != nil {
			t.Errorf("CheckConversion() error = %v", err)
		}
	})
}
