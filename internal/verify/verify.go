// internal/verify/verify.go
//
// Post-conversion syntax check. The scanner is deliberately ignorant
// of the grammar, so before the converted text is written anywhere we
// parse it with tree-sitter's JavaScript grammar and refuse output
// whose tree contains errors the input's tree did not.
package verify

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	jssrc "github.com/smacker/go-tree-sitter/javascript"

	"github.com/bethropolis/templit/internal/logger"
)

// Verifier parses buffers with the JavaScript grammar.
type Verifier struct {
	parser *sitter.Parser
}

// New creates a Verifier.
func New() *Verifier {
	parser := sitter.NewParser()
	parser.SetLanguage(jssrc.GetLanguage())
	return &Verifier{parser: parser}
}

// HasSyntaxErrors parses content and reports whether the tree contains
// ERROR or MISSING nodes.
func (v *Verifier) HasSyntaxErrors(ctx context.Context, content []byte) (bool, error) {
	tree, err := v.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return false, fmt.Errorf("parsing content: %w", err)
	}
	defer tree.Close()
	return tree.RootNode().HasError(), nil
}

// CheckConversion compares input and output: it only fails when the
// conversion introduced errors, so files that never parsed cleanly
// (fragments, other languages) can still be converted.
func (v *Verifier) CheckConversion(ctx context.Context, before, after []byte) error {
	beforeBad, err := v.HasSyntaxErrors(ctx, before)
	if err != nil {
		return err
	}
	afterBad, err := v.HasSyntaxErrors(ctx, after)
	if err != nil {
		return err
	}

	if afterBad && !beforeBad {
		return fmt.Errorf("conversion introduced syntax errors")
	}
	if beforeBad {
		logger.DebugTagf("verify", "input already has syntax errors; skipping output check")
	}
	return nil
}
