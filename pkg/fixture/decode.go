// Package fixture JSON-decodes a typed ast.Module. The real type checker
// is out of scope for this core; this package exists only so
// cmd/emberc and the end-to-end tests have something concrete to feed
// codegen.Generate, decoding one declaration at a time the way a parser
// would build an AST from source text.
package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/emberlang/ember/pkg/ast"
)

// Load decodes a typed ast.Module from raw JSON bytes.
func Load(data []byte) (*ast.Module, error) {
	var w wireModule
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding module: %w", err)
	}
	mod := &ast.Module{Name: w.Name, Position: w.Position}
	for _, raw := range w.Statements {
		stmt, err := decodeStatement(raw)
		if err != nil {
			return nil, err
		}
		mod.Statements = append(mod.Statements, stmt)
	}
	return mod, nil
}

type wireModule struct {
	Name       []string          `json:"name"`
	Position   int               `json:"position"`
	Statements []json.RawMessage `json:"statements"`
}

type kinded struct {
	Kind string `json:"kind"`
}

func kindOf(raw json.RawMessage) (string, error) {
	var k kinded
	if err := json.Unmarshal(raw, &k); err != nil {
		return "", err
	}
	if k.Kind == "" {
		return "", fmt.Errorf("fixture node missing \"kind\" field: %s", raw)
	}
	return k.Kind, nil
}

func publicity(b bool) ast.Publicity {
	if b {
		return ast.Public
	}
	return ast.Private
}
