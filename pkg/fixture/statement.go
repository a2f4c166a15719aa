package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/emberlang/ember/pkg/ast"
)

func decodeStatement(raw json.RawMessage) (ast.Statement, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "function":
		return decodeFunction(raw)
	case "externalFunction":
		return decodeExternalFunction(raw)
	case "customType":
		return decodeCustomType(raw)
	case "typeAlias":
		var w struct {
			Public   bool `json:"public"`
			Name     string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.TypeAlias{Publicity: publicity(w.Public), Name: w.Name, Position: w.Position}, nil
	case "externalType":
		var w struct {
			Public   bool `json:"public"`
			Name     string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.ExternalType{Publicity: publicity(w.Public), Name: w.Name, Position: w.Position}, nil
	case "moduleConstant":
		var w struct {
			Public   bool `json:"public"`
			Name     string
			Value    json.RawMessage
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		value, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ModuleConstant{Publicity: publicity(w.Public), Name: w.Name, Value: value, Position: w.Position}, nil
	case "import":
		var w struct {
			Module   []string
			Position int
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ast.Import{Module: w.Module, Position: w.Position}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind %q", kind)
	}
}

func decodeFunction(raw json.RawMessage) (*ast.Function, error) {
	var w struct {
		Public     bool `json:"public"`
		Name       string
		Arguments  []wireArgument
		Body       []json.RawMessage
		ReturnType wireType
		Position   int
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	args, err := decodeArguments(w.Arguments)
	if err != nil {
		return nil, err
	}
	body, err := decodeExpressions(w.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Publicity: publicity(w.Public), Name: w.Name, Arguments: args,
		Body: body, ReturnType: w.ReturnType.toType(), Position: w.Position,
	}, nil
}

func decodeExternalFunction(raw json.RawMessage) (*ast.ExternalFunction, error) {
	var w struct {
		Public     bool `json:"public"`
		Name       string
		Module     string
		Function   string
		Arity      int
		ReturnType wireType
		Position   int
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return &ast.ExternalFunction{
		Publicity: publicity(w.Public), Name: w.Name, Module: w.Module,
		Function: w.Function, Arity: w.Arity, ReturnType: w.ReturnType.toType(), Position: w.Position,
	}, nil
}

func decodeCustomType(raw json.RawMessage) (*ast.CustomType, error) {
	var w struct {
		Public       bool `json:"public"`
		Opaque       bool
		Name         string
		Constructors []wireConstructor
		Position     int
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	ctors := make([]ast.Constructor, len(w.Constructors))
	for i, c := range w.Constructors {
		fields := make([]ast.ConstructorField, len(c.Fields))
		for j, f := range c.Fields {
			fields[j] = ast.ConstructorField{Label: f.Label, Type: f.Type.toType()}
		}
		ctors[i] = ast.Constructor{Name: c.Name, Fields: fields, Position: c.Position}
	}
	return &ast.CustomType{
		Publicity: publicity(w.Public), Opaque: w.Opaque, Name: w.Name,
		Constructors: ctors, Position: w.Position,
	}, nil
}

type wireArgument struct {
	Name     string
	Type     wireType
	Position int
}

func decodeArguments(ws []wireArgument) ([]ast.Argument, error) {
	out := make([]ast.Argument, len(ws))
	for i, w := range ws {
		out[i] = ast.Argument{Name: w.Name, Type: w.Type.toType(), Position: w.Position}
	}
	return out, nil
}

type wireConstructor struct {
	Name     string
	Fields   []wireField
	Position int
}

type wireField struct {
	Label string
	Type  wireType
}

type wireType struct {
	Kind  string
	Arity int
}

func (w wireType) toType() ast.Type {
	kind := ast.TypeOther
	switch w.Kind {
	case "int":
		kind = ast.TypeInt
	case "float":
		kind = ast.TypeFloat
	case "string":
		kind = ast.TypeString
	case "bool":
		kind = ast.TypeBool
	case "nil":
		kind = ast.TypeNil
	case "fn":
		kind = ast.TypeFn
	}
	return ast.Type{Kind: kind, Arity: w.Arity}
}
