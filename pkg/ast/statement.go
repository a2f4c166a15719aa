package ast

// Publicity controls whether a statement is exported from its module.
type Publicity int

const (
	Private Publicity = iota
	Public
)

// Function is a top-level function definition.
type Function struct {
	Publicity  Publicity
	Name       string
	Arguments  []Argument
	Body       []Expression
	ReturnType Type
	Position   int
}

func (f *Function) statementNode() {}
func (f *Function) Pos() int       { return f.Position }

// Argument is one parameter of a Function or Fn expression.
type Argument struct {
	Name     string
	Type     Type
	Position int
}

// ExternalFunction binds a name to a function implemented directly on the
// target platform, identified by its module and function name plus arity.
type ExternalFunction struct {
	Publicity  Publicity
	Name       string
	Module     string
	Function   string
	Arity      int
	ReturnType Type
	Position   int
}

func (e *ExternalFunction) statementNode() {}
func (e *ExternalFunction) Pos() int       { return e.Position }

// CustomType declares a tagged union ("custom type") with one or more
// constructors.
type CustomType struct {
	Publicity    Publicity
	Opaque       bool
	Name         string
	Constructors []Constructor
	Position     int
}

func (c *CustomType) statementNode() {}
func (c *CustomType) Pos() int       { return c.Position }

// Constructor is one variant of a CustomType.
type Constructor struct {
	Name     string
	Fields   []ConstructorField
	Position int
}

// ConstructorField is one argument slot of a Constructor. Label is empty
// for a positional (unlabelled) field.
type ConstructorField struct {
	Label string
	Type  Type
}

// Labelled reports whether every field in fields carries a label, the
// condition the records extractor requires before emitting a header.
func Labelled(fields []ConstructorField) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if f.Label == "" {
			return false
		}
	}
	return true
}

// TypeAlias, ExternalType, ModuleConstant and Import emit nothing from
// the module emitter but are retained on the AST since the type checker
// still needs to have resolved them.
type TypeAlias struct {
	Publicity Publicity
	Name      string
	Position  int
}

func (t *TypeAlias) statementNode() {}
func (t *TypeAlias) Pos() int       { return t.Position }

type ExternalType struct {
	Publicity Publicity
	Name      string
	Position  int
}

func (e *ExternalType) statementNode() {}
func (e *ExternalType) Pos() int       { return e.Position }

// ModuleConstant is a module-level constant binding.
type ModuleConstant struct {
	Publicity Publicity
	Name      string
	Value     Expression
	Position  int
}

func (m *ModuleConstant) statementNode() {}
func (m *ModuleConstant) Pos() int       { return m.Position }

// Import is a module-level import declaration.
type Import struct {
	Module   []string
	Position int
}

func (i *Import) statementNode() {}
func (i *Import) Pos() int       { return i.Position }
