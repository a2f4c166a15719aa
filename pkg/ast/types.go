package ast

// Type is the minimal typed-AST type representation the core needs: just
// enough to tell an int from a float, and a function type from a value
// type, when lowering. The real type checker's representation is far
// richer; this is the projection lowering actually consults.
type Type struct {
	Kind TypeKind
	// Arity is populated when Kind == TypeFn, the parameter count used to
	// print `fun mod:name/arity`.
	Arity int
}

type TypeKind int

const (
	TypeInt TypeKind = iota
	TypeFloat
	TypeString
	TypeBool
	TypeNil
	TypeFn
	TypeOther
)

// ValueConstructorOrigin says where a Var expression's name resolved to.
type ValueConstructorOrigin int

const (
	OriginLocal ValueConstructorOrigin = iota
	OriginModuleFunction
	OriginModuleConstant
	OriginRecord
)

// ValueConstructor is carried on every Var expression so lowering never has
// to re-resolve a name: it already knows whether the reference is a local
// variable, a function in the current module, an imported module function,
// a module constant, or a record constructor.
type ValueConstructor struct {
	Origin ValueConstructorOrigin
	Type   Type

	// Module is the defining module for OriginModuleFunction /
	// OriginModuleConstant when it is not the current module (i.e. an
	// imported reference); empty means "defined locally".
	Module string

	// Record describes the constructor when Origin == OriginRecord.
	Record *RecordConstructorInfo
}

// RecordConstructorInfo is the subset of a CustomType constructor that
// lowering needs to build a tagged tuple or constructor-closure.
type RecordConstructorInfo struct {
	Name   string // constructor name, e.g. "Box"
	Fields []ConstructorField
}
