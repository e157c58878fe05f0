package model

import "fmt"

// ObjectClassName is the qualified name of the root of every class
// hierarchy. It is the only class whose super-class type is nil.
const ObjectClassName = "java.lang.Object"

// Nullability of a single type use. Class types default to NonNull;
// primitives and wildcards are always NonNull; Platform marks a use
// with no nullability information at all.
type Nullability int

const (
	NullabilityNonNull Nullability = iota
	NullabilityNullable
	NullabilityPlatform
)

func (n Nullability) String() string {
	switch n {
	case NullabilityNonNull:
		return "nonnull"
	case NullabilityNullable:
		return "nullable"
	default:
		return "platform"
	}
}

type PrimitiveKind int

const (
	PrimitiveBoolean PrimitiveKind = iota
	PrimitiveByte
	PrimitiveChar
	PrimitiveDouble
	PrimitiveFloat
	PrimitiveInt
	PrimitiveLong
	PrimitiveShort
	PrimitiveVoid
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBoolean:
		return "boolean"
	case PrimitiveByte:
		return "byte"
	case PrimitiveChar:
		return "char"
	case PrimitiveDouble:
		return "double"
	case PrimitiveFloat:
		return "float"
	case PrimitiveInt:
		return "int"
	case PrimitiveLong:
		return "long"
	case PrimitiveShort:
		return "short"
	case PrimitiveVoid:
		return "void"
	}
	return fmt.Sprintf("primitive(%d)", int(k))
}

// PrimitiveKindFromString parses a primitive keyword.
func PrimitiveKindFromString(s string) (PrimitiveKind, bool) {
	for k := PrimitiveBoolean; k <= PrimitiveVoid; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// TypeItem is the closed sum over every kind of type reference in the
// model: PrimitiveType, ArrayType, ClassType, VariableType,
// WildcardType and LambdaType. Consumers switch exhaustively on the
// concrete kinds; no other implementations exist. TypeItems are
// treated as immutable once constructed and may be structurally
// shared between members.
type TypeItem interface {
	Nullability() Nullability
	Annotations() []string
	fmt.Stringer

	sealedTypeItem()
}

type PrimitiveType struct {
	Kind PrimitiveKind
	Anns []string
}

func (*PrimitiveType) sealedTypeItem() {}
func (t *PrimitiveType) Nullability() Nullability { return NullabilityNonNull }
func (t *PrimitiveType) Annotations() []string { return t.Anns }
func (t *PrimitiveType) String() string { return TypeString(t) }

// ArrayType wraps a component type; multi-dimensional arrays nest.
// Varargs marks the final parameter dimension of a varargs method.
type ArrayType struct {
	Component TypeItem
	Varargs   bool
	Null      Nullability
	Anns      []string
}

func (*ArrayType) sealedTypeItem() {}
func (t *ArrayType) Nullability() Nullability { return t.Null }
func (t *ArrayType) Annotations() []string { return t.Anns }
func (t *ArrayType) String() string { return TypeString(t) }

// ClassType is a use of a class, interface, enum or annotation type,
// optionally parameterized and optionally qualified by an outer type
// for nested generic types.
type ClassType struct {
	Qualified string
	Arguments []TypeItem
	Outer     *ClassType
	Null      Nullability
	Anns      []string
}

func (*ClassType) sealedTypeItem() {}
func (t *ClassType) Nullability() Nullability { return t.Null }
func (t *ClassType) Annotations() []string { return t.Anns }
func (t *ClassType) String() string { return TypeString(t) }

func (t *ClassType) SimpleName() string {
	name := t.Qualified
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}

func (t *ClassType) HasTypeArguments() bool {
	return len(t.Arguments) > 0
}

// IsObject reports whether this is the root Object type.
func (t *ClassType) IsObject() bool {
	return t.Qualified == ObjectClassName
}

// VariableType is a use of a declared type parameter. Parameter is a
// back reference to the declaration, never an owning edge; resolving
// it never creates a new TypeParameterItem.
type VariableType struct {
	Name      string
	Parameter *TypeParameterItem
	Null      Nullability
	Anns      []string
}

func (*VariableType) sealedTypeItem() {}
func (t *VariableType) Nullability() Nullability { return t.Null }
func (t *VariableType) Annotations() []string { return t.Anns }
func (t *VariableType) String() string { return TypeString(t) }

// WildcardType always carries an extends bound: unbounded wildcards
// get an implicit Object bound, and super-bounded wildcards carry the
// implicit Object extends bound alongside the explicit super bound.
type WildcardType struct {
	Extends TypeItem
	Super   TypeItem
	Anns    []string
}

func (*WildcardType) sealedTypeItem() {}
func (t *WildcardType) Nullability() Nullability { return NullabilityNonNull }
func (t *WildcardType) Annotations() []string { return t.Anns }
func (t *WildcardType) String() string { return TypeString(t) }

// LambdaType is a functional type. It is a specialization of
// ClassType: the embedded ClassType is the generic
// functional-interface-with-arity view, so the lambda renders
// identically whether accessed through the decomposed view or the raw
// class view.
type LambdaType struct {
	ClassType
	Receiver TypeItem
	Params   []TypeItem
	Return   TypeItem
	Suspend  bool
}

func (*LambdaType) sealedTypeItem() {}

// NewObjectType returns a fresh use of the root Object type.
func NewObjectType() *ClassType {
	return &ClassType{Qualified: ObjectClassName}
}

// NewVariableType builds a use of a declared type parameter. The use
// starts with Platform nullability: an unannotated variable use has no
// nullability of its own and collapses to the substituted type's.
func NewVariableType(p *TypeParameterItem) *VariableType {
	return &VariableType{Name: p.Name, Parameter: p, Null: NullabilityPlatform}
}

// NewUnboundedWildcard builds "?" with its implicit Object bound.
func NewUnboundedWildcard() *WildcardType {
	return &WildcardType{Extends: NewObjectType()}
}

// NewExtendsWildcard builds "? extends bound".
func NewExtendsWildcard(bound TypeItem) *WildcardType {
	return &WildcardType{Extends: bound}
}

// NewSuperWildcard builds "? super bound", keeping the implicit
// Object extends bound alongside.
func NewSuperWildcard(bound TypeItem) *WildcardType {
	return &WildcardType{Extends: NewObjectType(), Super: bound}
}

// NewLambdaType assembles a functional type together with its raw
// functional-interface class view. Suspend functions follow the
// continuation-passing shape: an extra Continuation parameter and an
// Object return slot on the class view.
func NewLambdaType(receiver TypeItem, params []TypeItem, ret TypeItem, suspend bool) *LambdaType {
	args := make([]TypeItem, 0, len(params)+3)
	if receiver != nil {
		args = append(args, receiver)
	}
	args = append(args, params...)
	if suspend {
		args = append(args, &ClassType{
			Qualified: "kotlin.coroutines.Continuation",
			Arguments: []TypeItem{NewSuperWildcard(ret)},
		})
		args = append(args, NewObjectType())
	} else {
		args = append(args, ret)
	}
	return &LambdaType{
		ClassType: ClassType{
			Qualified: fmt.Sprintf("kotlin.jvm.functions.Function%d", len(args)-1),
			Arguments: args,
		},
		Receiver: receiver,
		Params:   params,
		Return:   ret,
		Suspend:  suspend,
	}
}
