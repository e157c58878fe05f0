package model

import "strings"

// TypeStringOptions controls canonical type rendering. The zero value
// emits the plain signature form: no nullability suffixes, no
// type-use annotations.
type TypeStringOptions struct {
	KotlinStyleNulls bool
	Annotations      bool
}

type TypeStringOption func(*TypeStringOptions)

// WithKotlinStyleNulls renders nullability suffixes: "?" for nullable
// uses, "!" for platform uses, nothing for non-null uses.
func WithKotlinStyleNulls() TypeStringOption {
	return func(o *TypeStringOptions) { o.KotlinStyleNulls = true }
}

// WithTypeAnnotations renders type-use annotations inline.
func WithTypeAnnotations() TypeStringOption {
	return func(o *TypeStringOptions) { o.Annotations = true }
}

// TypeString renders the canonical textual form of a type. The output
// is deterministic for identical trees and options.
func TypeString(t TypeItem, opts ...TypeStringOption) string {
	var o TypeStringOptions
	for _, opt := range opts {
		opt(&o)
	}
	var sb strings.Builder
	appendTypeString(&sb, t, &o)
	return sb.String()
}

func appendTypeString(sb *strings.Builder, t TypeItem, o *TypeStringOptions) {
	switch ty := t.(type) {
	case *PrimitiveType:
		appendAnnotations(sb, ty.Anns, o)
		sb.WriteString(ty.Kind.String())
	case *ArrayType:
		appendTypeString(sb, ty.Component, o)
		if ty.Varargs {
			sb.WriteString("...")
		} else {
			sb.WriteString("[]")
		}
		appendNullSuffix(sb, ty.Null, o)
	case *LambdaType:
		appendClassTypeString(sb, &ty.ClassType, o)
	case *ClassType:
		appendClassTypeString(sb, ty, o)
	case *VariableType:
		appendAnnotations(sb, ty.Anns, o)
		sb.WriteString(ty.Name)
		appendNullSuffix(sb, ty.Null, o)
	case *WildcardType:
		appendAnnotations(sb, ty.Anns, o)
		switch {
		case ty.Super != nil:
			sb.WriteString("? super ")
			appendTypeString(sb, ty.Super, o)
		case isImplicitObjectBound(ty.Extends):
			sb.WriteString("?")
		default:
			sb.WriteString("? extends ")
			appendTypeString(sb, ty.Extends, o)
		}
	}
}

func appendClassTypeString(sb *strings.Builder, t *ClassType, o *TypeStringOptions) {
	if t.Outer != nil {
		appendClassTypeString(sb, t.Outer, o)
		sb.WriteString(".")
		appendAnnotations(sb, t.Anns, o)
		sb.WriteString(t.SimpleName())
	} else {
		appendAnnotations(sb, t.Anns, o)
		sb.WriteString(t.Qualified)
	}
	if len(t.Arguments) > 0 {
		sb.WriteString("<")
		for i, arg := range t.Arguments {
			if i > 0 {
				sb.WriteString(",")
			}
			appendTypeString(sb, arg, o)
		}
		sb.WriteString(">")
	}
	appendNullSuffix(sb, t.Null, o)
}

func appendAnnotations(sb *strings.Builder, anns []string, o *TypeStringOptions) {
	if !o.Annotations {
		return
	}
	for _, a := range anns {
		sb.WriteString("@")
		sb.WriteString(a)
		sb.WriteString(" ")
	}
}

func appendNullSuffix(sb *strings.Builder, n Nullability, o *TypeStringOptions) {
	if !o.KotlinStyleNulls {
		return
	}
	switch n {
	case NullabilityNullable:
		sb.WriteString("?")
	case NullabilityPlatform:
		sb.WriteString("!")
	}
}

// An unbounded wildcard's implicit Object bound renders as a bare "?".
func isImplicitObjectBound(t TypeItem) bool {
	ct, ok := t.(*ClassType)
	return ok && ct.IsObject() && len(ct.Arguments) == 0
}

// EqualTypes compares two types by their canonical string forms,
// excluding nullability and annotations, so signature-derived and
// source-derived trees compare equal. Variable uses additionally
// require the same TypeParameterItem declaration.
func EqualTypes(a, b TypeItem) bool {
	if a == nil || b == nil {
		return a == b
	}
	va, aok := a.(*VariableType)
	vb, bok := b.(*VariableType)
	if aok != bok {
		return false
	}
	if aok {
		return va.Parameter == vb.Parameter && va.Name == vb.Name
	}
	return TypeString(a) == TypeString(b)
}

// ErasedTypeString renders the erasure of a type: all generic
// arguments removed, variables replaced by the erasure of their first
// bound, wildcards by the erasure of their extends bound. Used for
// signature matching independent of parameterization.
func ErasedTypeString(t TypeItem) string {
	switch ty := t.(type) {
	case *PrimitiveType:
		return ty.Kind.String()
	case *ArrayType:
		return ErasedTypeString(ty.Component) + "[]"
	case *LambdaType:
		return ty.ClassType.Qualified
	case *ClassType:
		return ty.Qualified
	case *VariableType:
		if ty.Parameter != nil && len(ty.Parameter.Bounds) > 0 {
			return ErasedTypeString(ty.Parameter.Bounds[0])
		}
		return ObjectClassName
	case *WildcardType:
		return ErasedTypeString(ty.Extends)
	}
	return ""
}
