package model

import (
	"fmt"
	"strings"
)

// FieldItem is a field; identity for lookup purposes is the name.
type FieldItem struct {
	name      string
	modifiers Modifiers
	typ       TypeItem
	constant  any

	class                 *ClassItem
	inheritedFrom         *ClassItem
	inheritedFromAncestor bool
}

func NewField(name string, mods Modifiers, t TypeItem) *FieldItem {
	return &FieldItem{name: name, modifiers: mods, typ: t}
}

func (f *FieldItem) Name() string { return f.name }
func (f *FieldItem) Modifiers() Modifiers { return f.modifiers }
func (f *FieldItem) Type() TypeItem { return f.typ }
func (f *FieldItem) Class() *ClassItem { return f.class }
func (f *FieldItem) InheritedFrom() *ClassItem { return f.inheritedFrom }
func (f *FieldItem) InheritedFromAncestor() bool { return f.inheritedFromAncestor }

// ConstantValue is the compile-time constant, or nil.
func (f *FieldItem) ConstantValue() any { return f.constant }

func (f *FieldItem) SetConstantValue(v any) error {
	if f.class != nil && f.class.frozen {
		return fmt.Errorf("%w: cannot set constant on %s", ErrFrozen, f.class.qualifiedName)
	}
	f.constant = v
	return nil
}

// Duplicate produces a copy of this field logically belonging to
// target, with the declared type substituted into target's frame and
// the inheritance back references set. Fails when target is frozen.
func (f *FieldItem) Duplicate(target *ClassItem) (*FieldItem, error) {
	if target.frozen {
		return nil, fmt.Errorf("%w: cannot duplicate %s.%s into %s",
			ErrFrozen, f.class.qualifiedName, f.name, target.qualifiedName)
	}
	bindings := target.MapTypeVariables(f.class)
	dup := &FieldItem{
		name:                  f.name,
		modifiers:             f.modifiers,
		typ:                   Convert(f.typ, bindings),
		constant:              f.constant,
		class:                 target,
		inheritedFrom:         f.DeclaringClass(),
		inheritedFromAncestor: true,
	}
	return dup, nil
}

func (f *FieldItem) DeclaringClass() *ClassItem {
	if f.inheritedFrom != nil {
		return f.inheritedFrom
	}
	return f.class
}

func (f *FieldItem) String() string {
	var sb strings.Builder
	if v := f.modifiers.Visibility; v != "" && v != VisibilityPackage {
		sb.WriteString(string(v))
		sb.WriteString(" ")
	}
	if f.modifiers.Static {
		sb.WriteString("static ")
	}
	if f.modifiers.Final {
		sb.WriteString("final ")
	}
	sb.WriteString(TypeString(f.typ))
	sb.WriteString(" ")
	sb.WriteString(f.name)
	return sb.String()
}
