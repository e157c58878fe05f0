package model

import (
	"fmt"
	"strings"
)

// MethodItem is a method or constructor. Identity for lookup and
// override matching is the erased signature: name plus parameter type
// erasure list, independent of the declaring class.
type MethodItem struct {
	name           string
	modifiers      Modifiers
	returnType     TypeItem
	typeParameters []*TypeParameterItem
	parameters     []*ParameterItem
	throws         []TypeItem

	class       *ClassItem
	constructor bool

	// inheritedFrom names the class that originally declared this
	// method; set only on duplicated copies.
	inheritedFrom         *ClassItem
	inheritedFromAncestor bool
}

func NewMethod(name string, mods Modifiers, returnType TypeItem) *MethodItem {
	return &MethodItem{name: name, modifiers: mods, returnType: returnType}
}

func (m *MethodItem) Name() string { return m.name }
func (m *MethodItem) Modifiers() Modifiers { return m.modifiers }
func (m *MethodItem) ReturnType() TypeItem { return m.returnType }
func (m *MethodItem) TypeParameters() []*TypeParameterItem { return m.typeParameters }
func (m *MethodItem) Parameters() []*ParameterItem { return m.parameters }
func (m *MethodItem) Throws() []TypeItem { return m.throws }
func (m *MethodItem) Class() *ClassItem { return m.class }
func (m *MethodItem) IsConstructor() bool { return m.constructor }
func (m *MethodItem) InheritedFrom() *ClassItem { return m.inheritedFrom }
func (m *MethodItem) InheritedFromAncestor() bool { return m.inheritedFromAncestor }

func (m *MethodItem) IsStatic() bool { return m.modifiers.Static }
func (m *MethodItem) IsFinal() bool { return m.modifiers.Final }
func (m *MethodItem) IsAbstract() bool { return m.modifiers.Abstract }
func (m *MethodItem) IsDefault() bool { return m.modifiers.Default }
func (m *MethodItem) Visibility() Visibility {
	return m.modifiers.Visibility
}

func (m *MethodItem) mutate(op string) error {
	if m.class != nil && m.class.frozen {
		return fmt.Errorf("%w: cannot %s on %s", ErrFrozen, op, m.class.qualifiedName)
	}
	return nil
}

func (m *MethodItem) SetTypeParameters(params ...*TypeParameterItem) error {
	if err := m.mutate("set method type parameters"); err != nil {
		return err
	}
	m.typeParameters = params
	return nil
}

func (m *MethodItem) AddParameter(name string, t TypeItem) error {
	if err := m.mutate("add parameter"); err != nil {
		return err
	}
	m.parameters = append(m.parameters, &ParameterItem{
		name:   name,
		index:  len(m.parameters),
		typ:    t,
		method: m,
	})
	return nil
}

func (m *MethodItem) AddThrows(t TypeItem) error {
	if err := m.mutate("add throws"); err != nil {
		return err
	}
	m.throws = append(m.throws, t)
	return nil
}

// DeclaringClass is the class that originally declared this method:
// the duplication source for copies, the owning class otherwise.
func (m *MethodItem) DeclaringClass() *ClassItem {
	if m.inheritedFrom != nil {
		return m.inheritedFrom
	}
	return m.class
}

// ParameterErasure is the erased parameter type list used for
// signature matching.
func (m *MethodItem) ParameterErasure() []string {
	out := make([]string, len(m.parameters))
	for i, p := range m.parameters {
		out[i] = ErasedTypeString(p.typ)
	}
	return out
}

// ErasedSignature renders name(erasure,erasure) for diagnostics and
// matching.
func (m *MethodItem) ErasedSignature() string {
	return m.name + "(" + strings.Join(m.ParameterErasure(), ",") + ")"
}

// ThrownClasses resolves the erased class of each throws entry.
// Unresolvable entries, including type parameters not bound by a
// resolvable Throwable subtype, degrade to nil entries being skipped.
func (m *MethodItem) ThrownClasses() []*ClassItem {
	if m.class == nil {
		return nil
	}
	var out []*ClassItem
	for _, t := range m.throws {
		if cls := m.class.codebase.ErasedClass(t); cls != nil {
			out = append(out, cls)
		}
	}
	return out
}

func (m *MethodItem) String() string {
	var sb strings.Builder
	if v := m.Visibility(); v != "" && v != VisibilityPackage {
		sb.WriteString(string(v))
		sb.WriteString(" ")
	}
	if m.modifiers.Static {
		sb.WriteString("static ")
	}
	if m.modifiers.Final {
		sb.WriteString("final ")
	}
	if m.modifiers.Abstract {
		sb.WriteString("abstract ")
	}
	if m.modifiers.Default {
		sb.WriteString("default ")
	}
	if !m.constructor && m.returnType != nil {
		sb.WriteString(TypeString(m.returnType))
		sb.WriteString(" ")
	}
	sb.WriteString(m.name)
	sb.WriteString("(")
	for i, p := range m.parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(TypeString(p.typ))
		if p.name != "" {
			sb.WriteString(" ")
			sb.WriteString(p.name)
		}
	}
	sb.WriteString(")")
	return sb.String()
}
