package model

import "fmt"

// PropertyItem is a Kotlin-shaped property; identity is the name.
type PropertyItem struct {
	name      string
	modifiers Modifiers
	typ       TypeItem

	class                 *ClassItem
	inheritedFrom         *ClassItem
	inheritedFromAncestor bool
}

func NewProperty(name string, mods Modifiers, t TypeItem) *PropertyItem {
	return &PropertyItem{name: name, modifiers: mods, typ: t}
}

func (p *PropertyItem) Name() string { return p.name }
func (p *PropertyItem) Modifiers() Modifiers { return p.modifiers }
func (p *PropertyItem) Type() TypeItem { return p.typ }
func (p *PropertyItem) Class() *ClassItem { return p.class }
func (p *PropertyItem) InheritedFrom() *ClassItem { return p.inheritedFrom }
func (p *PropertyItem) InheritedFromAncestor() bool { return p.inheritedFromAncestor }

// Duplicate mirrors FieldItem.Duplicate for properties.
func (p *PropertyItem) Duplicate(target *ClassItem) (*PropertyItem, error) {
	if target.frozen {
		return nil, fmt.Errorf("%w: cannot duplicate %s.%s into %s",
			ErrFrozen, p.class.qualifiedName, p.name, target.qualifiedName)
	}
	bindings := target.MapTypeVariables(p.class)
	return &PropertyItem{
		name:                  p.name,
		modifiers:             p.modifiers,
		typ:                   Convert(p.typ, bindings),
		class:                 target,
		inheritedFrom:         p.declaringClass(),
		inheritedFromAncestor: true,
	}, nil
}

func (p *PropertyItem) declaringClass() *ClassItem {
	if p.inheritedFrom != nil {
		return p.inheritedFrom
	}
	return p.class
}
