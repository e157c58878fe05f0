package model

import "fmt"

// ClassItem is a class, interface, enum or annotation type in the
// graph. Structure is mutable until Freeze, then permanently
// read-only. Member lists preserve insertion order; uniqueness by
// signature is only enforced at query time.
type ClassItem struct {
	codebase      *Codebase
	qualifiedName string
	simpleName    string
	kind          ClassKind
	modifiers     Modifiers
	origin        Origin
	pkg           *Package

	typeParameters []*TypeParameterItem
	superClassType *ClassType
	interfaceTypes []*ClassType

	constructors []*MethodItem
	methods      []*MethodItem
	fields       []*FieldItem
	properties   []*PropertyItem

	frozen bool
}

func (c *ClassItem) Codebase() *Codebase { return c.codebase }
func (c *ClassItem) QualifiedName() string { return c.qualifiedName }
func (c *ClassItem) SimpleName() string { return c.simpleName }
func (c *ClassItem) Kind() ClassKind { return c.kind }
func (c *ClassItem) Modifiers() Modifiers { return c.modifiers }
func (c *ClassItem) Origin() Origin { return c.origin }
func (c *ClassItem) Package() *Package { return c.pkg }
func (c *ClassItem) Frozen() bool { return c.frozen }

func (c *ClassItem) IsInterface() bool { return c.kind == ClassKindInterface }
func (c *ClassItem) IsAnnotation() bool { return c.kind == ClassKindAnnotation }
func (c *ClassItem) IsEnum() bool { return c.kind == ClassKindEnum }

func (c *ClassItem) TypeParameters() []*TypeParameterItem { return c.typeParameters }
func (c *ClassItem) InterfaceTypes() []*ClassType { return c.interfaceTypes }
func (c *ClassItem) Constructors() []*MethodItem { return c.constructors }
func (c *ClassItem) Methods() []*MethodItem { return c.methods }
func (c *ClassItem) Fields() []*FieldItem { return c.fields }
func (c *ClassItem) Properties() []*PropertyItem { return c.properties }

// SuperClassType is nil only for the Object root.
func (c *ClassItem) SuperClassType() *ClassType { return c.superClassType }

// SuperClass resolves the super-class type against the codebase;
// missing classpath entries resolve to nil.
func (c *ClassItem) SuperClass() *ClassItem {
	if c.superClassType == nil {
		return nil
	}
	return c.codebase.FindClass(c.superClassType.Qualified)
}

// Interfaces resolves the directly implemented or extended interface
// types in declared order, skipping unresolvable references.
func (c *ClassItem) Interfaces() []*ClassItem {
	var out []*ClassItem
	for _, it := range c.interfaceTypes {
		if resolved := c.codebase.FindClass(it.Qualified); resolved != nil {
			out = append(out, resolved)
		}
	}
	return out
}

// Type returns a use of this class parameterized by its own type
// parameters, the self view used on extends edges and member types.
func (c *ClassItem) Type() *ClassType {
	args := make([]TypeItem, len(c.typeParameters))
	for i, p := range c.typeParameters {
		args[i] = p.Variable()
	}
	return &ClassType{Qualified: c.qualifiedName, Arguments: args}
}

func (c *ClassItem) mutate(op string) error {
	if c.frozen {
		return fmt.Errorf("%w: cannot %s on %s", ErrFrozen, op, c.qualifiedName)
	}
	return nil
}

func (c *ClassItem) SetModifiers(mods Modifiers) error {
	if err := c.mutate("set modifiers"); err != nil {
		return err
	}
	c.modifiers = mods
	return nil
}

func (c *ClassItem) SetTypeParameters(params ...*TypeParameterItem) error {
	if err := c.mutate("set type parameters"); err != nil {
		return err
	}
	c.typeParameters = params
	return nil
}

// SetSuperClassType resolves the extends edge. The Object root keeps
// a nil super-class type; self references are a caller error.
func (c *ClassItem) SetSuperClassType(t *ClassType) error {
	if err := c.mutate("set super class"); err != nil {
		return err
	}
	if t != nil && t.Qualified == c.qualifiedName {
		return fmt.Errorf("class %s cannot extend itself", c.qualifiedName)
	}
	c.superClassType = t
	return nil
}

func (c *ClassItem) SetInterfaceTypes(ts ...*ClassType) error {
	if err := c.mutate("set interfaces"); err != nil {
		return err
	}
	c.interfaceTypes = ts
	return nil
}

func (c *ClassItem) AddConstructor(m *MethodItem) error {
	if err := c.mutate("add constructor"); err != nil {
		return err
	}
	m.class = c
	m.constructor = true
	c.constructors = append(c.constructors, m)
	return nil
}

func (c *ClassItem) AddMethod(m *MethodItem) error {
	if err := c.mutate("add method"); err != nil {
		return err
	}
	m.class = c
	c.methods = append(c.methods, m)
	return nil
}

func (c *ClassItem) AddField(f *FieldItem) error {
	if err := c.mutate("add field"); err != nil {
		return err
	}
	f.class = c
	c.fields = append(c.fields, f)
	return nil
}

func (c *ClassItem) AddProperty(p *PropertyItem) error {
	if err := c.mutate("add property"); err != nil {
		return err
	}
	p.class = c
	c.properties = append(c.properties, p)
	return nil
}

// Freeze transitions the class to its permanent read-only state and
// propagates upward through the resolved super-class and interface
// ancestry. It never propagates downward to subclasses.
func (c *ClassItem) Freeze() {
	if c.frozen {
		return
	}
	c.frozen = true
	log.Debugf("froze %s", c.qualifiedName)
	if super := c.SuperClass(); super != nil {
		super.Freeze()
	}
	for _, iface := range c.Interfaces() {
		iface.Freeze()
	}
}

// AllInterfaces walks the transitive interface set: for an interface,
// itself followed by everything it extends; for a class, every
// interface implemented anywhere on its super-class chain. Order is
// declared-order depth first, de-duplicated on first occurrence, so
// it is deterministic and terminates on diamonds.
func (c *ClassItem) AllInterfaces() []*ClassItem {
	var result []*ClassItem
	seen := make(map[*ClassItem]bool)
	var visit func(iface *ClassItem)
	visit = func(iface *ClassItem) {
		if seen[iface] {
			return
		}
		seen[iface] = true
		result = append(result, iface)
		for _, next := range iface.Interfaces() {
			visit(next)
		}
	}
	if c.IsInterface() {
		visit(c)
		return result
	}
	for cur := c; cur != nil; cur = cur.SuperClass() {
		for _, iface := range cur.Interfaces() {
			visit(iface)
		}
	}
	return result
}

// FindMethod returns the first declared method matching the erased
// signature: same name, same parameter erasure list.
func (c *ClassItem) FindMethod(name string, parameterErasure []string) *MethodItem {
	for _, m := range c.methods {
		if m.name != name || len(m.parameters) != len(parameterErasure) {
			continue
		}
		match := true
		for i, p := range m.parameters {
			if ErasedTypeString(p.typ) != parameterErasure[i] {
				match = false
				break
			}
		}
		if match {
			return m
		}
	}
	return nil
}

// FindField looks a field up by name; field identity is the name.
func (c *ClassItem) FindField(name string) *FieldItem {
	for _, f := range c.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// FindProperty looks a property up by name.
func (c *ClassItem) FindProperty(name string) *PropertyItem {
	for _, p := range c.properties {
		if p.name == name {
			return p
		}
	}
	return nil
}
