package model

import "fmt"

// SuperMethods returns the methods this one overrides or implements,
// in resolution order: the nearest super-class match first (if any),
// then one match per directly implemented interface in declared
// order. This is a search, not a flat ancestor scan: an ancestor's
// own chain is only entered when that ancestor lacks the signature
// itself. Static and private ancestor methods never count.
func (m *MethodItem) SuperMethods() []*MethodItem {
	if m.class == nil {
		return nil
	}
	erasure := m.ParameterErasure()
	var result []*MethodItem
	seen := make(map[*MethodItem]bool)
	add := func(found *MethodItem) {
		if found != nil && !seen[found] {
			seen[found] = true
			result = append(result, found)
		}
	}

	if super := m.class.SuperClass(); super != nil {
		add(findInClassChain(super, m.name, erasure))
	}
	for _, iface := range m.class.Interfaces() {
		for _, found := range findInInterface(iface, m.name, erasure, make(map[*ClassItem]bool)) {
			add(found)
		}
	}
	return result
}

// findInClassChain walks super-classes until the first inheritable
// match; a private or static same-signature method does not stop the
// search and never counts.
func findInClassChain(cls *ClassItem, name string, erasure []string) *MethodItem {
	for cur := cls; cur != nil; cur = cur.SuperClass() {
		if found := cur.FindMethod(name, erasure); found != nil && isInheritable(found) {
			return found
		}
	}
	return nil
}

// findInInterface takes a declared match if the interface has one,
// and only otherwise descends into its extended interfaces, collecting
// left to right. Visited interfaces are tracked so diamonds do not
// produce duplicates or loops.
func findInInterface(iface *ClassItem, name string, erasure []string, visited map[*ClassItem]bool) []*MethodItem {
	if visited[iface] {
		return nil
	}
	visited[iface] = true
	if found := iface.FindMethod(name, erasure); found != nil && isInheritable(found) {
		return []*MethodItem{found}
	}
	var result []*MethodItem
	for _, next := range iface.Interfaces() {
		result = append(result, findInInterface(next, name, erasure, visited)...)
	}
	return result
}

func isInheritable(m *MethodItem) bool {
	return !m.modifiers.Static && m.modifiers.Visibility != VisibilityPrivate
}

// Duplicate produces a copy of this method logically belonging to
// target: return, parameter and throws types are substituted into
// target's frame via MapTypeVariables against the declaring class.
//
// Modifier rules: default is always stripped (copies are concrete
// overrides); abstract is cleared when the target cannot host an
// abstract member; final is whatever the source's was, never forced by
// the target's finality; visibility copies as-is. The copy records the
// original declaring class and is not added to target's member list.
func (m *MethodItem) Duplicate(target *ClassItem) (*MethodItem, error) {
	if target.frozen {
		return nil, fmt.Errorf("%w: cannot duplicate %s into %s",
			ErrFrozen, m.ErasedSignature(), target.qualifiedName)
	}
	dup := m.duplicateInto(target)
	dup.modifiers.Default = false
	return dup, nil
}

// InheritMethodFromNonApiAncestor pulls a method declared on a hidden
// (non-API) ancestor into this class so the class satisfies the
// contract in source form. Only representable for codebases built
// from primary source input. Unlike Duplicate, this path does not
// strip the default modifier; that asymmetry is preserved on purpose.
func (c *ClassItem) InheritMethodFromNonApiAncestor(source *MethodItem) (*MethodItem, error) {
	if !c.codebase.fromSource {
		return nil, fmt.Errorf("%w: cannot inherit %s into %s",
			ErrSignatureCodebase, source.ErasedSignature(), c.qualifiedName)
	}
	if c.frozen {
		return nil, fmt.Errorf("%w: cannot inherit %s into %s",
			ErrFrozen, source.ErasedSignature(), c.qualifiedName)
	}
	return source.duplicateInto(c), nil
}

func (m *MethodItem) duplicateInto(target *ClassItem) *MethodItem {
	bindings := target.MapTypeVariables(m.class)

	mods := m.modifiers
	if mods.Abstract && !target.modifiers.Abstract && !target.IsInterface() {
		mods.Abstract = false
	}

	dup := &MethodItem{
		name:                  m.name,
		modifiers:             mods,
		returnType:            Convert(m.returnType, bindings),
		typeParameters:        m.typeParameters,
		class:                 target,
		constructor:           m.constructor,
		inheritedFrom:         m.DeclaringClass(),
		inheritedFromAncestor: true,
	}
	for _, p := range m.parameters {
		dup.parameters = append(dup.parameters, &ParameterItem{
			name:      p.name,
			index:     p.index,
			typ:       Convert(p.typ, bindings),
			modifiers: p.modifiers,
			method:    dup,
		})
	}
	for _, t := range m.throws {
		dup.throws = append(dup.throws, Convert(t, bindings))
	}
	return dup
}
