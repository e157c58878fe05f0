package model

// TypeParameterItem is a generic parameter declared on a class or a
// method. It is deliberately not a ClassItem: bound and use sites may
// look class-like, but the declaration is a distinct kind of node.
type TypeParameterItem struct {
	Name string

	// Bounds in declared order. The first bound may be a class or a
	// type variable; later bounds are interface types. Empty means an
	// implicit Object bound.
	Bounds []TypeItem
}

// Variable returns a fresh use-site reference to this declaration.
func (p *TypeParameterItem) Variable() *VariableType {
	return NewVariableType(p)
}

// ErasedClass resolves the erasure of this parameter: the erased
// class of its first bound, or the Object root when unbounded. Absent
// classes resolve to nil rather than an error.
func (p *TypeParameterItem) ErasedClass(cb *Codebase) *ClassItem {
	if len(p.Bounds) == 0 {
		return cb.FindClass(ObjectClassName)
	}
	return cb.ErasedClass(p.Bounds[0])
}

// TypeParameterBindings maps an ancestor's declared type parameters to
// the type each is bound to along an inheritance path, expressed in
// the descendant's frame.
type TypeParameterBindings map[*TypeParameterItem]TypeItem
