package model

// ParameterItem is one declared parameter of a method, in position
// order. The back reference to the owning method is relational, not
// owning.
type ParameterItem struct {
	name      string
	index     int
	typ       TypeItem
	modifiers Modifiers
	method    *MethodItem
}

func (p *ParameterItem) Name() string { return p.name }
func (p *ParameterItem) Index() int { return p.index }
func (p *ParameterItem) Type() TypeItem { return p.typ }
func (p *ParameterItem) Modifiers() Modifiers { return p.modifiers }
func (p *ParameterItem) Method() *MethodItem { return p.method }

// IsVarargs reports whether this is a trailing varargs parameter.
func (p *ParameterItem) IsVarargs() bool {
	arr, ok := p.typ.(*ArrayType)
	return ok && arr.Varargs
}
