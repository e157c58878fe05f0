package model

// MapTypeVariables computes, for a strict transitive ancestor of this
// class, the binding of each of the ancestor's type parameters to the
// concrete or partially concrete type it takes in this class's frame.
//
// The walk follows the super-class edge first and then the interface
// edges in declared order, depth first, composing the per-edge
// variable-to-argument bindings by transitive substitution. On a
// diamond the first declared path wins; visited classes are tracked
// so the walk terminates.
//
// The result is empty when ancestor is this class itself or not an
// ancestor at all.
func (c *ClassItem) MapTypeVariables(ancestor *ClassItem) TypeParameterBindings {
	if ancestor == nil || ancestor == c {
		return TypeParameterBindings{}
	}
	seen := make(map[*ClassItem]bool)
	if bindings, ok := c.mapTypeVariablesTo(ancestor, seen); ok {
		return bindings
	}
	return TypeParameterBindings{}
}

func (c *ClassItem) mapTypeVariablesTo(ancestor *ClassItem, seen map[*ClassItem]bool) (TypeParameterBindings, bool) {
	if seen[c] {
		return nil, false
	}
	seen[c] = true

	edges := make([]*ClassType, 0, len(c.interfaceTypes)+1)
	if c.superClassType != nil {
		edges = append(edges, c.superClassType)
	}
	edges = append(edges, c.interfaceTypes...)

	for _, edge := range edges {
		parent := c.codebase.FindClass(edge.Qualified)
		if parent == nil {
			continue
		}
		direct := bindEdge(parent, edge)
		if parent == ancestor {
			return direct, true
		}
		sub, ok := parent.mapTypeVariablesTo(ancestor, seen)
		if !ok {
			continue
		}
		// Compose: values of the deeper mapping may reference the
		// parent's own parameters; substitute those through this
		// edge's bindings so the result is in c's frame.
		composed := make(TypeParameterBindings, len(sub))
		for param, bound := range sub {
			composed[param] = Convert(bound, direct)
		}
		return composed, true
	}
	return nil, false
}

// bindEdge zips an extends/implements reference's arguments onto the
// target's declared parameters. A raw reference to a generic type
// leaves the parameters unbound, so erased instantiations stay erased
// instead of expanding.
func bindEdge(parent *ClassItem, edge *ClassType) TypeParameterBindings {
	bindings := make(TypeParameterBindings, len(parent.typeParameters))
	for i, param := range parent.typeParameters {
		if i < len(edge.Arguments) {
			bindings[param] = edge.Arguments[i]
		}
	}
	return bindings
}

// ConvertType substitutes every variable inside a type taken from an
// ancestor's declaration into the descendant's frame. Variables with
// no binding pass through unchanged.
func ConvertType(t TypeItem, descendant, ancestor *ClassItem) TypeItem {
	return Convert(t, descendant.MapTypeVariables(ancestor))
}

// Convert applies a binding map through an arbitrary type tree,
// substituting variable leaves at any depth: array components, class
// type arguments, wildcard bounds, lambda views. Array dimensionality,
// varargs flags and wildcard bound kinds are preserved exactly. The
// input is returned unchanged, same identity, when nothing in the
// tree is bound.
func Convert(t TypeItem, bindings TypeParameterBindings) TypeItem {
	if t == nil || len(bindings) == 0 {
		return t
	}
	switch ty := t.(type) {
	case *PrimitiveType:
		return ty
	case *VariableType:
		bound, ok := bindings[ty.Parameter]
		if !ok {
			return ty
		}
		return withUseNullability(bound, ty.Null)
	case *ArrayType:
		component := Convert(ty.Component, bindings)
		if component == ty.Component {
			return ty
		}
		return &ArrayType{Component: component, Varargs: ty.Varargs, Null: ty.Null, Anns: ty.Anns}
	case *WildcardType:
		extends := Convert(ty.Extends, bindings)
		super := Convert(ty.Super, bindings)
		if extends == ty.Extends && super == ty.Super {
			return ty
		}
		return &WildcardType{Extends: extends, Super: super, Anns: ty.Anns}
	case *LambdaType:
		receiver := Convert(ty.Receiver, bindings)
		params, paramsChanged := convertSlice(ty.Params, bindings)
		ret := Convert(ty.Return, bindings)
		if receiver == ty.Receiver && !paramsChanged && ret == ty.Return {
			return ty
		}
		converted := NewLambdaType(receiver, params, ret, ty.Suspend)
		converted.Null = ty.Null
		converted.Anns = ty.Anns
		return converted
	case *ClassType:
		args, argsChanged := convertSlice(ty.Arguments, bindings)
		outer := ty.Outer
		outerChanged := false
		if outer != nil {
			if convertedOuter, ok := Convert(outer, bindings).(*ClassType); ok && convertedOuter != outer {
				outer = convertedOuter
				outerChanged = true
			}
		}
		if !argsChanged && !outerChanged {
			return ty
		}
		return &ClassType{Qualified: ty.Qualified, Arguments: args, Outer: outer, Null: ty.Null, Anns: ty.Anns}
	}
	return t
}

func convertSlice(in []TypeItem, bindings TypeParameterBindings) ([]TypeItem, bool) {
	changed := false
	out := make([]TypeItem, len(in))
	for i, t := range in {
		out[i] = Convert(t, bindings)
		if out[i] != t {
			changed = true
		}
	}
	if !changed {
		return in, false
	}
	return out, true
}

// withUseNullability carries a variable use's own nullability onto the
// substituted type. A platform (unannotated) use has no nullability of
// its own and collapses to the bound type's; explicit uses win.
func withUseNullability(t TypeItem, use Nullability) TypeItem {
	if use == NullabilityPlatform || t.Nullability() == use {
		return t
	}
	switch ty := t.(type) {
	case *ArrayType:
		clone := *ty
		clone.Null = use
		return &clone
	case *LambdaType:
		clone := *ty
		clone.Null = use
		return &clone
	case *ClassType:
		clone := *ty
		clone.Null = use
		return &clone
	case *VariableType:
		clone := *ty
		clone.Null = use
		return &clone
	}
	// Primitives and wildcards are always non-null.
	return t
}
