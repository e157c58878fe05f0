package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/model"
)

// JSONDecoder reads a document produced by JSONEncoder and rebuilds
// the codebase. Classes are created in a first pass so that type uses
// in the second pass always resolve against registered declarations;
// type variables resolve against the enclosing class and method
// scopes, never by creating new declarations.
type JSONDecoder struct {
	r io.Reader
}

func NewJSONDecoder(r io.Reader) *JSONDecoder {
	return &JSONDecoder{r: r}
}

func (d *JSONDecoder) Decode(opts ...model.CodebaseOption) (*model.Codebase, error) {
	var doc jsonCodebase
	if err := json.NewDecoder(d.r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode codebase: %w", err)
	}
	if doc.Source {
		opts = append(opts, model.WithSourceFidelity())
	}
	cb := model.NewCodebase(doc.Description, opts...)

	classParams := make(map[string][]*model.TypeParameterItem, len(doc.Classes))
	for _, jc := range doc.Classes {
		cls, err := declareClass(cb, jc)
		if err != nil {
			return nil, err
		}
		classParams[jc.Name] = cls.TypeParameters()
	}
	for _, jc := range doc.Classes {
		if err := populateClass(cb, jc, classParams[jc.Name]); err != nil {
			return nil, fmt.Errorf("class %s: %w", jc.Name, err)
		}
	}
	for _, jp := range doc.Packages {
		if err := populatePackage(cb, jp); err != nil {
			return nil, fmt.Errorf("package %s: %w", jp.Name, err)
		}
	}
	return cb, nil
}

func declareClass(cb *model.Codebase, jc jsonClass) (*model.ClassItem, error) {
	kind, err := parseClassKind(jc.Kind)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", jc.Name, err)
	}
	origin, err := parseOrigin(jc.Origin)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", jc.Name, err)
	}
	cls, err := cb.NewClass(jc.Name, kind, origin)
	if err != nil {
		return nil, err
	}
	mods, err := parseModifiers(jc.Visibility, jc.Modifiers)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", jc.Name, err)
	}
	if err := cls.SetModifiers(mods); err != nil {
		return nil, err
	}
	params := make([]*model.TypeParameterItem, len(jc.TypeParameters))
	for i, tp := range jc.TypeParameters {
		params[i] = &model.TypeParameterItem{Name: tp.Name}
	}
	if err := cls.SetTypeParameters(params...); err != nil {
		return nil, err
	}
	return cls, nil
}

func populateClass(cb *model.Codebase, jc jsonClass, params []*model.TypeParameterItem) error {
	cls := cb.FindClass(jc.Name)
	scope := newTypeScope(nil, params)
	if err := resolveBounds(jc.TypeParameters, params, scope); err != nil {
		return err
	}
	if jc.SuperClass != nil {
		st, err := decodeClassType(jc.SuperClass, scope)
		if err != nil {
			return fmt.Errorf("super class: %w", err)
		}
		if err := cls.SetSuperClassType(st); err != nil {
			return err
		}
	}
	if len(jc.Interfaces) > 0 {
		ifaces := make([]*model.ClassType, len(jc.Interfaces))
		for i := range jc.Interfaces {
			it, err := decodeClassType(&jc.Interfaces[i], scope)
			if err != nil {
				return fmt.Errorf("interface %d: %w", i, err)
			}
			ifaces[i] = it
		}
		if err := cls.SetInterfaceTypes(ifaces...); err != nil {
			return err
		}
	}
	for _, jm := range jc.Constructors {
		m, err := decodeMethod(jm, scope, true)
		if err != nil {
			return fmt.Errorf("constructor %s: %w", jm.Name, err)
		}
		if err := cls.AddConstructor(m); err != nil {
			return err
		}
	}
	for _, jm := range jc.Methods {
		m, err := decodeMethod(jm, scope, false)
		if err != nil {
			return fmt.Errorf("method %s: %w", jm.Name, err)
		}
		if err := cls.AddMethod(m); err != nil {
			return err
		}
	}
	for _, jf := range jc.Fields {
		f, err := decodeField(jf, scope)
		if err != nil {
			return fmt.Errorf("field %s: %w", jf.Name, err)
		}
		if err := cls.AddField(f); err != nil {
			return err
		}
	}
	for _, jp := range jc.Properties {
		mods, err := parseModifiers(jp.Visibility, jp.Modifiers)
		if err != nil {
			return fmt.Errorf("property %s: %w", jp.Name, err)
		}
		t, err := decodeType(&jp.Type, scope)
		if err != nil {
			return fmt.Errorf("property %s: %w", jp.Name, err)
		}
		if err := cls.AddProperty(model.NewProperty(jp.Name, mods, t)); err != nil {
			return err
		}
	}
	return nil
}

func populatePackage(cb *model.Codebase, jp jsonPackage) error {
	pkg := cb.FindOrCreatePackage(jp.Name)
	pkg.SetEmit(jp.Emit)
	for _, ja := range jp.Aliases {
		mods, err := parseModifiers(ja.Visibility, ja.Modifiers)
		if err != nil {
			return fmt.Errorf("type alias %s: %w", ja.Name, err)
		}
		t, err := decodeType(&ja.Aliased, newTypeScope(nil, nil))
		if err != nil {
			return fmt.Errorf("type alias %s: %w", ja.Name, err)
		}
		pkg.AddTypeAlias(&model.TypeAlias{Name: ja.Name, Aliased: t, Modifiers: mods})
	}
	return nil
}

func decodeMethod(jm jsonMethod, scope *typeScope, constructor bool) (*model.MethodItem, error) {
	mods, err := parseModifiers(jm.Visibility, jm.Modifiers)
	if err != nil {
		return nil, err
	}
	params := make([]*model.TypeParameterItem, len(jm.TypeParameters))
	for i, tp := range jm.TypeParameters {
		params[i] = &model.TypeParameterItem{Name: tp.Name}
	}
	mscope := newTypeScope(scope, params)
	if err := resolveBounds(jm.TypeParameters, params, mscope); err != nil {
		return nil, err
	}
	var ret model.TypeItem
	if !constructor {
		if jm.ReturnType == nil {
			return nil, fmt.Errorf("missing return type")
		}
		if ret, err = decodeType(jm.ReturnType, mscope); err != nil {
			return nil, fmt.Errorf("return type: %w", err)
		}
	}
	m := model.NewMethod(jm.Name, mods, ret)
	if err := m.SetTypeParameters(params...); err != nil {
		return nil, err
	}
	for i, jp := range jm.Parameters {
		t, err := decodeType(&jp.Type, mscope)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		if err := m.AddParameter(jp.Name, t); err != nil {
			return nil, err
		}
	}
	for i := range jm.Throws {
		t, err := decodeType(&jm.Throws[i], mscope)
		if err != nil {
			return nil, fmt.Errorf("throws %d: %w", i, err)
		}
		if err := m.AddThrows(t); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func decodeField(jf jsonField, scope *typeScope) (*model.FieldItem, error) {
	mods, err := parseModifiers(jf.Visibility, jf.Modifiers)
	if err != nil {
		return nil, err
	}
	t, err := decodeType(&jf.Type, scope)
	if err != nil {
		return nil, err
	}
	f := model.NewField(jf.Name, mods, t)
	if jf.Constant != nil {
		if err := f.SetConstantValue(jf.Constant); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func resolveBounds(decls []jsonTypeParam, params []*model.TypeParameterItem, scope *typeScope) error {
	for i, tp := range decls {
		for j := range tp.Bounds {
			b, err := decodeType(&tp.Bounds[j], scope)
			if err != nil {
				return fmt.Errorf("type parameter %s: %w", tp.Name, err)
			}
			params[i].Bounds = append(params[i].Bounds, b)
		}
	}
	return nil
}

// typeScope resolves type variable names to their declarations, inner
// scope first.
type typeScope struct {
	outer  *typeScope
	params []*model.TypeParameterItem
}

func newTypeScope(outer *typeScope, params []*model.TypeParameterItem) *typeScope {
	return &typeScope{outer: outer, params: params}
}

func (s *typeScope) lookup(name string) *model.TypeParameterItem {
	for sc := s; sc != nil; sc = sc.outer {
		for _, p := range sc.params {
			if p.Name == name {
				return p
			}
		}
	}
	return nil
}

func decodeType(j *jsonType, scope *typeScope) (model.TypeItem, error) {
	switch j.Kind {
	case "primitive":
		kind, ok := model.PrimitiveKindFromString(j.Name)
		if !ok {
			return nil, fmt.Errorf("unknown primitive %q", j.Name)
		}
		return &model.PrimitiveType{Kind: kind, Anns: j.Annotations}, nil

	case "array":
		if j.Component == nil {
			return nil, fmt.Errorf("array without component")
		}
		component, err := decodeType(j.Component, scope)
		if err != nil {
			return nil, err
		}
		null, err := parseNullability(j.Nullability, model.NullabilityNonNull)
		if err != nil {
			return nil, err
		}
		return &model.ArrayType{
			Component: component,
			Varargs:   j.Varargs,
			Null:      null,
			Anns:      j.Annotations,
		}, nil

	case "class":
		null, err := parseNullability(j.Nullability, model.NullabilityNonNull)
		if err != nil {
			return nil, err
		}
		t := &model.ClassType{Qualified: j.Name, Null: null, Anns: j.Annotations}
		for i := range j.Arguments {
			arg, err := decodeType(&j.Arguments[i], scope)
			if err != nil {
				return nil, err
			}
			t.Arguments = append(t.Arguments, arg)
		}
		if j.Outer != nil {
			outer, err := decodeClassType(j.Outer, scope)
			if err != nil {
				return nil, err
			}
			t.Outer = outer
		}
		return t, nil

	case "variable":
		param := scope.lookup(j.Name)
		if param == nil {
			return nil, fmt.Errorf("unresolved type variable %q", j.Name)
		}
		null, err := parseNullability(j.Nullability, model.NullabilityPlatform)
		if err != nil {
			return nil, err
		}
		return &model.VariableType{
			Name:      j.Name,
			Parameter: param,
			Null:      null,
			Anns:      j.Annotations,
		}, nil

	case "wildcard":
		if j.Super != nil {
			bound, err := decodeType(j.Super, scope)
			if err != nil {
				return nil, err
			}
			w := model.NewSuperWildcard(bound)
			w.Anns = j.Annotations
			return w, nil
		}
		if j.Extends == nil {
			w := model.NewUnboundedWildcard()
			w.Anns = j.Annotations
			return w, nil
		}
		bound, err := decodeType(j.Extends, scope)
		if err != nil {
			return nil, err
		}
		w := model.NewExtendsWildcard(bound)
		w.Anns = j.Annotations
		return w, nil

	case "lambda":
		var receiver model.TypeItem
		var err error
		if j.Receiver != nil {
			if receiver, err = decodeType(j.Receiver, scope); err != nil {
				return nil, err
			}
		}
		params := make([]model.TypeItem, len(j.Parameters))
		for i := range j.Parameters {
			if params[i], err = decodeType(&j.Parameters[i], scope); err != nil {
				return nil, err
			}
		}
		if j.Return == nil {
			return nil, fmt.Errorf("lambda without return type")
		}
		ret, err := decodeType(j.Return, scope)
		if err != nil {
			return nil, err
		}
		t := model.NewLambdaType(receiver, params, ret, j.Suspend)
		null, err := parseNullability(j.Nullability, model.NullabilityNonNull)
		if err != nil {
			return nil, err
		}
		t.Null = null
		t.Anns = j.Annotations
		return t, nil
	}
	return nil, fmt.Errorf("unknown type kind %q", j.Kind)
}

func decodeClassType(j *jsonType, scope *typeScope) (*model.ClassType, error) {
	t, err := decodeType(j, scope)
	if err != nil {
		return nil, err
	}
	ct, ok := t.(*model.ClassType)
	if !ok {
		return nil, fmt.Errorf("expected class type, got %q", j.Kind)
	}
	return ct, nil
}

func parseNullability(s string, dflt model.Nullability) (model.Nullability, error) {
	switch s {
	case "":
		return dflt, nil
	case "nonnull":
		return model.NullabilityNonNull, nil
	case "nullable":
		return model.NullabilityNullable, nil
	case "platform":
		return model.NullabilityPlatform, nil
	}
	return 0, fmt.Errorf("unknown nullability %q", s)
}

func parseClassKind(s string) (model.ClassKind, error) {
	switch model.ClassKind(s) {
	case model.ClassKindClass, model.ClassKindInterface, model.ClassKindEnum, model.ClassKindAnnotation:
		return model.ClassKind(s), nil
	}
	return "", fmt.Errorf("unknown class kind %q", s)
}

func parseOrigin(s string) (model.Origin, error) {
	switch model.Origin(s) {
	case "":
		return model.OriginCommandLine, nil
	case model.OriginCommandLine, model.OriginClassPath, model.OriginSourcePath:
		return model.Origin(s), nil
	}
	return "", fmt.Errorf("unknown origin %q", s)
}

func parseModifiers(visibility string, mods []string) (model.Modifiers, error) {
	m := model.Modifiers{Visibility: model.VisibilityPublic}
	switch model.Visibility(visibility) {
	case "":
	case model.VisibilityPublic, model.VisibilityProtected, model.VisibilityPrivate, model.VisibilityPackage:
		m.Visibility = model.Visibility(visibility)
	default:
		return m, fmt.Errorf("unknown visibility %q", visibility)
	}
	for _, mod := range mods {
		switch mod {
		case "static":
			m.Static = true
		case "final":
			m.Final = true
		case "abstract":
			m.Abstract = true
		case "default":
			m.Default = true
		case "synchronized":
			m.Synchronized = true
		case "native":
			m.Native = true
		case "deprecated":
			m.Deprecated = true
		case "originally-deprecated":
			m.OriginallyDeprecated = true
		default:
			return m, fmt.Errorf("unknown modifier %q", mod)
		}
	}
	return m, nil
}
