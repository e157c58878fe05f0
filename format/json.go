package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/model"
)

// JSONEncoder writes a whole codebase as an indented JSON document.
// The document is self-contained: decoding it with JSONDecoder yields
// an equivalent model.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(cb *model.Codebase) error {
	text, err := e.marshal(cb)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) marshal(cb *model.Codebase) ([]byte, error) {
	doc := jsonCodebase{
		Description: cb.Description(),
		Source:      cb.FromSource(),
	}
	for _, pkg := range cb.Packages() {
		doc.Packages = append(doc.Packages, buildPackage(pkg))
	}
	for _, cls := range cb.AllClasses() {
		doc.Classes = append(doc.Classes, buildClass(cls))
	}
	return json.MarshalIndent(doc, "", "  ")
}

type jsonCodebase struct {
	Description string        `json:"description,omitempty"`
	Source      bool          `json:"source,omitempty"`
	Packages    []jsonPackage `json:"packages,omitempty"`
	Classes     []jsonClass   `json:"classes"`
}

type jsonPackage struct {
	Name    string          `json:"name"`
	Emit    bool            `json:"emit"`
	Aliases []jsonTypeAlias `json:"typeAliases,omitempty"`
}

type jsonTypeAlias struct {
	Name       string    `json:"name"`
	Aliased    jsonType  `json:"aliased"`
	Visibility string    `json:"visibility,omitempty"`
	Modifiers  []string  `json:"modifiers,omitempty"`
}

type jsonClass struct {
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	Origin         string          `json:"origin,omitempty"`
	Visibility     string          `json:"visibility,omitempty"`
	Modifiers      []string        `json:"modifiers,omitempty"`
	TypeParameters []jsonTypeParam `json:"typeParameters,omitempty"`
	SuperClass     *jsonType       `json:"superClass,omitempty"`
	Interfaces     []jsonType      `json:"interfaces,omitempty"`
	Constructors   []jsonMethod    `json:"constructors,omitempty"`
	Methods        []jsonMethod    `json:"methods,omitempty"`
	Fields         []jsonField     `json:"fields,omitempty"`
	Properties     []jsonProperty  `json:"properties,omitempty"`
}

type jsonTypeParam struct {
	Name   string     `json:"name"`
	Bounds []jsonType `json:"bounds,omitempty"`
}

type jsonMethod struct {
	Name           string          `json:"name"`
	Visibility     string          `json:"visibility,omitempty"`
	Modifiers      []string        `json:"modifiers,omitempty"`
	TypeParameters []jsonTypeParam `json:"typeParameters,omitempty"`
	ReturnType     *jsonType       `json:"returnType,omitempty"`
	Parameters     []jsonParameter `json:"parameters,omitempty"`
	Throws         []jsonType      `json:"throws,omitempty"`
}

type jsonParameter struct {
	Name string   `json:"name,omitempty"`
	Type jsonType `json:"type"`
}

type jsonField struct {
	Name       string   `json:"name"`
	Visibility string   `json:"visibility,omitempty"`
	Modifiers  []string `json:"modifiers,omitempty"`
	Type       jsonType `json:"type"`
	Constant   any      `json:"constant,omitempty"`
}

type jsonProperty struct {
	Name       string   `json:"name"`
	Visibility string   `json:"visibility,omitempty"`
	Modifiers  []string `json:"modifiers,omitempty"`
	Type       jsonType `json:"type"`
}

// jsonType is the structured form of a type use. Kind selects which
// of the remaining fields are meaningful.
type jsonType struct {
	Kind        string     `json:"kind"`
	Name        string     `json:"name,omitempty"`
	Nullability string     `json:"nullability,omitempty"`
	Annotations []string   `json:"annotations,omitempty"`
	Component   *jsonType  `json:"component,omitempty"`
	Varargs     bool       `json:"varargs,omitempty"`
	Arguments   []jsonType `json:"arguments,omitempty"`
	Outer       *jsonType  `json:"outer,omitempty"`
	Extends     *jsonType  `json:"extends,omitempty"`
	Super       *jsonType  `json:"super,omitempty"`
	Receiver    *jsonType  `json:"receiver,omitempty"`
	Parameters  []jsonType `json:"parameters,omitempty"`
	Return      *jsonType  `json:"return,omitempty"`
	Suspend     bool       `json:"suspend,omitempty"`
}

func buildPackage(pkg *model.Package) jsonPackage {
	p := jsonPackage{Name: pkg.Name(), Emit: pkg.Emit()}
	for _, a := range pkg.TypeAliases() {
		p.Aliases = append(p.Aliases, jsonTypeAlias{
			Name:       a.Name,
			Aliased:    buildType(a.Aliased),
			Visibility: string(a.Modifiers.Visibility),
			Modifiers:  modifierNames(a.Modifiers),
		})
	}
	return p
}

func buildClass(cls *model.ClassItem) jsonClass {
	c := jsonClass{
		Name:           cls.QualifiedName(),
		Kind:           string(cls.Kind()),
		Origin:         string(cls.Origin()),
		Visibility:     string(cls.Modifiers().Visibility),
		Modifiers:      modifierNames(cls.Modifiers()),
		TypeParameters: buildTypeParams(cls.TypeParameters()),
	}
	if st := cls.SuperClassType(); st != nil {
		t := buildType(st)
		c.SuperClass = &t
	}
	for _, it := range cls.InterfaceTypes() {
		c.Interfaces = append(c.Interfaces, buildType(it))
	}
	for _, m := range cls.Constructors() {
		c.Constructors = append(c.Constructors, buildMethod(m))
	}
	for _, m := range cls.Methods() {
		c.Methods = append(c.Methods, buildMethod(m))
	}
	for _, f := range cls.Fields() {
		c.Fields = append(c.Fields, jsonField{
			Name:       f.Name(),
			Visibility: string(f.Modifiers().Visibility),
			Modifiers:  modifierNames(f.Modifiers()),
			Type:       buildType(f.Type()),
			Constant:   f.ConstantValue(),
		})
	}
	for _, p := range cls.Properties() {
		c.Properties = append(c.Properties, jsonProperty{
			Name:       p.Name(),
			Visibility: string(p.Modifiers().Visibility),
			Modifiers:  modifierNames(p.Modifiers()),
			Type:       buildType(p.Type()),
		})
	}
	return c
}

func buildMethod(m *model.MethodItem) jsonMethod {
	j := jsonMethod{
		Name:           m.Name(),
		Visibility:     string(m.Visibility()),
		Modifiers:      modifierNames(m.Modifiers()),
		TypeParameters: buildTypeParams(m.TypeParameters()),
	}
	if !m.IsConstructor() && m.ReturnType() != nil {
		t := buildType(m.ReturnType())
		j.ReturnType = &t
	}
	for _, p := range m.Parameters() {
		j.Parameters = append(j.Parameters, jsonParameter{
			Name: p.Name(),
			Type: buildType(p.Type()),
		})
	}
	for _, t := range m.Throws() {
		j.Throws = append(j.Throws, buildType(t))
	}
	return j
}

func buildTypeParams(params []*model.TypeParameterItem) []jsonTypeParam {
	var out []jsonTypeParam
	for _, p := range params {
		tp := jsonTypeParam{Name: p.Name}
		for _, b := range p.Bounds {
			tp.Bounds = append(tp.Bounds, buildType(b))
		}
		out = append(out, tp)
	}
	return out
}

func buildType(t model.TypeItem) jsonType {
	switch t := t.(type) {
	case *model.PrimitiveType:
		return jsonType{
			Kind:        "primitive",
			Name:        t.Kind.String(),
			Annotations: t.Anns,
		}
	case *model.ArrayType:
		component := buildType(t.Component)
		return jsonType{
			Kind:        "array",
			Nullability: nullabilityName(t.Null, model.NullabilityNonNull),
			Annotations: t.Anns,
			Component:   &component,
			Varargs:     t.Varargs,
		}
	case *model.LambdaType:
		j := jsonType{
			Kind:        "lambda",
			Nullability: nullabilityName(t.Null, model.NullabilityNonNull),
			Annotations: t.Anns,
			Suspend:     t.Suspend,
		}
		if t.Receiver != nil {
			r := buildType(t.Receiver)
			j.Receiver = &r
		}
		for _, p := range t.Params {
			j.Parameters = append(j.Parameters, buildType(p))
		}
		if t.Return != nil {
			r := buildType(t.Return)
			j.Return = &r
		}
		return j
	case *model.ClassType:
		j := jsonType{
			Kind:        "class",
			Name:        t.Qualified,
			Nullability: nullabilityName(t.Null, model.NullabilityNonNull),
			Annotations: t.Anns,
		}
		for _, a := range t.Arguments {
			j.Arguments = append(j.Arguments, buildType(a))
		}
		if t.Outer != nil {
			outer := buildType(t.Outer)
			j.Outer = &outer
		}
		return j
	case *model.VariableType:
		return jsonType{
			Kind:        "variable",
			Name:        t.Name,
			Nullability: nullabilityName(t.Null, model.NullabilityPlatform),
			Annotations: t.Anns,
		}
	case *model.WildcardType:
		j := jsonType{Kind: "wildcard", Annotations: t.Anns}
		if t.Extends != nil {
			b := buildType(t.Extends)
			j.Extends = &b
		}
		if t.Super != nil {
			b := buildType(t.Super)
			j.Super = &b
		}
		return j
	default:
		panic(fmt.Sprintf("format: unknown type %T", t))
	}
}

// nullabilityName renders a nullability, omitting the kind's default
// so documents stay compact.
func nullabilityName(n, dflt model.Nullability) string {
	if n == dflt {
		return ""
	}
	return n.String()
}

func modifierNames(m model.Modifiers) []string {
	var mods []string
	if m.Static {
		mods = append(mods, "static")
	}
	if m.Final {
		mods = append(mods, "final")
	}
	if m.Abstract {
		mods = append(mods, "abstract")
	}
	if m.Default {
		mods = append(mods, "default")
	}
	if m.Synchronized {
		mods = append(mods, "synchronized")
	}
	if m.Native {
		mods = append(mods, "native")
	}
	if m.Deprecated {
		mods = append(mods, "deprecated")
	}
	if m.OriginallyDeprecated {
		mods = append(mods, "originally-deprecated")
	}
	return mods
}
