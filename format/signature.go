package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tliron/commonlog"

	"github.com/msft-mirror-aosp/platform.tools.metalava-sub008/model"
)

var log = commonlog.GetLogger("apimodel.format")

// typeStringCacheSize bounds the per-writer cache of rendered type
// strings. API surfaces reuse the same type objects heavily, so even
// a small cache absorbs most of the rendering work.
const typeStringCacheSize = 4096

// SignatureWriter renders the emitted packages of a codebase as a
// signature text file. Output is deterministic: packages, classes and
// members are sorted, so identical models produce identical bytes.
type SignatureWriter struct {
	w     io.Writer
	opts  []model.TypeStringOption
	style model.TypeStringOptions
	cache *lru.Cache[model.TypeItem, string]
}

func NewSignatureWriter(w io.Writer, opts ...model.TypeStringOption) (*SignatureWriter, error) {
	cache, err := lru.New[model.TypeItem, string](typeStringCacheSize)
	if err != nil {
		return nil, err
	}
	var style model.TypeStringOptions
	for _, opt := range opts {
		opt(&style)
	}
	return &SignatureWriter{w: w, opts: opts, style: style, cache: cache}, nil
}

func (sw *SignatureWriter) Write(cb *model.Codebase) error {
	var sb strings.Builder
	sb.WriteString("// Signature format: ")
	if sw.style.KotlinStyleNulls {
		sb.WriteString("3.0\n")
	} else {
		sb.WriteString("2.0\n")
	}

	packages := append([]*model.Package(nil), cb.Packages()...)
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Name() < packages[j].Name()
	})

	classCount := 0
	packageCount := 0
	for _, pkg := range packages {
		if !pkg.Emit() || len(pkg.Classes()) == 0 {
			continue
		}
		packageCount++
		fmt.Fprintf(&sb, "package %s {\n", pkg.Name())

		classes := append([]*model.ClassItem(nil), pkg.Classes()...)
		sort.Slice(classes, func(i, j int) bool {
			return classes[i].QualifiedName() < classes[j].QualifiedName()
		})
		for _, cls := range classes {
			sb.WriteString("\n")
			sw.writeClass(&sb, cls)
			classCount++
		}
		sb.WriteString("\n}\n\n")
	}

	if _, err := io.WriteString(sw.w, sb.String()); err != nil {
		return err
	}
	log.Infof("wrote signatures for %d classes in %d packages", classCount, packageCount)
	return nil
}

func (sw *SignatureWriter) writeClass(sb *strings.Builder, cls *model.ClassItem) {
	sb.WriteString("  ")
	sb.WriteString(declModifiers(cls.Modifiers()))
	switch cls.Kind() {
	case model.ClassKindAnnotation:
		sb.WriteString("@interface ")
	default:
		sb.WriteString(string(cls.Kind()))
		sb.WriteString(" ")
	}
	sb.WriteString(cls.SimpleName())
	sb.WriteString(sw.typeParamsString(cls.TypeParameters()))

	if st := cls.SuperClassType(); st != nil && !st.IsObject() && !cls.IsEnum() {
		sb.WriteString(" extends ")
		sb.WriteString(sw.typeString(st))
	}
	if ifaces := cls.InterfaceTypes(); len(ifaces) > 0 {
		if cls.IsInterface() || cls.IsAnnotation() {
			sb.WriteString(" extends ")
		} else {
			sb.WriteString(" implements ")
		}
		for i, it := range ifaces {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(sw.typeString(it))
		}
	}
	sb.WriteString(" {\n")

	for _, m := range sortedMethods(cls.Constructors()) {
		sw.writeMethod(sb, "ctor", m)
	}
	for _, m := range sortedMethods(cls.Methods()) {
		sw.writeMethod(sb, "method", m)
	}
	for _, f := range sortedFields(cls.Fields()) {
		sw.writeField(sb, f)
	}
	for _, p := range sortedProperties(cls.Properties()) {
		sw.writeProperty(sb, p)
	}
	sb.WriteString("  }\n")
}

func (sw *SignatureWriter) writeMethod(sb *strings.Builder, kind string, m *model.MethodItem) {
	sb.WriteString("    ")
	sb.WriteString(kind)
	sb.WriteString(" ")
	sb.WriteString(declModifiers(m.Modifiers()))
	if tp := sw.typeParamsString(m.TypeParameters()); tp != "" {
		sb.WriteString(tp)
		sb.WriteString(" ")
	}
	if !m.IsConstructor() {
		sb.WriteString(sw.typeString(m.ReturnType()))
		sb.WriteString(" ")
	}
	sb.WriteString(m.Name())
	sb.WriteString("(")
	for i, p := range m.Parameters() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sw.typeString(p.Type()))
	}
	sb.WriteString(")")
	if throws := m.Throws(); len(throws) > 0 {
		sb.WriteString(" throws ")
		for i, t := range throws {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(sw.typeString(t))
		}
	}
	sb.WriteString(";\n")
}

func (sw *SignatureWriter) writeField(sb *strings.Builder, f *model.FieldItem) {
	sb.WriteString("    field ")
	sb.WriteString(declModifiers(f.Modifiers()))
	sb.WriteString(sw.typeString(f.Type()))
	sb.WriteString(" ")
	sb.WriteString(f.Name())
	if f.ConstantValue() != nil {
		sb.WriteString(" = ")
		sb.WriteString(f.LegacyValueString())
	}
	sb.WriteString(";\n")
}

func (sw *SignatureWriter) writeProperty(sb *strings.Builder, p *model.PropertyItem) {
	sb.WriteString("    property ")
	sb.WriteString(declModifiers(p.Modifiers()))
	sb.WriteString(sw.typeString(p.Type()))
	sb.WriteString(" ")
	sb.WriteString(p.Name())
	sb.WriteString(";\n")
}

// typeParamsString renders "<T, U extends Bound>" or "" when there
// are no parameters. Implicit Object bounds are omitted.
func (sw *SignatureWriter) typeParamsString(params []*model.TypeParameterItem) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<")
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		var bounds []string
		for _, b := range p.Bounds {
			if ct, ok := b.(*model.ClassType); ok && ct.IsObject() && !ct.HasTypeArguments() {
				continue
			}
			bounds = append(bounds, sw.typeString(b))
		}
		if len(bounds) > 0 {
			sb.WriteString(" extends ")
			sb.WriteString(strings.Join(bounds, " & "))
		}
	}
	sb.WriteString(">")
	return sb.String()
}

func (sw *SignatureWriter) typeString(t model.TypeItem) string {
	if s, ok := sw.cache.Get(t); ok {
		return s
	}
	s := model.TypeString(t, sw.opts...)
	sw.cache.Add(t, s)
	return s
}

func declModifiers(m model.Modifiers) string {
	var sb strings.Builder
	if m.Visibility != "" && m.Visibility != model.VisibilityPackage {
		sb.WriteString(string(m.Visibility))
		sb.WriteString(" ")
	}
	for _, mod := range modifierNames(m) {
		if mod == "originally-deprecated" {
			continue
		}
		sb.WriteString(mod)
		sb.WriteString(" ")
	}
	return sb.String()
}

func sortedMethods(in []*model.MethodItem) []*model.MethodItem {
	out := append([]*model.MethodItem(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ErasedSignature() < out[j].ErasedSignature()
	})
	return out
}

func sortedFields(in []*model.FieldItem) []*model.FieldItem {
	out := append([]*model.FieldItem(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func sortedProperties(in []*model.PropertyItem) []*model.PropertyItem {
	out := append([]*model.PropertyItem(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
