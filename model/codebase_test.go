package model

import (
	"errors"
	"testing"
)

func TestCodebaseIdentity(t *testing.T) {
	cb := newTestCodebase(t)
	cls := mustClass(t, cb, "test.pkg.Foo", ClassKindClass)

	t.Run("one instance per qualified name", func(t *testing.T) {
		if got := cb.FindClass("test.pkg.Foo"); got != cls {
			t.Errorf("FindClass() = %v, want the registered instance", got)
		}
		_, err := cb.NewClass("test.pkg.Foo", ClassKindClass, OriginCommandLine)
		if !errors.Is(err, ErrDuplicateClass) {
			t.Errorf("duplicate registration error = %v, want ErrDuplicateClass", err)
		}
	})

	t.Run("absence is nil, not an error", func(t *testing.T) {
		if got := cb.FindClass("test.pkg.Missing"); got != nil {
			t.Errorf("FindClass(missing) = %v, want nil", got)
		}
	})

	t.Run("object root has no super class type", func(t *testing.T) {
		obj := cb.FindClass(ObjectClassName)
		if obj.SuperClassType() != nil {
			t.Errorf("Object.SuperClassType() = %v, want nil", obj.SuperClassType())
		}
		if obj.SuperClass() != nil {
			t.Errorf("Object.SuperClass() = %v, want nil", obj.SuperClass())
		}
	})

	t.Run("self extension rejected", func(t *testing.T) {
		if err := cls.SetSuperClassType(classType("test.pkg.Foo")); err == nil {
			t.Error("expected an error for a self-referential super class")
		}
	})
}

func TestErasedClassResolution(t *testing.T) {
	cb := newTestCodebase(t)
	number := mustClass(t, cb, "test.pkg.Number", ClassKindClass)
	list := mustClass(t, cb, "test.pkg.List", ClassKindInterface)

	cases := []struct {
		name string
		typ  TypeItem
		want *ClassItem
	}{
		{"class", classType("test.pkg.Number"), number},
		{"parameterized drops arguments", classType("test.pkg.List", stringType()), list},
		{"array resolves component", &ArrayType{Component: classType("test.pkg.Number")}, number},
		{"variable via bound", NewVariableType(&TypeParameterItem{
			Name: "T", Bounds: []TypeItem{classType("test.pkg.Number")},
		}), number},
		{"wildcard via extends bound", NewExtendsWildcard(classType("test.pkg.Number")), number},
		{"unresolved is nil", classType("test.pkg.Gone"), nil},
		{"primitive is nil", intType(), nil},
		{"unbounded variable is object", NewVariableType(&TypeParameterItem{Name: "T"}), cb.FindClass(ObjectClassName)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cb.ErasedClass(tc.typ); got != tc.want {
				t.Errorf("ErasedClass() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUnresolvedThrowsDegradesGracefully(t *testing.T) {
	cb := newTestCodebase(t)
	cls := mustClass(t, cb, "test.pkg.Svc", ClassKindClass)
	m := publicMethod("call", voidType())
	if err := m.AddThrows(classType("test.pkg.KnownException")); err != nil {
		t.Fatal(err)
	}
	if err := m.AddThrows(classType("test.pkg.UnknownException")); err != nil {
		t.Fatal(err)
	}
	mustAddMethod(t, cls, m)
	known := mustClass(t, cb, "test.pkg.KnownException", ClassKindClass)

	got := m.ThrownClasses()
	if len(got) != 1 || got[0] != known {
		t.Errorf("ThrownClasses() = %v, want just the resolvable one", got)
	}
	if len(m.Throws()) != 2 {
		t.Errorf("Throws() = %v, want both declared entries kept", m.Throws())
	}
}

func TestPackageEmitFilter(t *testing.T) {
	filter, err := NewPackageFilter("android.util*", "android.view")
	if err != nil {
		t.Fatalf("NewPackageFilter: %v", err)
	}
	cb := NewCodebase("filtered", WithPackageFilter(filter))

	mustClass(t, cb, "android.util.Log", ClassKindClass)
	mustClass(t, cb, "android.view.View", ClassKindClass)
	mustClass(t, cb, "com.example.Hidden", ClassKindClass)

	cases := []struct {
		pkg  string
		emit bool
	}{
		{"android.util", true},
		{"android.view", true},
		{"com.example", false},
	}
	for _, tc := range cases {
		t.Run(tc.pkg, func(t *testing.T) {
			pkg := cb.FindOrCreatePackage(tc.pkg)
			if pkg.Emit() != tc.emit {
				t.Errorf("Emit() = %v, want %v", pkg.Emit(), tc.emit)
			}
		})
	}
}

func TestClasspathPackagesDoNotEmit(t *testing.T) {
	cb := NewCodebase("mixed")
	if _, err := cb.NewClass("java.lang.Object", ClassKindClass, OriginClassPath); err != nil {
		t.Fatal(err)
	}
	if _, err := cb.NewClass("test.pkg.Api", ClassKindClass, OriginCommandLine); err != nil {
		t.Fatal(err)
	}

	if cb.FindOrCreatePackage("java.lang").Emit() {
		t.Error("classpath package should not emit")
	}
	if !cb.FindOrCreatePackage("test.pkg").Emit() {
		t.Error("primary input package should emit")
	}
}

func TestMixedOriginPackageEmitsRegardlessOfOrder(t *testing.T) {
	t.Run("classpath class after command-line class", func(t *testing.T) {
		cb := NewCodebase("mixed")
		if _, err := cb.NewClass("android.util.Log", ClassKindClass, OriginCommandLine); err != nil {
			t.Fatal(err)
		}
		if _, err := cb.NewClass("android.util.Internal", ClassKindClass, OriginClassPath); err != nil {
			t.Fatal(err)
		}
		if !cb.FindOrCreatePackage("android.util").Emit() {
			t.Error("classpath class registration must not clear the emit flag of an API package")
		}
	})

	t.Run("command-line class after classpath class", func(t *testing.T) {
		cb := NewCodebase("mixed")
		if _, err := cb.NewClass("android.util.Internal", ClassKindClass, OriginClassPath); err != nil {
			t.Fatal(err)
		}
		if _, err := cb.NewClass("android.util.Log", ClassKindClass, OriginCommandLine); err != nil {
			t.Fatal(err)
		}
		if !cb.FindOrCreatePackage("android.util").Emit() {
			t.Error("a command-line class should make its package emit")
		}
	})

	t.Run("classpath-only package stays hidden", func(t *testing.T) {
		cb := NewCodebase("mixed")
		if _, err := cb.NewClass("java.lang.Object", ClassKindClass, OriginClassPath); err != nil {
			t.Fatal(err)
		}
		if _, err := cb.NewClass("java.lang.String", ClassKindClass, OriginClassPath); err != nil {
			t.Fatal(err)
		}
		if cb.FindOrCreatePackage("java.lang").Emit() {
			t.Error("classpath-only package should not emit")
		}
	})
}

func TestSplitQualifiedName(t *testing.T) {
	cases := []struct {
		in, pkg, simple string
	}{
		{"test.pkg.Foo", "test.pkg", "Foo"},
		{"test.pkg.Outer.Inner", "test.pkg", "Outer.Inner"},
		{"Foo", "", "Foo"},
		{"java.lang.Object", "java.lang", "Object"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			pkg, simple := splitQualifiedName(tc.in)
			if pkg != tc.pkg || simple != tc.simple {
				t.Errorf("splitQualifiedName(%q) = (%q, %q), want (%q, %q)",
					tc.in, pkg, simple, tc.pkg, tc.simple)
			}
		})
	}
}

// Round trip: a generic class with a field typed by its own parameter
// keeps the back reference through construction and renders as the
// bare variable name.
func TestGenericFieldRoundTrip(t *testing.T) {
	cb := newTestCodebase(t)
	foo := mustClass(t, cb, "test.pkg.Foo", ClassKindClass)
	params := typeParams("T")
	if err := foo.SetTypeParameters(params...); err != nil {
		t.Fatal(err)
	}
	field := NewField("foo", Modifiers{Visibility: VisibilityPublic}, params[0].Variable())
	if err := foo.AddField(field); err != nil {
		t.Fatal(err)
	}

	got := foo.FindField("foo")
	if got == nil {
		t.Fatal("FindField(foo) = nil")
	}
	v, ok := got.Type().(*VariableType)
	if !ok {
		t.Fatalf("field type = %T, want *VariableType", got.Type())
	}
	if v.Parameter != params[0] {
		t.Error("variable should reference Foo's declared type parameter")
	}
	if s := TypeString(got.Type()); s != "T" {
		t.Errorf("TypeString() = %q, want %q", s, "T")
	}
}

func TestClassSelfType(t *testing.T) {
	cb := newTestCodebase(t)
	foo := mustClass(t, cb, "test.pkg.Foo", ClassKindClass)
	if err := foo.SetTypeParameters(typeParams("K", "V")...); err != nil {
		t.Fatal(err)
	}
	if got := TypeString(foo.Type()); got != "test.pkg.Foo<K,V>" {
		t.Errorf("Type() = %q, want test.pkg.Foo<K,V>", got)
	}
}
