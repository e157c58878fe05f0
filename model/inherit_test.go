package model

import "testing"

func TestAllInterfaces(t *testing.T) {
	cb := newTestCodebase(t)

	// Root <- Left, Right; Combined extends Left, Right (diamond).
	mustClass(t, cb, "test.pkg.Root", ClassKindInterface)
	left := mustClass(t, cb, "test.pkg.Left", ClassKindInterface)
	if err := left.SetInterfaceTypes(classType("test.pkg.Root")); err != nil {
		t.Fatal(err)
	}
	right := mustClass(t, cb, "test.pkg.Right", ClassKindInterface)
	if err := right.SetInterfaceTypes(classType("test.pkg.Root")); err != nil {
		t.Fatal(err)
	}
	combined := mustClass(t, cb, "test.pkg.Combined", ClassKindInterface)
	if err := combined.SetInterfaceTypes(classType("test.pkg.Left"), classType("test.pkg.Right")); err != nil {
		t.Fatal(err)
	}

	t.Run("interface includes itself, depth first, deduplicated", func(t *testing.T) {
		got := names(combined.AllInterfaces())
		want := []string{"test.pkg.Combined", "test.pkg.Left", "test.pkg.Root", "test.pkg.Right"}
		assertNames(t, got, want)
	})

	t.Run("class excludes itself", func(t *testing.T) {
		impl := mustClass(t, cb, "test.pkg.Impl", ClassKindClass)
		if err := impl.SetInterfaceTypes(classType("test.pkg.Combined")); err != nil {
			t.Fatal(err)
		}
		got := names(impl.AllInterfaces())
		want := []string{"test.pkg.Combined", "test.pkg.Left", "test.pkg.Root", "test.pkg.Right"}
		assertNames(t, got, want)
	})

	t.Run("class collects super class interfaces", func(t *testing.T) {
		base := mustClass(t, cb, "test.pkg.Base", ClassKindClass)
		if err := base.SetInterfaceTypes(classType("test.pkg.Right")); err != nil {
			t.Fatal(err)
		}
		derived := mustClass(t, cb, "test.pkg.Derived", ClassKindClass)
		if err := derived.SetSuperClassType(classType("test.pkg.Base")); err != nil {
			t.Fatal(err)
		}
		if err := derived.SetInterfaceTypes(classType("test.pkg.Left")); err != nil {
			t.Fatal(err)
		}
		got := names(derived.AllInterfaces())
		want := []string{"test.pkg.Left", "test.pkg.Root", "test.pkg.Right"}
		assertNames(t, got, want)
	})
}

func names(classes []*ClassItem) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.QualifiedName()
	}
	return out
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSuperMethodsInterfaceOrdering(t *testing.T) {
	cb := newTestCodebase(t)

	iface1 := mustClass(t, cb, "test.pkg.ParentInterface1", ClassKindInterface)
	foo1 := mustAddMethod(t, iface1, publicMethod("foo", voidType()))
	iface2 := mustClass(t, cb, "test.pkg.ParentInterface2", ClassKindInterface)
	foo2 := mustAddMethod(t, iface2, publicMethod("foo", voidType()))

	impl := mustClass(t, cb, "test.pkg.Foo", ClassKindClass)
	if err := impl.SetInterfaceTypes(classType("test.pkg.ParentInterface1"), classType("test.pkg.ParentInterface2")); err != nil {
		t.Fatal(err)
	}
	foo := mustAddMethod(t, impl, publicMethod("foo", voidType()))

	got := foo.SuperMethods()
	if len(got) != 2 || got[0] != foo1 || got[1] != foo2 {
		t.Fatalf("SuperMethods() = %v, want [ParentInterface1.foo ParentInterface2.foo]", got)
	}

	t.Run("reversed implements order reverses result", func(t *testing.T) {
		rev := mustClass(t, cb, "test.pkg.FooReversed", ClassKindClass)
		if err := rev.SetInterfaceTypes(classType("test.pkg.ParentInterface2"), classType("test.pkg.ParentInterface1")); err != nil {
			t.Fatal(err)
		}
		m := mustAddMethod(t, rev, publicMethod("foo", voidType()))
		got := m.SuperMethods()
		if len(got) != 2 || got[0] != foo2 || got[1] != foo1 {
			t.Fatalf("SuperMethods() = %v, want [ParentInterface2.foo ParentInterface1.foo]", got)
		}
	})
}

func TestSuperMethodsExclusions(t *testing.T) {
	cb := newTestCodebase(t)

	base := mustClass(t, cb, "test.pkg.Base", ClassKindClass)
	mustAddMethod(t, base, NewMethod("statique", Modifiers{Visibility: VisibilityPublic, Static: true}, voidType()))
	mustAddMethod(t, base, NewMethod("hidden", Modifiers{Visibility: VisibilityPrivate}, voidType()))
	visible := mustAddMethod(t, base, publicMethod("visible", voidType()))

	child := mustClass(t, cb, "test.pkg.Child", ClassKindClass)
	if err := child.SetSuperClassType(classType("test.pkg.Base")); err != nil {
		t.Fatal(err)
	}

	t.Run("static never counts", func(t *testing.T) {
		m := mustAddMethod(t, child, NewMethod("statique", Modifiers{Visibility: VisibilityPublic, Static: true}, voidType()))
		if got := m.SuperMethods(); len(got) != 0 {
			t.Errorf("SuperMethods() = %v, want empty", got)
		}
	})

	t.Run("private never counts", func(t *testing.T) {
		m := mustAddMethod(t, child, publicMethod("hidden", voidType()))
		if got := m.SuperMethods(); len(got) != 0 {
			t.Errorf("SuperMethods() = %v, want empty", got)
		}
	})

	t.Run("plain override counts", func(t *testing.T) {
		m := mustAddMethod(t, child, publicMethod("visible", voidType()))
		got := m.SuperMethods()
		if len(got) != 1 || got[0] != visible {
			t.Errorf("SuperMethods() = %v, want [Base.visible]", got)
		}
	})
}

func TestSuperMethodsSearchNotFlatScan(t *testing.T) {
	cb := newTestCodebase(t)

	grand := mustClass(t, cb, "test.pkg.Grand", ClassKindClass)
	grandFoo := mustAddMethod(t, grand, publicMethod("foo", voidType()))

	middle := mustClass(t, cb, "test.pkg.Middle", ClassKindClass)
	if err := middle.SetSuperClassType(classType("test.pkg.Grand")); err != nil {
		t.Fatal(err)
	}
	middleFoo := mustAddMethod(t, middle, publicMethod("foo", voidType()))

	leaf := mustClass(t, cb, "test.pkg.Leaf", ClassKindClass)
	if err := leaf.SetSuperClassType(classType("test.pkg.Middle")); err != nil {
		t.Fatal(err)
	}
	leafFoo := mustAddMethod(t, leaf, publicMethod("foo", voidType()))

	t.Run("nearest super class match stops the walk", func(t *testing.T) {
		got := leafFoo.SuperMethods()
		if len(got) != 1 || got[0] != middleFoo {
			t.Fatalf("SuperMethods() = %v, want [Middle.foo]", got)
		}
	})

	t.Run("walk continues past classes lacking the signature", func(t *testing.T) {
		bare := mustClass(t, cb, "test.pkg.Bare", ClassKindClass)
		if err := bare.SetSuperClassType(classType("test.pkg.Grand")); err != nil {
			t.Fatal(err)
		}
		hole := mustClass(t, cb, "test.pkg.Hole", ClassKindClass)
		if err := hole.SetSuperClassType(classType("test.pkg.Bare")); err != nil {
			t.Fatal(err)
		}
		m := mustAddMethod(t, hole, publicMethod("foo", voidType()))
		got := m.SuperMethods()
		if len(got) != 1 || got[0] != grandFoo {
			t.Fatalf("SuperMethods() = %v, want [Grand.foo]", got)
		}
	})

	t.Run("interface recursion only when the interface lacks it", func(t *testing.T) {
		superIface := mustClass(t, cb, "test.pkg.SuperIface", ClassKindInterface)
		superFoo := mustAddMethod(t, superIface, publicMethod("foo", voidType()))

		declaring := mustClass(t, cb, "test.pkg.Declaring", ClassKindInterface)
		if err := declaring.SetInterfaceTypes(classType("test.pkg.SuperIface")); err != nil {
			t.Fatal(err)
		}
		declFoo := mustAddMethod(t, declaring, publicMethod("foo", voidType()))

		silent := mustClass(t, cb, "test.pkg.Silent", ClassKindInterface)
		if err := silent.SetInterfaceTypes(classType("test.pkg.SuperIface")); err != nil {
			t.Fatal(err)
		}

		viaDeclaring := mustClass(t, cb, "test.pkg.ViaDeclaring", ClassKindClass)
		if err := viaDeclaring.SetInterfaceTypes(classType("test.pkg.Declaring")); err != nil {
			t.Fatal(err)
		}
		m := mustAddMethod(t, viaDeclaring, publicMethod("foo", voidType()))
		if got := m.SuperMethods(); len(got) != 1 || got[0] != declFoo {
			t.Fatalf("SuperMethods() = %v, want [Declaring.foo]", got)
		}

		viaSilent := mustClass(t, cb, "test.pkg.ViaSilent", ClassKindClass)
		if err := viaSilent.SetInterfaceTypes(classType("test.pkg.Silent")); err != nil {
			t.Fatal(err)
		}
		m = mustAddMethod(t, viaSilent, publicMethod("foo", voidType()))
		if got := m.SuperMethods(); len(got) != 1 || got[0] != superFoo {
			t.Fatalf("SuperMethods() = %v, want [SuperIface.foo]", got)
		}
	})

	t.Run("no ancestor declares it", func(t *testing.T) {
		lone := mustAddMethod(t, leaf, publicMethod("lonely", voidType()))
		if got := lone.SuperMethods(); len(got) != 0 {
			t.Errorf("SuperMethods() = %v, want empty", got)
		}
	})
}

func TestSuperMethodsParameterErasureMatching(t *testing.T) {
	cb := newTestCodebase(t)

	parent := mustClass(t, cb, "test.pkg.Parent", ClassKindClass)
	pp := typeParams("T")
	if err := parent.SetTypeParameters(pp...); err != nil {
		t.Fatal(err)
	}
	generic := publicMethod("accept", voidType())
	if err := generic.AddParameter("value", pp[0].Variable()); err != nil {
		t.Fatal(err)
	}
	mustAddMethod(t, parent, generic)

	child := mustClass(t, cb, "test.pkg.Child", ClassKindClass)
	if err := child.SetSuperClassType(classType("test.pkg.Parent", stringType())); err != nil {
		t.Fatal(err)
	}
	// The unbounded T erases to Object, so only an Object override
	// matches the erased signature.
	override := publicMethod("accept", voidType())
	if err := override.AddParameter("value", NewObjectType()); err != nil {
		t.Fatal(err)
	}
	mustAddMethod(t, child, override)

	if got := override.SuperMethods(); len(got) != 1 || got[0] != generic {
		t.Fatalf("SuperMethods() = %v, want the generic parent method", got)
	}

	mismatch := publicMethod("accept", voidType())
	if err := mismatch.AddParameter("value", stringType()); err != nil {
		t.Fatal(err)
	}
	mustAddMethod(t, child, mismatch)
	if got := mismatch.SuperMethods(); len(got) != 0 {
		t.Errorf("SuperMethods() = %v, want empty for non-matching erasure", got)
	}
}
