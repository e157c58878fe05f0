package model

import "testing"

// Helpers shared by the model tests. Hierarchies are built the way an
// input producer would: object root first, then classes with resolved
// extends/implements references.

func newTestCodebase(t *testing.T, opts ...CodebaseOption) *Codebase {
	t.Helper()
	cb := NewCodebase("test", opts...)
	if _, err := cb.NewClass(ObjectClassName, ClassKindClass, OriginClassPath); err != nil {
		t.Fatalf("create object root: %v", err)
	}
	return cb
}

func mustClass(t *testing.T, cb *Codebase, name string, kind ClassKind) *ClassItem {
	t.Helper()
	cls, err := cb.NewClass(name, kind, OriginCommandLine)
	if err != nil {
		t.Fatalf("create class %s: %v", name, err)
	}
	if kind != ClassKindInterface && name != ObjectClassName {
		if err := cls.SetSuperClassType(NewObjectType()); err != nil {
			t.Fatalf("set super of %s: %v", name, err)
		}
	}
	return cls
}

func mustAddMethod(t *testing.T, cls *ClassItem, m *MethodItem) *MethodItem {
	t.Helper()
	if err := cls.AddMethod(m); err != nil {
		t.Fatalf("add method %s to %s: %v", m.Name(), cls.QualifiedName(), err)
	}
	return m
}

func typeParams(names ...string) []*TypeParameterItem {
	out := make([]*TypeParameterItem, len(names))
	for i, name := range names {
		out[i] = &TypeParameterItem{Name: name}
	}
	return out
}

func classType(qualified string, args ...TypeItem) *ClassType {
	return &ClassType{Qualified: qualified, Arguments: args}
}

func stringType() *ClassType {
	return &ClassType{Qualified: "java.lang.String"}
}

func intType() *PrimitiveType {
	return &PrimitiveType{Kind: PrimitiveInt}
}

func voidType() *PrimitiveType {
	return &PrimitiveType{Kind: PrimitiveVoid}
}

func publicMethod(name string, ret TypeItem) *MethodItem {
	return NewMethod(name, Modifiers{Visibility: VisibilityPublic}, ret)
}
