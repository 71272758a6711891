package ir

import "testing"

func TestInsertAndLookup(t *testing.T) {
	root := NewSymbolTable(nil)
	child := NewSymbolTable(root)

	outer := &Symbol{Kind: SymbolType, Name: "Fruit"}
	if err := root.Insert(outer); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := root.Insert(&Symbol{Kind: SymbolVariable, Name: "Fruit"}); err == nil {
		t.Error("redeclaring a name in the same scope should fail")
	}

	// Lookup walks outward through parents.
	if got, ok := child.Lookup("Fruit"); !ok || got != outer {
		t.Errorf("child.Lookup(Fruit) = %v, %v", got, ok)
	}
	if _, ok := child.LookupLocal("Fruit"); ok {
		t.Error("LookupLocal must not consult parent scopes")
	}

	// Shadowing in an inner scope is allowed.
	inner := &Symbol{Kind: SymbolVariable, Name: "Fruit"}
	if err := child.Insert(inner); err != nil {
		t.Fatalf("shadowing insert: %v", err)
	}
	if got, _ := child.Lookup("Fruit"); got != inner {
		t.Error("inner declaration should shadow the outer one")
	}
	if got, _ := root.Lookup("Fruit"); got != outer {
		t.Error("outer scope must be unaffected by shadowing")
	}
}

func TestAliases(t *testing.T) {
	st := NewSymbolTable(nil)
	target := &Symbol{Kind: SymbolType, Name: "float4"}
	if err := st.Insert(target); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := st.AddAlias("vec4", target); err != nil {
		t.Fatalf("AddAlias: %v", err)
	}

	// Lookup follows the alias to its target.
	if got, ok := st.Lookup("vec4"); !ok || got != target {
		t.Errorf("Lookup(vec4) = %v, %v, want target symbol", got, ok)
	}
	// LookupLocal surfaces the alias itself.
	alias, ok := st.LookupLocal("vec4")
	if !ok || alias.Kind != SymbolAlias {
		t.Fatalf("LookupLocal(vec4) = %v, %v", alias, ok)
	}
	if alias.Resolve() != target {
		t.Error("Resolve should follow the alias chain")
	}
}

func TestReferenceCounting(t *testing.T) {
	st := NewSymbolTable(nil)
	if st.Refs() != 1 || !st.Live() {
		t.Fatalf("fresh table: refs=%d live=%v", st.Refs(), st.Live())
	}

	st.Retain()
	if st.Refs() != 2 {
		t.Errorf("after Retain: refs=%d, want 2", st.Refs())
	}

	st.Release()
	st.Release()
	if st.Live() {
		t.Error("table should be dead after final Release")
	}

	mustPanic(t, "Release after free", func() { st.Release() })
	mustPanic(t, "Retain after free", func() { st.Retain() })
	mustPanic(t, "Insert after free", func() { _ = st.Insert(&Symbol{Name: "x"}) })
	mustPanic(t, "Lookup after free", func() { st.Lookup("x") })
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
