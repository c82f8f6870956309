package value

import "fmt"

// Binding is a (name, declared type, cell) triple within a scope. The
// cell is either uninitialized or holds a value whose runtime tag
// matches Type (spec.md §3 invariant).
type Binding struct {
	Name        string
	Type        DeclType
	Value       Value
	Initialized bool
}

// Environment is a mapping from name to Binding plus an optional parent,
// adapted from the teacher's scope-chain Environment (store + outer) and
// generalized with the declare/assign/get contract of spec.md §4.1.
//
// Unlike the teacher, prefixlang identifiers are case-sensitive: spec.md
// never mentions case folding for identifiers, only for string case
// operators (§9).
type Environment struct {
	store map[string]*Binding
	outer *Environment
	// isolateWrites, when true, keeps first-typed-assignment declarations
	// local to this scope even when no prior Decl exists, instead of the
	// default policy of walking to the outermost environment. See
	// spec.md §9 ("redirection of declarations to parent scope") and
	// SPEC_FULL.md §12; set per-environment by workers that need scope
	// isolation (e.g. a parallel FOR body), never as a single global
	// flag.
	isolateWrites bool
}

// NewEnvironment creates a root-level environment with no parent scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]*Binding)}
}

// NewEnclosedEnvironment creates a child scope of outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]*Binding), outer: outer, isolateWrites: outer.isolateWrites}
}

// SetIsolateWrites configures the declaration-redirection policy for this
// environment and any children later created from it.
func (e *Environment) SetIsolateWrites(isolate bool) { e.isolateWrites = isolate }

// outermost walks to the root ancestor, used when isolateWrites is false
// and a typed first-assignment must be redirected globally.
func (e *Environment) outermost() *Environment {
	cur := e
	for cur.outer != nil {
		cur = cur.outer
	}
	return cur
}

// Define creates an uninitialized binding of Type in the current scope.
// Redefinition in the same scope is allowed and resets the binding
// (spec.md §4.1).
func (e *Environment) Define(name string, dt DeclType) {
	e.store[name] = &Binding{Name: name, Type: dt}
}

// lookupBinding walks parents looking for an existing binding named
// name, returning nil if none exists in the scope chain.
func (e *Environment) lookupBinding(name string) *Binding {
	for cur := e; cur != nil; cur = cur.outer {
		if b, ok := cur.store[name]; ok {
			return b
		}
	}
	return nil
}

// Assign implements spec.md §4.1 assign(name, value, type_hint,
// is_declaration):
//
//   - if isDeclaration, the runtime tag of v must equal typeHint; the
//     binding is created (or reset) in the current scope, unless
//     isolateWrites is false, in which case it is redirected to the
//     outermost environment.
//   - otherwise, the nearest enclosing binding named name must exist and
//     its declared type must match v's runtime tag.
func (e *Environment) Assign(name string, v Value, typeHint DeclType, isDeclaration bool) error {
	if isDeclaration {
		wantTag, ok := TagOf(typeHint)
		if !ok || v.Tag != wantTag {
			return fmt.Errorf("cannot assign %s to %s-typed variable %q", v.TypeName(), typeHint, name)
		}
		target := e
		if !e.isolateWrites {
			target = e.outermost()
		}
		target.store[name] = &Binding{Name: name, Type: typeHint, Value: v, Initialized: true}
		return nil
	}

	b := e.lookupBinding(name)
	if b == nil {
		return fmt.Errorf("undefined variable %q", name)
	}
	wantTag, ok := TagOf(b.Type)
	if !ok || v.Tag != wantTag {
		return fmt.Errorf("cannot assign %s to %s-typed variable %q", v.TypeName(), b.Type, name)
	}
	b.Value = v
	b.Initialized = true
	return nil
}

// DefineLocal creates an initialized binding of typeHint directly in
// this scope, bypassing the isolateWrites redirection policy. It is for
// interpreter-internal binding plumbing — function parameters, a TRY's
// caught-message name, a FOR loop's counter — which must always land in
// the scope that owns them regardless of where user declaring-
// assignments (TYPE x = v) get redirected (spec.md §9's redirection
// policy governs only those). It reports an error if v's runtime tag
// does not match typeHint.
func (e *Environment) DefineLocal(name string, v Value, typeHint DeclType) error {
	wantTag, ok := TagOf(typeHint)
	if !ok || v.Tag != wantTag {
		return fmt.Errorf("cannot assign %s to %s-typed variable %q", v.TypeName(), typeHint, name)
	}
	e.store[name] = &Binding{Name: name, Type: typeHint, Value: v, Initialized: true}
	return nil
}

// Get returns the nearest enclosing binding's value, declared type, and
// initialization state, or found=false if no such binding exists.
func (e *Environment) Get(name string) (v Value, dt DeclType, initialized bool, found bool) {
	b := e.lookupBinding(name)
	if b == nil {
		return Value{}, Unknown, false, false
	}
	return b.Value, b.Type, b.Initialized, true
}

// Delete removes the nearest enclosing binding named name.
func (e *Environment) Delete(name string) {
	for cur := e; cur != nil; cur = cur.outer {
		if _, ok := cur.store[name]; ok {
			delete(cur.store, name)
			return
		}
	}
}

// Exists reports whether name is bound anywhere in the scope chain.
func (e *Environment) Exists(name string) bool {
	return e.lookupBinding(name) != nil
}

// Outer returns the parent environment, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// LocalBinding returns a copy of the binding named name if it exists
// directly in this scope (not a parent), or nil otherwise. Used by FOR
// to save a shadowed counter binding before the loop and restore it
// afterward (spec.md §4.4).
func (e *Environment) LocalBinding(name string) *Binding {
	b, ok := e.store[name]
	if !ok {
		return nil
	}
	cp := *b
	return &cp
}

// SetLocalBinding installs b directly in this scope, or removes any
// local binding named name if b is nil.
func (e *Environment) SetLocalBinding(name string, b *Binding) {
	if b == nil {
		delete(e.store, name)
		return
	}
	cp := *b
	e.store[name] = &cp
}
