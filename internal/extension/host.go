// Package extension implements the plugin registration ABI of spec.md
// §4.5/§6: native modules register new operators, periodic hooks, and
// event handlers through a RegistrationContext, and report errors
// through the same protocol builtins use.
package extension

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

// APIVersion is the registration ABI version this host implements.
// SPEC_FULL.md §11 / spec.md §9 design notes: an incompatible extension
// must be refused by the loader rather than linked against a stale ABI.
const APIVersion = 1

// Host is the narrow capability surface the interpreter exposes to
// extension-registered callbacks, so that this package never imports
// internal/interp (which imports this package to consult the operator
// table) and therefore can't form an import cycle.
type Host interface {
	// CallFunction invokes a prefixlang function value from Go,
	// supporting callback-style extension operators (e.g. a registered
	// FOREACH that invokes a function-typed argument per element).
	CallFunction(fn *value.Function, args []value.Value) (value.Value, *ierrors.Error)
	// InstructionCount returns the number of instructions executed so far
	// (statements plus builtin and extension operator calls),
	// consulted by the periodic-hook dispatcher.
	InstructionCount() int64
	// IsMainModule reports whether the running program is the primary
	// module rather than one reached through IMPORT (SPEC_FULL.md §12).
	IsMainModule() bool
}

// OperatorFunc is the calling convention of spec.md §6: an operator
// receives the host, evaluated argument values, their original AST
// nodes, the environment at the call site, and the call's source
// position. It reports failure by returning a non-nil *ierrors.Error
// instead of panicking, matching the error-slot protocol builtins use.
type OperatorFunc func(host Host, args []value.Value, argNodes []ast.Expr, env *value.Environment, line, col int) (value.Value, *ierrors.Error)

// HookFunc is invoked by a periodic hook or an event handler.
type HookFunc func(host Host, ev Event)

// REPLFunc is an alternate REPL driver installed via
// register_repl_handler.
type REPLFunc func(host Host)

type operatorEntry struct {
	fn       OperatorFunc
	owner    string
	asModule bool
}

type periodicHook struct {
	everyN int64
	fn     HookFunc
}

// Table is the host-owned registry of everything extensions install: the
// operator table, periodic hooks, event handlers, and an optional REPL
// driver. The evaluator consults Table after builtins and before
// user-defined functions (spec.md §4.3 rule 2).
type Table struct {
	operators     map[string]operatorEntry
	hooks         []periodicHook
	eventHandlers map[string][]HookFunc
	replHandler   REPLFunc
}

// NewTable creates an empty registration table.
func NewTable() *Table {
	return &Table{
		operators:     make(map[string]operatorEntry),
		eventHandlers: make(map[string][]HookFunc),
	}
}

// Lookup returns the operator registered under name, if any.
func (t *Table) Lookup(name string) (OperatorFunc, bool) {
	e, ok := t.operators[name]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// FirePeriodic invokes every periodic hook whose interval divides n.
func (t *Table) FirePeriodic(host Host, n int64) {
	for _, h := range t.hooks {
		if h.everyN > 0 && n%h.everyN == 0 {
			h.fn(host, NewEvent("periodic").With("instruction_count", n))
		}
	}
}

// FireEvent invokes every handler registered for eventName.
func (t *Table) FireEvent(host Host, ev Event) {
	for _, h := range t.eventHandlers[ev.Name] {
		h(host, ev)
	}
}

// REPLHandler returns the last-registered alternate REPL driver, if any.
func (t *Table) REPLHandler() (REPLFunc, bool) {
	if t.replHandler == nil {
		return nil, false
	}
	return t.replHandler, true
}

// RegistrationContext is the value passed to an extension's entry point
// (spec.md §6). It pledges the API version the extension must match and
// exposes the four registration functions.
type RegistrationContext struct {
	APIVersion    int
	ExtensionName string
	table         *Table
}

// NewRegistrationContext creates a context for an extension named name,
// bound to table.
func NewRegistrationContext(name string, table *Table) *RegistrationContext {
	return &RegistrationContext{APIVersion: APIVersion, ExtensionName: name, table: table}
}

// RegisterOperator binds name to fn. When asModule is true the operator
// is tagged as module-local rather than global, for hosts that support
// qualified lookup; this reference host keeps a single flat namespace
// but still records ownership so a future qualified lookup can be added
// without changing the ABI.
func (c *RegistrationContext) RegisterOperator(name string, fn OperatorFunc, asModule bool) {
	c.table.operators[name] = operatorEntry{fn: fn, owner: c.ExtensionName, asModule: asModule}
}

// RegisterPeriodicHook requests fn(host, event) every n executed
// instructions (statements plus builtin and extension operator calls).
func (c *RegistrationContext) RegisterPeriodicHook(n int64, fn HookFunc) {
	c.table.hooks = append(c.table.hooks, periodicHook{everyN: n, fn: fn})
}

// RegisterEventHandler invokes fn when eventName fires.
func (c *RegistrationContext) RegisterEventHandler(eventName string, fn HookFunc) {
	c.table.eventHandlers[eventName] = append(c.table.eventHandlers[eventName], fn)
}

// RegisterREPLHandler installs fn as the alternate REPL driver.
func (c *RegistrationContext) RegisterREPLHandler(fn REPLFunc) {
	c.table.replHandler = fn
}

// Entry is the dynamic-library entry point signature every extension
// must export (spec.md §6): it receives a pointer to the registration
// context and performs its registrations synchronously.
type Entry func(ctx *RegistrationContext)

// Load refuses to run an extension compiled against an incompatible API
// version, per the ABI-stability design note in spec.md §9.
func Load(name string, wantVersion int, entry Entry, table *Table) bool {
	if wantVersion != APIVersion {
		return false
	}
	ctx := NewRegistrationContext(name, table)
	entry(ctx)
	return true
}
