package extension

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Event is a JSON-backed payload delivered to periodic hooks and event
// handlers (spec.md §4.5, §6). Using a JSON document rather than a
// bespoke Go struct per event name means new host-fired events never
// require a breaking ABI change for registered extensions: a handler
// reads only the fields it knows about via gjson and ignores the rest.
type Event struct {
	Name string
	raw  string
}

// NewEvent starts building an event payload with the given name and no
// fields set.
func NewEvent(name string) Event {
	return Event{Name: name, raw: "{}"}
}

// With returns a copy of e with path set to value, built with sjson so
// callers never hand-assemble JSON text.
func (e Event) With(path string, val any) Event {
	out, err := sjson.Set(e.raw, path, val)
	if err != nil {
		// sjson only fails on malformed paths, which is a programmer
		// error in the host; leave the payload unchanged rather than
		// panic mid-dispatch.
		return e
	}
	e.raw = out
	return e
}

// Get reads a field from the event payload by gjson path.
func (e Event) Get(path string) gjson.Result {
	return gjson.Get(e.raw, path)
}

// Raw returns the underlying JSON document, for handlers that want to
// unmarshal it wholesale.
func (e Event) Raw() string { return e.raw }
