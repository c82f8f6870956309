package interp

import "github.com/mattholt/prefixlang/internal/value"

// labelKey is a comparable map key for a GOTOPOINT label, which spec.md
// §4.4 restricts to Int or Str values.
type labelKey struct {
	isStr bool
	i     int64
	s     string
}

func newLabelKey(v value.Value) (labelKey, bool) {
	switch v.Tag {
	case value.TagInt:
		return labelKey{i: v.I}, true
	case value.TagStr:
		return labelKey{isStr: true, s: v.S}, true
	}
	return labelKey{}, false
}
