package value

import (
	"fmt"
	"strings"
)

// NotFound reports that an Object has no child with the requested name.
type NotFound struct {
	Name string
	In   Val
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("no value named %q in: %s", e.Name, e.In)
}

// DissectError reports that navigation descended into a Payload whose
// embedded outcome is a dissection failure.
type DissectError struct {
	Name string
	Err  error
}

func (e *DissectError) Error() string {
	return fmt.Sprintf("payload under %q carries error: %s", e.Name, e.Err)
}

// LeafVariant reports an attempt to descend into a node that has no
// children.
type LeafVariant struct {
	Val Val
}

func (e *LeafVariant) Error() string {
	return fmt.Sprintf("cannot descend into leaf node: %s", e.Val)
}

// Get returns the first child of v named name. A Payload wrapping a
// successful outcome is descended into transparently; a Payload wrapping a
// failure yields a DissectError. Any other variant yields a LeafVariant.
func Get(v Val, name string) (Val, error) {
	switch n := v.(type) {
	case Object:
		for _, nv := range n {
			if nv.Name == name {
				return nv.Val, nil
			}
		}
		return nil, &NotFound{Name: name, In: v}

	case Payload:
		if n.Err != nil {
			return nil, &DissectError{Name: name, Err: n.Err}
		}
		return Get(n.Val, name)

	default:
		return nil, &LeafVariant{Val: v}
	}
}

// GetPath applies Get across names in order, short-circuiting on the first
// error.
func GetPath(v Val, names ...string) (Val, error) {
	var err error
	for _, name := range names {
		v, err = Get(v, name)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Lookup is the loose form of GetPath: path is a dot-separated name list
// and every failure collapses to ok == false.
func Lookup(v Val, path string) (Val, bool) {
	v, err := GetPath(v, strings.Split(path, ".")...)
	if err != nil {
		return nil, false
	}
	return v, true
}
