// Package value defines the structured result tree produced by packet
// dissection.
//
// A tree is built bottom-up by a dissector and is read-only afterwards.
// Trees are zero-copy: Address and Bytes nodes alias the buffer that was
// dissected, so the buffer must outlive any tree built from it.
package value

import (
	"bytes"
	"fmt"
)

// Val is one node of a dissection result tree.
type Val interface {
	// String renders the node in its inline form.
	String() string

	isVal()
}

// NamedVal is one (name, node) pair of an Object.
type NamedVal struct {
	Name string
	Val  Val
}

// Signed is a signed integer, widened to 64 bits.
type Signed int64

// Unsigned is an unsigned integer, widened to 64 bits.
type Unsigned uint64

// Text is an owned string value.
type Text string

// Symbol is a fixed protocol-name label. It is display-equivalent to Text.
type Symbol string

// Address is a network address: the raw address bytes together with their
// human-readable encoding, so renderers never re-derive the encoding.
type Address struct {
	Bytes   []byte
	Encoded string
}

// Flags is a single byte of bit flags with up to eight bit names.
// Names[0] names the most significant bit, Names[7] the least.
// An empty name leaves that bit anonymous.
type Flags struct {
	Raw   byte
	Names [8]string
}

// Object is an ordered sequence of (name, node) pairs. Insertion order is
// significant and names are not required to be unique; lookup resolves to
// the first match.
type Object []NamedVal

// Bytes is an opaque byte sequence, e.g. a checksum or an unparsed tail.
type Bytes []byte

// Payload embeds the full outcome of dissecting a nested layer. A non-nil
// Err marks a failed outcome; the failure stays local to this node and is
// only observable through navigation.
type Payload struct {
	Val Val
	Err error
}

func (Signed) isVal()   {}
func (Unsigned) isVal() {}
func (Text) isVal()     {}
func (Symbol) isVal()   {}
func (Address) isVal()  {}
func (Flags) isVal()    {}
func (Object) isVal()   {}
func (Bytes) isVal()    {}
func (Payload) isVal()  {}

// Bit reports whether flag bit i is set. Index 0 is the most significant
// bit, matching the order of Names. An index outside 0..7 is programmer
// misuse and panics.
func (f Flags) Bit(i int) bool {
	if i < 0 || i > 7 {
		panic(fmt.Sprintf("value: flag bit index %d out of range [0, 8)", i))
	}
	return f.Raw&(0x80>>uint(i)) != 0
}

// Named reports whether the named flag bit is set. The second return is
// false when no bit carries that name.
func (f Flags) Named(name string) (set bool, ok bool) {
	for i, n := range f.Names {
		if n != "" && n == name {
			return f.Raw&(0x80>>uint(i)) != 0, true
		}
	}
	return false, false
}

// AsSigned returns the value of a Signed node, or false for any other
// variant.
func AsSigned(v Val) (int64, bool) {
	n, ok := v.(Signed)
	return int64(n), ok
}

// AsUnsigned returns the value of an Unsigned node, or false for any other
// variant.
func AsUnsigned(v Val) (uint64, bool) {
	n, ok := v.(Unsigned)
	return uint64(n), ok
}

// AsText returns the value of a Text node, or false for any other variant.
func AsText(v Val) (string, bool) {
	n, ok := v.(Text)
	return string(n), ok
}

// AsSymbol returns the value of a Symbol node, or false for any other
// variant.
func AsSymbol(v Val) (string, bool) {
	n, ok := v.(Symbol)
	return string(n), ok
}

// AsAddressBytes returns the raw bytes of an Address node, or false for any
// other variant.
func AsAddressBytes(v Val) ([]byte, bool) {
	n, ok := v.(Address)
	if !ok {
		return nil, false
	}
	return n.Bytes, true
}

// AsAddressEncoded returns the encoded form of an Address node, or false
// for any other variant.
func AsAddressEncoded(v Val) (string, bool) {
	n, ok := v.(Address)
	if !ok {
		return "", false
	}
	return n.Encoded, true
}

// AsFlags returns a Flags node, or false for any other variant.
func AsFlags(v Val) (Flags, bool) {
	n, ok := v.(Flags)
	return n, ok
}

// AsObject returns an Object node, or false for any other variant.
func AsObject(v Val) (Object, bool) {
	n, ok := v.(Object)
	return n, ok
}

// AsBytes returns the contents of a Bytes node, or false for any other
// variant.
func AsBytes(v Val) ([]byte, bool) {
	n, ok := v.(Bytes)
	return []byte(n), ok
}

// AsPayload returns a Payload node, or false for any other variant.
func AsPayload(v Val) (Payload, bool) {
	n, ok := v.(Payload)
	return n, ok
}

// Equal reports whether two trees are structurally equal. Object children
// are compared in order. Failed payload outcomes compare by error text.
func Equal(a, b Val) bool {
	switch x := a.(type) {
	case nil:
		return b == nil

	case Signed:
		y, ok := b.(Signed)
		return ok && x == y

	case Unsigned:
		y, ok := b.(Unsigned)
		return ok && x == y

	case Text:
		y, ok := b.(Text)
		return ok && x == y

	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y

	case Address:
		y, ok := b.(Address)
		return ok && bytes.Equal(x.Bytes, y.Bytes) && x.Encoded == y.Encoded

	case Flags:
		y, ok := b.(Flags)
		return ok && x == y

	case Object:
		y, ok := b.(Object)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Name != y[i].Name || !Equal(x[i].Val, y[i].Val) {
				return false
			}
		}
		return true

	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)

	case Payload:
		y, ok := b.(Payload)
		if !ok {
			return false
		}
		if (x.Err == nil) != (y.Err == nil) {
			return false
		}
		if x.Err != nil {
			return x.Err.Error() == y.Err.Error()
		}
		return Equal(x.Val, y.Val)

	default:
		return false
	}
}
