// Package abi bridges typed call arguments to Starknet's flat felt
// calling convention. Contract calls carry no field tags: the caller and
// the contract must replay the same ordered argument specs against the
// felt stream, so encoding and decoding are driven by [ArgumentSpec]
// lists resolved once from a contract's declared interface.
package abi

import "fmt"

// Kind tags the wire shape of a single formal parameter.
type Kind uint8

const (
	// KindFelt is a single field element.
	KindFelt Kind = iota
	// KindWide is a 256-bit unsigned integer carried as two felts,
	// low 128 bits first. Cairo calls it Uint256.
	KindWide
	// KindArray is a variable-length sequence preceded by its element
	// count felt.
	KindArray
	// KindStruct is a fixed sequence of fields in declared order, with
	// no length prefix.
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindFelt:
		return "felt"
	case KindWide:
		return "wide"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ArgumentSpec describes one formal parameter of a callable. Specs are
// resolved once from a contract interface and are immutable afterwards.
type ArgumentSpec struct {
	Name string
	Kind Kind
	// Elem is the element spec, set iff Kind is KindArray.
	Elem *ArgumentSpec
	// Fields are the struct fields in declared order, set iff Kind is
	// KindStruct.
	Fields []ArgumentSpec
}

// FeltSpec returns a spec for a single felt parameter.
func FeltSpec(name string) ArgumentSpec {
	return ArgumentSpec{Name: name, Kind: KindFelt}
}

// WideSpec returns a spec for a 256-bit (two felt) parameter.
func WideSpec(name string) ArgumentSpec {
	return ArgumentSpec{Name: name, Kind: KindWide}
}

// ArraySpec returns a spec for a length-prefixed array parameter.
func ArraySpec(name string, elem ArgumentSpec) ArgumentSpec {
	return ArgumentSpec{Name: name, Kind: KindArray, Elem: &elem}
}

// StructSpec returns a spec for a struct parameter with the given fields
// in declared order.
func StructSpec(name string, fields ...ArgumentSpec) ArgumentSpec {
	return ArgumentSpec{Name: name, Kind: KindStruct, Fields: fields}
}
