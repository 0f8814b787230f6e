package abi

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/NethermindEth/starkbind/core/crypto"
	"github.com/NethermindEth/starkbind/core/felt"
	"github.com/NethermindEth/starkbind/validator"
)

type EntryType string

const (
	EntryFunction    EntryType = "function"
	EntryConstructor EntryType = "constructor"
	EntryL1Handler   EntryType = "l1_handler"
	EntryEvent       EntryType = "event"
	EntryStruct      EntryType = "struct"
)

var (
	ErrUnknownType     = errors.New("unknown Cairo type")
	ErrUnknownFunction = errors.New("unknown function")
	ErrNoConstructor   = errors.New("no constructor in ABI")
	ErrRecursiveStruct = errors.New("recursive struct definition")
)

// Parameter is one formal input or output of an ABI entry.
type Parameter struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// Member is one field of an ABI struct definition.
type Member struct {
	Name   string `json:"name" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Offset uint64 `json:"offset"`
}

// Entry is a single item of a Cairo contract ABI document.
type Entry struct {
	Type    EntryType   `json:"type" validate:"required,oneof=function constructor l1_handler event struct"`
	Name    string      `json:"name" validate:"required"`
	Inputs  []Parameter `json:"inputs,omitempty"`
	Outputs []Parameter `json:"outputs,omitempty"`
	// Struct entries carry members and a size in felts.
	Members []Member `json:"members,omitempty"`
	Size    uint64   `json:"size,omitempty"`
	// Event entries carry keys and data.
	Keys            []Parameter `json:"keys,omitempty"`
	Data            []Parameter `json:"data,omitempty"`
	StateMutability string      `json:"stateMutability,omitempty"`
}

// Function is a callable entry point with its argument specs resolved.
type Function struct {
	Name     string
	Selector *felt.Felt
	Inputs   []ArgumentSpec
	Outputs  []ArgumentSpec
}

// Event is an emitted event with its data specs resolved.
type Event struct {
	Name     string
	Selector *felt.Felt
	Data     []ArgumentSpec
}

// Interface holds the resolved argument specs of every callable and
// event a contract declares. It is immutable once built and safe for
// concurrent use.
type Interface struct {
	functions   map[string]*Function
	events      map[string]*Event
	constructor *Function
}

// FromJSON parses a Cairo ABI document into an Interface.
func FromJSON(data []byte) (*Interface, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse ABI document: %w", err)
	}
	return New(entries)
}

// New resolves ABI entries into an Interface. Struct references are
// expanded, and `<name>_len` felt inputs immediately preceding a
// `<name>` array input are folded into the array spec since the length
// prefix is implied by the calling convention.
func New(entries []Entry) (*Interface, error) {
	v := validator.Validator()
	structs := make(map[string]Entry)
	for _, entry := range entries {
		if err := v.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid ABI entry %q: %w", entry.Name, err)
		}
		if entry.Type == EntryStruct {
			structs[entry.Name] = entry
		}
	}

	r := resolver{structs: structs, seen: make(map[string]bool)}
	iface := &Interface{
		functions: make(map[string]*Function),
		events:    make(map[string]*Event),
	}
	for _, entry := range entries {
		switch entry.Type {
		case EntryFunction, EntryL1Handler, EntryConstructor:
			inputs, err := r.resolveParams(entry.Inputs)
			if err != nil {
				return nil, fmt.Errorf("function %q inputs: %w", entry.Name, err)
			}
			outputs, err := r.resolveParams(entry.Outputs)
			if err != nil {
				return nil, fmt.Errorf("function %q outputs: %w", entry.Name, err)
			}
			selector, err := crypto.Selector(entry.Name)
			if err != nil {
				return nil, err
			}
			fn := &Function{Name: entry.Name, Selector: selector, Inputs: inputs, Outputs: outputs}
			if entry.Type == EntryConstructor {
				iface.constructor = fn
			} else {
				iface.functions[entry.Name] = fn
			}
		case EntryEvent:
			// Native Cairo events carry data, ethPM-shaped documents
			// use inputs.
			params := entry.Data
			if len(params) == 0 {
				params = entry.Inputs
			}
			data, err := r.resolveParams(params)
			if err != nil {
				return nil, fmt.Errorf("event %q: %w", entry.Name, err)
			}
			selector, err := crypto.Selector(entry.Name)
			if err != nil {
				return nil, err
			}
			iface.events[entry.Name] = &Event{Name: entry.Name, Selector: selector, Data: data}
		case EntryStruct:
			// collected above
		}
	}
	return iface, nil
}

// Function returns the resolved entry point with the given name.
func (i *Interface) Function(name string) (*Function, error) {
	fn, ok := i.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return fn, nil
}

// Event returns the resolved event with the given name.
func (i *Interface) Event(name string) (*Event, error) {
	ev, ok := i.events[name]
	if !ok {
		return nil, fmt.Errorf("%w: event %q", ErrUnknownFunction, name)
	}
	return ev, nil
}

// Constructor returns the constructor entry, or ErrNoConstructor.
func (i *Interface) Constructor() (*Function, error) {
	if i.constructor == nil {
		return nil, ErrNoConstructor
	}
	return i.constructor, nil
}

// EncodeCall encodes values against the named function's input specs.
func (i *Interface) EncodeCall(function string, values []any) ([]*felt.Felt, error) {
	fn, err := i.Function(function)
	if err != nil {
		return nil, err
	}
	return Encode(fn.Inputs, values)
}

// DecodeResult decodes a return felt sequence against the named
// function's output specs.
func (i *Interface) DecodeResult(function string, felts []*felt.Felt) ([]any, error) {
	fn, err := i.Function(function)
	if err != nil {
		return nil, err
	}
	return Decode(fn.Outputs, felts)
}

type resolver struct {
	structs map[string]Entry
	// seen tracks the struct names on the current resolution path.
	seen map[string]bool
}

func (r *resolver) resolveParams(params []Parameter) ([]ArgumentSpec, error) {
	specs := make([]ArgumentSpec, 0, len(params))
	for i, param := range params {
		if isLengthParam(params, i) {
			continue
		}
		spec, err := r.resolveType(param.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", param.Name, err)
		}
		spec.Name = param.Name
		specs = append(specs, spec)
	}
	return specs, nil
}

// isLengthParam reports whether params[i] is the implicit `<name>_len`
// count of the array parameter that follows it.
func isLengthParam(params []Parameter, i int) bool {
	if params[i].Type != "felt" || i+1 >= len(params) {
		return false
	}
	next := params[i+1]
	return strings.HasSuffix(next.Type, "*") && params[i].Name == next.Name+"_len"
}

func (r *resolver) resolveType(typ string) (ArgumentSpec, error) {
	typ = strings.TrimSpace(typ)
	switch {
	case typ == "felt":
		return ArgumentSpec{Kind: KindFelt}, nil
	case typ == "Uint256":
		// Uint256 appears in ABI documents as a struct of two felts but
		// is surfaced as a single 256-bit value.
		return ArgumentSpec{Kind: KindWide}, nil
	case strings.HasSuffix(typ, "*"):
		elem, err := r.resolveType(strings.TrimSuffix(typ, "*"))
		if err != nil {
			return ArgumentSpec{}, err
		}
		return ArgumentSpec{Kind: KindArray, Elem: &elem}, nil
	default:
		entry, ok := r.structs[typ]
		if !ok {
			return ArgumentSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, typ)
		}
		if r.seen[typ] {
			return ArgumentSpec{}, fmt.Errorf("%w: %q", ErrRecursiveStruct, typ)
		}
		r.seen[typ] = true
		defer delete(r.seen, typ)

		members := make([]Member, len(entry.Members))
		copy(members, entry.Members)
		sort.SliceStable(members, func(a, b int) bool { return members[a].Offset < members[b].Offset })

		fields := make([]ArgumentSpec, len(members))
		for i, member := range members {
			field, err := r.resolveType(member.Type)
			if err != nil {
				return ArgumentSpec{}, fmt.Errorf("struct %q member %q: %w", typ, member.Name, err)
			}
			field.Name = member.Name
			fields[i] = field
		}
		return ArgumentSpec{Kind: KindStruct, Fields: fields}, nil
	}
}
