package abi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/NethermindEth/starkbind/core/felt"
)

// The codec rejects these synchronously; they are contract violations on
// the caller's side and are never retried.
var (
	ErrArityMismatch  = errors.New("spec count does not match value count")
	ErrOutOfRange     = errors.New("value out of range")
	ErrTruncatedInput = errors.New("calldata exhausted before all specs were satisfied")
	ErrTrailingInput  = errors.New("unconsumed calldata remains")
	ErrInvalidValue   = errors.New("value does not match spec")
)

// Encode flattens values against specs, in order, into a single felt
// sequence. Arrays are preceded by their element count, wide values are
// split low half first, struct fields follow declared order with no
// prefix. The result carries no separators: the receiving contract
// recovers field boundaries solely by replaying the same specs.
func Encode(specs []ArgumentSpec, values []any) ([]*felt.Felt, error) {
	if len(specs) != len(values) {
		return nil, fmt.Errorf("%w: %d specs, %d values", ErrArityMismatch, len(specs), len(values))
	}

	var out []*felt.Felt
	for i, spec := range specs {
		var err error
		if out, err = encodeValue(&spec, values[i], argPath(i, spec.Name), out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Decode consumes felts from the front of the sequence according to each
// spec, in order, reconstructing the typed values Encode flattened.
// Felts decode to *felt.Felt, wide values to *big.Int, arrays to []any
// and structs to map[string]any.
func Decode(specs []ArgumentSpec, felts []*felt.Felt) ([]any, error) {
	r := feltReader{felts: felts}
	out := make([]any, len(specs))
	for i, spec := range specs {
		v, err := decodeValue(&spec, argPath(i, spec.Name), &r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	if rest := len(felts) - r.pos; rest > 0 {
		return nil, fmt.Errorf("%w: %d felt(s) left after %d spec(s)", ErrTrailingInput, rest, len(specs))
	}
	return out, nil
}

func argPath(i int, name string) string {
	if name == "" {
		return fmt.Sprintf("argument %d", i)
	}
	return fmt.Sprintf("argument %d (%s)", i, name)
}

func encodeValue(spec *ArgumentSpec, value any, path string, out []*felt.Felt) ([]*felt.Felt, error) {
	switch spec.Kind {
	case KindFelt:
		f, err := feltFromValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return append(out, f), nil
	case KindWide:
		v, err := bigFromValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		low, high, err := SplitWide(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return append(out, low, high), nil
	case KindArray:
		elems, err := sliceFromValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, felt.FromUint64(uint64(len(elems))))
		for j, elem := range elems {
			elemPath := fmt.Sprintf("%s[%d]", path, j)
			if out, err = encodeValue(spec.Elem, elem, elemPath, out); err != nil {
				return nil, err
			}
		}
		return out, nil
	case KindStruct:
		fields, err := structFromValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for i := range spec.Fields {
			field := &spec.Fields[i]
			fieldValue, ok := fields[field.Name]
			if !ok {
				return nil, fmt.Errorf("%s: %w: missing field %q", path, ErrInvalidValue, field.Name)
			}
			fieldPath := path + "." + field.Name
			if out, err = encodeValue(field, fieldValue, fieldPath, out); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: %w: unknown kind %v", path, ErrInvalidValue, spec.Kind)
	}
}

type feltReader struct {
	felts []*felt.Felt
	pos   int
}

func (r *feltReader) next(path string) (*felt.Felt, error) {
	if r.pos >= len(r.felts) {
		return nil, fmt.Errorf("%s: %w", path, ErrTruncatedInput)
	}
	f := r.felts[r.pos]
	r.pos++
	return f, nil
}

func decodeValue(spec *ArgumentSpec, path string, r *feltReader) (any, error) {
	switch spec.Kind {
	case KindFelt:
		f, err := r.next(path)
		if err != nil {
			return nil, err
		}
		cp := *f
		return &cp, nil
	case KindWide:
		low, err := r.next(path)
		if err != nil {
			return nil, err
		}
		high, err := r.next(path)
		if err != nil {
			return nil, err
		}
		v, err := JoinWide(low, high)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return v, nil
	case KindArray:
		countFelt, err := r.next(path)
		if err != nil {
			return nil, err
		}
		if !countFelt.IsUint64() {
			return nil, fmt.Errorf("%s: %w: array length %s", path, ErrOutOfRange, countFelt)
		}
		count := countFelt.Uint64()
		if count > uint64(len(r.felts)-r.pos) {
			return nil, fmt.Errorf("%s: %w: array claims %d elements, %d felt(s) remain",
				path, ErrTruncatedInput, count, len(r.felts)-r.pos)
		}
		elems := make([]any, count)
		for j := range elems {
			elemPath := fmt.Sprintf("%s[%d]", path, j)
			if elems[j], err = decodeValue(spec.Elem, elemPath, r); err != nil {
				return nil, err
			}
		}
		return elems, nil
	case KindStruct:
		fields := make(map[string]any, len(spec.Fields))
		for i := range spec.Fields {
			field := &spec.Fields[i]
			fieldPath := path + "." + field.Name
			v, err := decodeValue(field, fieldPath, r)
			if err != nil {
				return nil, err
			}
			fields[field.Name] = v
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("%s: %w: unknown kind %v", path, ErrInvalidValue, spec.Kind)
	}
}

// feltFromValue coerces the accepted scalar representations into a felt,
// enforcing 0 <= v < field modulus without reduction.
func feltFromValue(value any) (*felt.Felt, error) {
	switch v := value.(type) {
	case *felt.Felt:
		cp := *v
		return &cp, nil
	case felt.Felt:
		cp := v
		return &cp, nil
	case *big.Int:
		if v.Sign() < 0 || v.Cmp(felt.Modulus()) >= 0 {
			return nil, fmt.Errorf("%w: %s is not a valid felt", ErrOutOfRange, v)
		}
		return new(felt.Felt).SetBigInt(v), nil
	case uint64:
		return felt.FromUint64(v), nil
	case int:
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d", ErrOutOfRange, v)
		}
		return felt.FromUint64(uint64(v)), nil
	case int64:
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d", ErrOutOfRange, v)
		}
		return felt.FromUint64(uint64(v)), nil
	case string:
		b, ok := new(big.Int).SetString(v, 0)
		if !ok {
			return nil, fmt.Errorf("%w: cannot parse %q as an integer", ErrInvalidValue, v)
		}
		return feltFromValue(b)
	case json.Number:
		return feltFromValue(string(v))
	default:
		return nil, fmt.Errorf("%w: cannot use %T as a felt", ErrInvalidValue, value)
	}
}

// bigFromValue coerces the accepted scalar representations into an
// unsigned big integer for wide (two felt) encoding.
func bigFromValue(value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case big.Int:
		return &v, nil
	case *felt.Felt:
		return v.BigInt(new(big.Int)), nil
	case felt.Felt:
		return v.BigInt(new(big.Int)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case string:
		b, ok := new(big.Int).SetString(v, 0)
		if !ok {
			return nil, fmt.Errorf("%w: cannot parse %q as an integer", ErrInvalidValue, v)
		}
		return b, nil
	case json.Number:
		return bigFromValue(string(v))
	default:
		return nil, fmt.Errorf("%w: cannot use %T as a wide value", ErrInvalidValue, value)
	}
}

func sliceFromValue(value any) ([]any, error) {
	if elems, ok := value.([]any); ok {
		return elems, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: cannot use %T as an array", ErrInvalidValue, value)
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, nil
}

func structFromValue(value any) (map[string]any, error) {
	if fields, ok := value.(map[string]any); ok {
		return fields, nil
	}
	return nil, fmt.Errorf("%w: cannot use %T as a struct", ErrInvalidValue, value)
}
