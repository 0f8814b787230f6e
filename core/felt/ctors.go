package felt

// FromString parses number into a new felt. It accepts the same prefixes
// as Felt.SetString (0x, 0b, plain base 10).
func FromString(number string) (*Felt, error) {
	return new(Felt).SetString(number)
}

// MustFromString parses number into a new felt, panicking on failure.
// Reserved for tests and package-level constants.
func MustFromString(number string) *Felt {
	f, err := FromString(number)
	if err != nil {
		panic(err)
	}
	return f
}

// FromUint64 returns a new felt holding v.
func FromUint64(v uint64) *Felt {
	return new(Felt).SetUint64(v)
}

// FromBytes interprets b as a big-endian unsigned integer reduced into
// the field.
func FromBytes(b []byte) *Felt {
	return new(Felt).SetBytes(b)
}
