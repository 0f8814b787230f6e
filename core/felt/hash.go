package felt

type Hash Felt

func (h *Hash) AsFelt() *Felt {
	return (*Felt)(h)
}

func (h *Hash) Bytes() [32]byte {
	return (*Felt)(h).Bytes()
}

func (h *Hash) String() string {
	return (*Felt)(h).String()
}

type ClassHash Hash

func (h *ClassHash) AsFelt() *Felt {
	return (*Felt)(h)
}

func (h *ClassHash) String() string {
	return (*Hash)(h).String()
}

type TransactionHash Hash

func (h *TransactionHash) AsFelt() *Felt {
	return (*Felt)(h)
}

func (h *TransactionHash) String() string {
	return (*Hash)(h).String()
}

// Selector identifies a contract entry point, derived from the function
// name via the truncated keccak.
type Selector Felt

func (s *Selector) AsFelt() *Felt {
	return (*Felt)(s)
}

func (s *Selector) String() string {
	return (*Felt)(s).String()
}
