package hash

import (
	"github.com/spikeekips/nearanywhere/encode"
)

type Hashable interface {
	Hash() (CryptoHash, error)
}

// MakeHash returns the hash of the borsh encoded i. A Hashable returns its
// own hash.
func MakeHash(i encode.BorshMarshaler) (CryptoHash, error) {
	if hashable, ok := i.(Hashable); ok {
		return hashable.Hash()
	}

	b, err := encode.Marshal(i)
	if err != nil {
		return CryptoHash{}, HashFailedError.New(err)
	}

	return NewCryptoHash(b), nil
}
