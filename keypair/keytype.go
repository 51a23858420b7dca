package keypair

import (
	"strconv"
	"strings"
)

// KeyType identifies the curve of a key or signature. The numeric value is
// the tag byte of the binary form.
type KeyType uint8

const (
	ED25519 KeyType = iota
	SECP256K1
)

func (k KeyType) String() string {
	switch k {
	case ED25519:
		return "ed25519"
	case SECP256K1:
		return "secp256k1"
	default:
		return strconv.Itoa(int(k))
	}
}

func (k KeyType) IsValid() error {
	switch k {
	case ED25519, SECP256K1:
		return nil
	default:
		return UnknownKeyType{Value: strconv.Itoa(int(k))}
	}
}

// ParseKeyType parses the curve name; the input is lower-cased first.
func ParseKeyType(s string) (KeyType, error) {
	l := strings.ToLower(s)
	switch l {
	case "ed25519":
		return ED25519, nil
	case "secp256k1":
		return SECP256K1, nil
	default:
		return 0, UnknownKeyType{Value: l}
	}
}

func KeyTypeFromByte(b uint8) (KeyType, error) {
	k := KeyType(b)
	if err := k.IsValid(); err != nil {
		return 0, err
	}

	return k, nil
}

// SplitPrefixed splits "<curve>:<payload>". Without ':' the curve is ED25519
// and the whole input is the payload.
func SplitPrefixed(s string) (KeyType, string, error) {
	i := strings.Index(s, ":")
	if i < 0 {
		return ED25519, s, nil
	}

	k, err := ParseKeyType(s[:i])
	if err != nil {
		return 0, "", err
	}

	return k, s[i+1:], nil
}

func (k KeyType) MarshalText() ([]byte, error) {
	if err := k.IsValid(); err != nil {
		return nil, err
	}

	return []byte(k.String()), nil
}

func (k *KeyType) UnmarshalText(b []byte) error {
	t, err := ParseKeyType(string(b))
	if err != nil {
		return err
	}

	*k = t

	return nil
}
