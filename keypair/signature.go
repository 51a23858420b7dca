package keypair

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spikeekips/nearanywhere/encode"
)

// Signature is either an ED25519 signature, r||s, or a SECP256K1 signature,
// r||s||v. Like PublicKey it is comparable.
type Signature struct {
	keyType   KeyType
	ed25519   [ED25519SignatureLength]byte
	secp256k1 Secp256K1Signature
}

func signatureLength(kt KeyType) int {
	if kt == SECP256K1 {
		return Secp256K1SignatureLength
	}

	return ED25519SignatureLength
}

// SignatureFromParts builds a signature from the raw signature bytes of the
// curve.
func SignatureFromParts(kt KeyType, b []byte) (Signature, error) {
	switch kt {
	case ED25519:
		if len(b) != ED25519SignatureLength {
			return Signature{}, InvalidData{
				KeyType: ED25519,
				Message: fmt.Sprintf("signature must be %d bytes; received=%d", ED25519SignatureLength, len(b)),
			}
		}

		s := Signature{keyType: ED25519}
		copy(s.ed25519[:], b)

		return s, nil
	case SECP256K1:
		k, err := Secp256K1SignatureFromBytes(b)
		if err != nil {
			return Signature{}, err
		}

		return Signature{keyType: SECP256K1, secp256k1: k}, nil
	default:
		return Signature{}, kt.IsValid()
	}
}

func (s Signature) KeyType() KeyType {
	return s.keyType
}

func (s Signature) Len() int {
	return 1 + signatureLength(s.keyType)
}

func (s Signature) Bytes() []byte {
	switch s.keyType {
	case SECP256K1:
		b := s.secp256k1
		return b[:]
	default:
		b := s.ed25519
		return b[:]
	}
}

func (s Signature) Equal(b Signature) bool {
	return s == b
}

func (s Signature) Compare(b Signature) int {
	switch {
	case s.keyType < b.keyType:
		return -1
	case s.keyType > b.keyType:
		return 1
	default:
		return bytes.Compare(s.Bytes(), b.Bytes())
	}
}

func (s Signature) UnwrapED25519() [ED25519SignatureLength]byte {
	if s.keyType != ED25519 {
		panic(fmt.Sprintf("not ed25519 signature; key_type=%s", s.keyType))
	}

	return s.ed25519
}

func (s Signature) UnwrapSecp256K1() Secp256K1Signature {
	if s.keyType != SECP256K1 {
		panic(fmt.Sprintf("not secp256k1 signature; key_type=%s", s.keyType))
	}

	return s.secp256k1
}

// Verify reports whether s is a valid signature of message by pub. A curve
// mismatch or a malformed key is false. For SECP256K1 message must be the 32
// bytes digest which was signed.
func (s Signature) Verify(message []byte, pub PublicKey) bool {
	if s.keyType != pub.keyType {
		return false
	}

	switch s.keyType {
	case ED25519:
		return verifyED25519Strict(pub.ed25519, message, s.ed25519)
	case SECP256K1:
		return s.secp256k1.Verify(message, pub.secp256k1[:]) == nil
	default:
		return false
	}
}

func (s Signature) String() string {
	return s.keyType.String() + ":" + encodeBase58(s.Bytes())
}

func (s Signature) GoString() string {
	return fmt.Sprintf("Signature(%s)", s.String())
}

func ParseSignature(str string) (Signature, error) {
	kt, payload, err := SplitPrefixed(str)
	if err != nil {
		return Signature{}, err
	}

	b, err := decodeBase58(kt, payload, signatureLength(kt))
	if err != nil {
		return Signature{}, err
	}

	return SignatureFromParts(kt, b)
}

func (s Signature) MarshalBorsh(w *encode.Writer) error {
	if err := s.keyType.IsValid(); err != nil {
		return err
	}

	w.WriteU8(uint8(s.keyType))
	w.WriteFixed(s.Bytes())

	return nil
}

func (s *Signature) UnmarshalBorsh(r *encode.Reader) error {
	t, err := r.ReadU8()
	if err != nil {
		return err
	}

	kt, err := KeyTypeFromByte(t)
	if err != nil {
		return encode.DecodeFailedError.New(err)
	}

	b, err := r.ReadFixed(signatureLength(kt))
	if err != nil {
		return err
	}

	n, err := SignatureFromParts(kt, b)
	if err != nil {
		return err
	}

	*s = n

	return nil
}

func (s Signature) MarshalBinary() ([]byte, error) {
	return encode.Marshal(s)
}

func (s *Signature) UnmarshalBinary(b []byte) error {
	if len(b) < 1 {
		return InvalidLength{Expected: 1 + ED25519SignatureLength, Received: 0}
	}

	kt, err := KeyTypeFromByte(b[0])
	if err != nil {
		return err
	}

	if expected := 1 + signatureLength(kt); len(b) != expected {
		return InvalidLength{KeyType: kt, Expected: expected, Received: len(b)}
	}

	n, err := SignatureFromParts(kt, b[1:])
	if err != nil {
		return err
	}

	*s = n

	return nil
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(b []byte) error {
	n, err := ParseSignature(string(b))
	if err != nil {
		return err
	}

	*s = n

	return nil
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Signature) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}

	return s.UnmarshalText([]byte(str))
}
