package keypair

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	Secp256K1PublicKeyLength = 64
	Secp256K1SecretKeyLength = 32
	Secp256K1SignatureLength = 65
	Secp256K1DigestLength    = 32
)

var (
	secp256k1N        = new(big.Int).Set(crypto.S256().Params().N)
	secp256k1HalfNOne = new(big.Int).Add(new(big.Int).Rsh(secp256k1N, 1), big.NewInt(1))
)

// Secp256K1PublicKey is the uncompressed point x||y without the 0x04 prefix.
type Secp256K1PublicKey [Secp256K1PublicKeyLength]byte

func Secp256K1PublicKeyFromBytes(b []byte) (Secp256K1PublicKey, error) {
	var k Secp256K1PublicKey
	if len(b) != len(k) {
		return k, InvalidLength{KeyType: SECP256K1, Expected: len(k), Received: len(b)}
	}

	copy(k[:], b)

	return k, nil
}

func secp256k1PublicKeyFromECDSA(pub *ecdsa.PublicKey) Secp256K1PublicKey {
	var k Secp256K1PublicKey
	copy(k[:], crypto.FromECDSAPub(pub)[1:])

	return k
}

func (k Secp256K1PublicKey) Compare(b Secp256K1PublicKey) int {
	return bytes.Compare(k[:], b[:])
}

func (k Secp256K1PublicKey) String() string {
	return encodeBase58(k[:])
}

func (k Secp256K1PublicKey) GoString() string {
	return fmt.Sprintf("Secp256K1PublicKey(%s)", k.String())
}

// Secp256K1Signature is r||s||v.
type Secp256K1Signature [Secp256K1SignatureLength]byte

func Secp256K1SignatureFromBytes(b []byte) (Secp256K1Signature, error) {
	var s Secp256K1Signature
	if len(b) != len(s) {
		return s, InvalidLength{KeyType: SECP256K1, Expected: len(s), Received: len(b)}
	}

	copy(s[:], b)

	return s, nil
}

func (s Secp256K1Signature) String() string {
	return encodeBase58(s[:])
}

func (s Secp256K1Signature) GoString() string {
	return fmt.Sprintf("Secp256K1Signature(%s)", s.String())
}

func (s Secp256K1Signature) R() *big.Int {
	return new(big.Int).SetBytes(s[:32])
}

func (s Secp256K1Signature) S() *big.Int {
	return new(big.Int).SetBytes(s[32:64])
}

func (s Secp256K1Signature) V() uint8 {
	return s[64]
}

// CheckSignatureValues checks r < n and s < n, or s < n/2+1 when
// rejectUpperS is set.
func (s Secp256K1Signature) CheckSignatureValues(rejectUpperS bool) bool {
	threshold := secp256k1N
	if rejectUpperS {
		threshold = secp256k1HalfNOne
	}

	return s.R().Cmp(secp256k1N) < 0 && s.S().Cmp(threshold) < 0
}

// Recover returns the public key which signed digest. The recovery id of the
// signature itself is ignored in favor of recoveryID.
func (s Secp256K1Signature) Recover(digest []byte, recoveryID uint8) (Secp256K1PublicKey, error) {
	if len(digest) != Secp256K1DigestLength {
		return Secp256K1PublicKey{}, InvalidData{
			KeyType: SECP256K1,
			Message: fmt.Sprintf("digest must be %d bytes; received=%d", Secp256K1DigestLength, len(digest)),
		}
	}

	if recoveryID > 3 {
		return Secp256K1PublicKey{}, InvalidData{
			KeyType: SECP256K1,
			Message: fmt.Sprintf("invalid recovery id; recovery_id=%d", recoveryID),
		}
	}

	sig := make([]byte, Secp256K1SignatureLength)
	copy(sig, s[:64])
	sig[64] = recoveryID

	pub, err := crypto.Ecrecover(digest, sig)
	if err != nil {
		return Secp256K1PublicKey{}, InvalidData{
			KeyType: SECP256K1,
			Message: fmt.Sprintf("failed to recover public key; %v", err),
		}
	} else if len(pub) != Secp256K1PublicKeyLength+1 {
		return Secp256K1PublicKey{}, InvalidData{
			KeyType: SECP256K1,
			Message: fmt.Sprintf("unexpected recovered public key; length=%d", len(pub)),
		}
	}

	var k Secp256K1PublicKey
	copy(k[:], pub[1:])

	return k, nil
}

// Verify checks the signature against digest and the raw public key, which
// is either 64 bytes x||y or 65 bytes with the 0x04 prefix. Malformed inputs
// return InvalidData; a failed check returns
// SignatureVerificationFailedError.
func (s Secp256K1Signature) Verify(digest, rawPublicKey []byte) error {
	if len(digest) != Secp256K1DigestLength {
		return InvalidData{
			KeyType: SECP256K1,
			Message: fmt.Sprintf("digest must be %d bytes; received=%d", Secp256K1DigestLength, len(digest)),
		}
	}

	var pub []byte
	switch len(rawPublicKey) {
	case Secp256K1PublicKeyLength:
		pub = append([]byte{0x04}, rawPublicKey...)
	case Secp256K1PublicKeyLength + 1:
		pub = rawPublicKey
	default:
		return InvalidData{
			KeyType: SECP256K1,
			Message: fmt.Sprintf("invalid public key; length=%d", len(rawPublicKey)),
		}
	}

	if _, err := crypto.UnmarshalPubkey(pub); err != nil {
		return InvalidData{KeyType: SECP256K1, Message: fmt.Sprintf("invalid public key; %v", err)}
	}

	if !crypto.VerifySignature(pub, digest, s[:64]) {
		return SignatureVerificationFailedError.Newf("secp256k1")
	}

	return nil
}

type secp256k1SecretKey [Secp256K1SecretKeyLength]byte

func newSecp256k1SecretKey(b []byte) (secp256k1SecretKey, error) {
	var k secp256k1SecretKey
	if len(b) != len(k) {
		return k, InvalidLength{KeyType: SECP256K1, Expected: len(k), Received: len(b)}
	}

	if _, err := crypto.ToECDSA(b); err != nil {
		return k, InvalidData{KeyType: SECP256K1, Message: fmt.Sprintf("invalid secret scalar; %v", err)}
	}

	copy(k[:], b)

	return k, nil
}

// generateSecp256k1SecretKey draws 32 bytes at a time until they form a
// scalar in [1, n).
func generateSecp256k1SecretKey(r io.Reader) (secp256k1SecretKey, error) {
	for {
		var b [Secp256K1SecretKeyLength]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return secp256k1SecretKey{}, err
		}

		if k, err := newSecp256k1SecretKey(b[:]); err == nil {
			return k, nil
		}
	}
}

func (k secp256k1SecretKey) privateKey() *ecdsa.PrivateKey {
	// the scalar was validated at construction
	p, _ := crypto.ToECDSA(k[:])

	return p
}

func (k secp256k1SecretKey) publicKey() Secp256K1PublicKey {
	return secp256k1PublicKeyFromECDSA(&k.privateKey().PublicKey)
}

func (k secp256k1SecretKey) sign(digest []byte) (Secp256K1Signature, error) {
	if len(digest) != Secp256K1DigestLength {
		return Secp256K1Signature{}, InvalidData{
			KeyType: SECP256K1,
			Message: fmt.Sprintf("message must be a %d bytes digest; received=%d", Secp256K1DigestLength, len(digest)),
		}
	}

	b, err := crypto.Sign(digest, k.privateKey())
	if err != nil {
		return Secp256K1Signature{}, InvalidData{KeyType: SECP256K1, Message: err.Error()}
	}

	return Secp256K1SignatureFromBytes(b)
}
