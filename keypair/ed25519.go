package keypair

import (
	"bytes"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/ed25519"
)

const (
	ED25519PublicKeyLength = ed25519.PublicKeySize
	ED25519SecretKeyLength = ed25519.PrivateKeySize
	ED25519SignatureLength = ed25519.SignatureSize
)

type ED25519PublicKey [ED25519PublicKeyLength]byte

func ED25519PublicKeyFromBytes(b []byte) (ED25519PublicKey, error) {
	var k ED25519PublicKey
	if len(b) != len(k) {
		return k, InvalidLength{KeyType: ED25519, Expected: len(k), Received: len(b)}
	}

	copy(k[:], b)

	return k, nil
}

func (k ED25519PublicKey) Compare(b ED25519PublicKey) int {
	return bytes.Compare(k[:], b[:])
}

func (k ED25519PublicKey) String() string {
	return encodeBase58(k[:])
}

func (k ED25519PublicKey) GoString() string {
	return fmt.Sprintf("ED25519PublicKey(%s)", k.String())
}

// ED25519SecretKey is seed[0:32] followed by the public key[32:64].
type ED25519SecretKey [ED25519SecretKeyLength]byte

func ED25519SecretKeyFromBytes(b []byte) (ED25519SecretKey, error) {
	var k ED25519SecretKey
	if len(b) != len(k) {
		return k, InvalidLength{KeyType: ED25519, Expected: len(k), Received: len(b)}
	}

	copy(k[:], b)

	return k, nil
}

// Equal compares only the seed part.
func (k ED25519SecretKey) Equal(b ED25519SecretKey) bool {
	return bytes.Equal(k[:ed25519.SeedSize], b[:ed25519.SeedSize])
}

func (k ED25519SecretKey) PublicKey() ED25519PublicKey {
	var p ED25519PublicKey
	copy(p[:], k[ed25519.SeedSize:])

	return p
}

// String prints the seed only.
func (k ED25519SecretKey) String() string {
	return encodeBase58(k[:ed25519.SeedSize])
}

func (k ED25519SecretKey) GoString() string {
	return fmt.Sprintf("ED25519SecretKey(%s)", k.String())
}

func (k ED25519SecretKey) sign(message []byte) [ED25519SignatureLength]byte {
	var s [ED25519SignatureLength]byte
	copy(s[:], ed25519.Sign(ed25519.PrivateKey(k[:]), message))

	return s
}

// verifyED25519Strict rejects small order public keys and R points before
// the usual verification, which already rejects non-canonical S.
func verifyED25519Strict(pub ED25519PublicKey, message []byte, sig [ED25519SignatureLength]byte) bool {
	a, err := new(edwards25519.Point).SetBytes(pub[:])
	if err != nil {
		return false
	} else if isSmallOrder(a) {
		return false
	}

	r, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return false
	} else if isSmallOrder(r) {
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig[:])
}

func isSmallOrder(p *edwards25519.Point) bool {
	return new(edwards25519.Point).MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1
}
