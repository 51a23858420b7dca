package keypair

import (
	"crypto/sha256"
	"io"
)

// KeyPair holds a secret key and the public key derived from it at
// construction.
type KeyPair struct {
	secret SecretKey
	public PublicKey
}

func NewKeyPair(kt KeyType) (KeyPair, error) {
	sk, err := NewSecretKey(kt)
	if err != nil {
		return KeyPair{}, err
	}

	return NewKeyPairFromSecretKey(sk), nil
}

func NewKeyPairFromReader(kt KeyType, r io.Reader) (KeyPair, error) {
	sk, err := NewSecretKeyFromReader(kt, r)
	if err != nil {
		return KeyPair{}, err
	}

	return NewKeyPairFromSecretKey(sk), nil
}

func NewKeyPairFromSecretKey(sk SecretKey) KeyPair {
	return KeyPair{secret: sk, public: sk.PublicKey()}
}

// ParseKeyPair parses the secret key string.
func ParseKeyPair(s string) (KeyPair, error) {
	sk, err := ParseSecretKey(s)
	if err != nil {
		return KeyPair{}, err
	}

	return NewKeyPairFromSecretKey(sk), nil
}

func (kp KeyPair) KeyType() KeyType {
	return kp.secret.KeyType()
}

func (kp KeyPair) PublicKey() PublicKey {
	return kp.public
}

func (kp KeyPair) SecretKey() SecretKey {
	return kp.secret
}

func (kp KeyPair) Sign(message []byte) (Signature, error) {
	return kp.secret.Sign(message)
}

// SignDigest signs the sha256 digest of message, which works for both
// curves.
func (kp KeyPair) SignDigest(message []byte) (Signature, error) {
	h := sha256.Sum256(message)

	return kp.secret.Sign(h[:])
}

func (kp KeyPair) Verify(message []byte, sig Signature) bool {
	return sig.Verify(message, kp.public)
}

func (kp KeyPair) VerifyDigest(message []byte, sig Signature) bool {
	h := sha256.Sum256(message)

	return sig.Verify(h[:], kp.public)
}

// String returns the secret key string.
func (kp KeyPair) String() string {
	return kp.secret.String()
}

func (kp KeyPair) GoString() string {
	return kp.secret.GoString()
}
