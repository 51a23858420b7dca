package keypair

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"sort"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

const (
	knownSecretKey = "ed25519:2LRHYvi3uHHsADkF8HFRyZXJX3BG7HuQpuHw1cWcYSrivxNo5y76vkPA4ezKixS3jQ7e2zCfi4zfXbNAP72j2Ntk"
	knownPublicKey = "ed25519:G9upgDmY9DPYvkxZrR52Foh7g351TKee1E4BJdCLfZaU"
)

var keyTypes = []KeyType{ED25519, SECP256K1}

type testKeyPair struct {
	suite.Suite
}

func (t *testKeyPair) newKeyPair(kt KeyType) KeyPair {
	kp, err := NewKeyPair(kt)
	t.NoError(err)

	return kp
}

// message returns what the curve signs: raw bytes for ed25519, a digest for
// secp256k1.
func (t *testKeyPair) message(kt KeyType, s string) []byte {
	if kt == SECP256K1 {
		h := sha256.Sum256([]byte(s))
		return h[:]
	}

	return []byte(s)
}

func (t *testKeyPair) TestKnownVector() {
	kp, err := ParseKeyPair(knownSecretKey)
	t.NoError(err)
	t.Equal(ED25519, kp.KeyType())
	t.Equal(knownPublicKey, kp.PublicKey().String())
	t.Equal(knownSecretKey, kp.String())
}

func (t *testKeyPair) TestDeterministicReader() {
	for _, kt := range keyTypes {
		seed := bytes.Repeat([]byte{0x07}, 64)

		a, err := NewKeyPairFromReader(kt, bytes.NewReader(seed))
		t.NoError(err)
		b, err := NewKeyPairFromReader(kt, bytes.NewReader(seed))
		t.NoError(err)

		t.True(a.SecretKey().Equal(b.SecretKey()))
		t.Equal(a.PublicKey(), b.PublicKey())
	}
}

func (t *testKeyPair) TestSignVerify() {
	for _, kt := range keyTypes {
		kp := t.newKeyPair(kt)
		other := t.newKeyPair(kt)

		m := t.message(kt, "showme")
		sig, err := kp.Sign(m)
		t.NoError(err)
		t.Equal(kt, sig.KeyType())

		t.True(sig.Verify(m, kp.PublicKey()))
		t.True(kp.Verify(m, sig))
		t.False(sig.Verify(t.message(kt, "findme"), kp.PublicKey()), kt.String())
		t.False(sig.Verify(m, other.PublicKey()), kt.String())
	}
}

func (t *testKeyPair) TestSignDigest() {
	for _, kt := range keyTypes {
		kp := t.newKeyPair(kt)

		m := []byte("a message longer than thirty two bytes, which must be hashed")
		sig, err := kp.SignDigest(m)
		t.NoError(err)
		t.True(kp.VerifyDigest(m, sig))
		t.False(kp.VerifyDigest([]byte("findme"), sig))
	}
}

func (t *testKeyPair) TestSecp256k1SignNeedsDigest() {
	kp := t.newKeyPair(SECP256K1)

	_, err := kp.Sign([]byte("showme"))
	t.True(xerrors.Is(err, InvalidDataError))

	var ie InvalidData
	t.True(xerrors.As(err, &ie))
	t.Equal(SECP256K1, ie.KeyType)
}

func (t *testKeyPair) TestCrossCurveVerify() {
	ed := t.newKeyPair(ED25519)
	sc := t.newKeyPair(SECP256K1)

	m := t.message(SECP256K1, "showme")

	edSig, err := ed.Sign(m)
	t.NoError(err)
	scSig, err := sc.Sign(m)
	t.NoError(err)

	t.False(edSig.Verify(m, sc.PublicKey()))
	t.False(scSig.Verify(m, ed.PublicKey()))
}

func (t *testKeyPair) TestSmallOrderPublicKey() {
	kp := t.newKeyPair(ED25519)
	sig, err := kp.Sign([]byte("showme"))
	t.NoError(err)

	// identity point
	var identity ED25519PublicKey
	identity[0] = 1

	t.False(sig.Verify([]byte("showme"), NewED25519PublicKey(identity)))
}

func (t *testKeyPair) TestPublicKeyBinary() {
	for _, kt := range keyTypes {
		pk := t.newKeyPair(kt).PublicKey()

		b, err := pk.MarshalBinary()
		t.NoError(err)
		t.Equal(pk.Len(), len(b))
		t.Equal(uint8(kt), b[0])

		var upk PublicKey
		t.NoError(upk.UnmarshalBinary(b))
		t.Equal(pk, upk)

		err = upk.UnmarshalBinary(b[:len(b)-1])
		t.True(xerrors.Is(err, InvalidLengthError))

		err = upk.UnmarshalBinary(append(b, 0))
		t.True(xerrors.Is(err, InvalidLengthError))
	}

	t.Equal(33, EmptyPublicKey(ED25519).Len())
	t.Equal(65, EmptyPublicKey(SECP256K1).Len())

	var upk PublicKey
	err := upk.UnmarshalBinary(append([]byte{2}, make([]byte, 32)...))
	t.True(xerrors.Is(err, UnknownKeyTypeError))
}

func (t *testKeyPair) TestSignatureBinary() {
	for _, kt := range keyTypes {
		kp := t.newKeyPair(kt)
		sig, err := kp.Sign(t.message(kt, "showme"))
		t.NoError(err)

		b, err := sig.MarshalBinary()
		t.NoError(err)
		t.Equal(sig.Len(), len(b))
		t.Equal(uint8(kt), b[0])

		var usig Signature
		t.NoError(usig.UnmarshalBinary(b))
		t.True(sig.Equal(usig))

		err = usig.UnmarshalBinary(b[:len(b)-1])
		t.True(xerrors.Is(err, InvalidLengthError))
	}
}

func (t *testKeyPair) TestString() {
	for _, kt := range keyTypes {
		kp := t.newKeyPair(kt)

		pk, err := ParsePublicKey(kp.PublicKey().String())
		t.NoError(err)
		t.Equal(kp.PublicKey(), pk)

		sk, err := ParseSecretKey(kp.SecretKey().String())
		t.NoError(err)
		t.True(kp.SecretKey().Equal(sk))

		sig, err := kp.Sign(t.message(kt, "showme"))
		t.NoError(err)
		usig, err := ParseSignature(sig.String())
		t.NoError(err)
		t.Equal(sig, usig)
	}
}

func (t *testKeyPair) TestParseWithoutPrefix() {
	pk, err := ParsePublicKey("G9upgDmY9DPYvkxZrR52Foh7g351TKee1E4BJdCLfZaU")
	t.NoError(err)
	t.Equal(knownPublicKey, pk.String())

	pk, err = ParsePublicKey("ED25519:G9upgDmY9DPYvkxZrR52Foh7g351TKee1E4BJdCLfZaU")
	t.NoError(err)
	t.Equal(knownPublicKey, pk.String())
}

func (t *testKeyPair) TestExactLength() {
	cases := []struct {
		kt       KeyType
		expected int
		parse    func(string) error
	}{
		{ED25519, ED25519PublicKeyLength, func(s string) error { _, err := ParsePublicKey(s); return err }},
		{SECP256K1, Secp256K1PublicKeyLength, func(s string) error { _, err := ParsePublicKey(s); return err }},
		{ED25519, ED25519SecretKeyLength, func(s string) error { _, err := ParseSecretKey(s); return err }},
		{SECP256K1, Secp256K1SecretKeyLength, func(s string) error { _, err := ParseSecretKey(s); return err }},
		{ED25519, ED25519SignatureLength, func(s string) error { _, err := ParseSignature(s); return err }},
		{SECP256K1, Secp256K1SignatureLength, func(s string) error { _, err := ParseSignature(s); return err }},
	}

	for _, c := range cases {
		for _, l := range []int{c.expected - 1, c.expected + 1} {
			s := c.kt.String() + ":" + base58.Encode(bytes.Repeat([]byte{0x01}, l))

			err := c.parse(s)
			t.True(xerrors.Is(err, InvalidLengthError), s)

			var le InvalidLength
			t.True(xerrors.As(err, &le))
			t.Equal(c.kt, le.KeyType)
			t.Equal(c.expected, le.Expected)
			t.Equal(l, le.Received)
		}
	}
}

func (t *testKeyPair) TestInvalidBase58() {
	_, err := ParsePublicKey("ed25519:0OIl")
	t.True(xerrors.Is(err, InvalidDataError))

	_, err = ParseSecretKey("secp256k1:0OIl")
	t.True(xerrors.Is(err, InvalidDataError))
}

func (t *testKeyPair) TestSecp256k1SecretKeyOutOfRange() {
	_, err := ParseSecretKey("secp256k1:" + base58.Encode(make([]byte, 32)))
	t.True(xerrors.Is(err, InvalidDataError))

	_, err = ParseSecretKey("secp256k1:" + base58.Encode(bytes.Repeat([]byte{0xff}, 32)))
	t.True(xerrors.Is(err, InvalidDataError))
}

func (t *testKeyPair) TestSignatureFromParts() {
	_, err := SignatureFromParts(ED25519, make([]byte, 63))
	t.True(xerrors.Is(err, InvalidDataError))

	_, err = SignatureFromParts(SECP256K1, make([]byte, 64))
	t.True(xerrors.Is(err, InvalidLengthError))

	sig, err := SignatureFromParts(SECP256K1, make([]byte, 65))
	t.NoError(err)
	t.Equal(SECP256K1, sig.KeyType())
}

func (t *testKeyPair) TestSecretKeyEqualIgnoresSuffix() {
	sk, err := ParseSecretKey(knownSecretKey)
	t.NoError(err)

	raw := sk.UnwrapED25519()
	raw[63] ^= 0xff

	other, err := SecretKeyFromBytes(ED25519, raw[:])
	t.NoError(err)

	t.True(sk.Equal(other))
	t.NotEqual(sk.String(), other.String())

	// printable forms of the ed25519 container carry the seed only
	t.Equal(base58.Encode(raw[:32]), raw.String())
	t.NotContains(sk.GoString(), raw.String())
}

func (t *testKeyPair) TestOrdering() {
	var hi ED25519PublicKey
	for i := range hi {
		hi[i] = 0xff
	}

	ed := NewED25519PublicKey(hi)
	sc := EmptyPublicKey(SECP256K1)

	t.Equal(-1, ed.Compare(sc))
	t.Equal(1, sc.Compare(ed))
	t.Equal(0, sc.Compare(EmptyPublicKey(SECP256K1)))

	keys := []PublicKey{sc, ed, EmptyPublicKey(ED25519)}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })
	t.Equal([]PublicKey{EmptyPublicKey(ED25519), ed, sc}, keys)
}

func (t *testKeyPair) TestMapKey() {
	a := t.newKeyPair(ED25519).PublicKey()
	b, err := ParsePublicKey(a.String())
	t.NoError(err)

	m := map[PublicKey]int{a: 1}
	t.Equal(1, m[b])

	_, found := m[EmptyPublicKey(SECP256K1)]
	t.False(found)
}

func (t *testKeyPair) TestUnwrap() {
	pk := EmptyPublicKey(ED25519)
	t.NotPanics(func() { pk.UnwrapED25519() })
	t.Panics(func() { pk.UnwrapSecp256K1() })

	sig, err := SignatureFromParts(SECP256K1, make([]byte, 65))
	t.NoError(err)
	t.Panics(func() { sig.UnwrapED25519() })
}

func (t *testKeyPair) TestJSON() {
	kp, err := ParseKeyPair(knownSecretKey)
	t.NoError(err)

	sig, err := kp.Sign([]byte("showme"))
	t.NoError(err)

	doc := struct {
		PublicKey PublicKey `json:"public_key"`
		SecretKey SecretKey `json:"secret_key"`
		Signature Signature `json:"signature"`
	}{
		PublicKey: kp.PublicKey(),
		SecretKey: kp.SecretKey(),
		Signature: sig,
	}

	b, err := json.Marshal(doc)
	t.NoError(err)
	t.Contains(string(b), `"public_key":"`+knownPublicKey+`"`)

	var udoc struct {
		PublicKey PublicKey `json:"public_key"`
		SecretKey SecretKey `json:"secret_key"`
		Signature Signature `json:"signature"`
	}
	t.NoError(json.Unmarshal(b, &udoc))
	t.Equal(doc.PublicKey, udoc.PublicKey)
	t.True(doc.SecretKey.Equal(udoc.SecretKey))
	t.Equal(doc.Signature, udoc.Signature)

	var pk PublicKey
	err = json.Unmarshal([]byte(`"ed25519:abc"`), &pk)
	t.True(xerrors.Is(err, InvalidLengthError))
}

func TestKeyPair(t *testing.T) {
	suite.Run(t, new(testKeyPair))
}
