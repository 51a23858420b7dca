package hash

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/spikeekips/nearanywhere/encode"
)

type testCryptoHash struct {
	suite.Suite
}

func (t *testCryptoHash) TestNew() {
	h := NewCryptoHash([]byte{})
	// sha256 of empty input
	t.Equal("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(h[:]))
	t.False(h.IsEmpty())
	t.True(EmptyCryptoHash.IsEmpty())
	t.Equal("11111111111111111111111111111111", EmptyCryptoHash.String())
}

func (t *testCryptoHash) TestString() {
	h := NewCryptoHash([]byte("show me"))

	uh, err := ParseCryptoHash(h.String())
	t.NoError(err)
	t.True(h.Equal(uh))

	_, err = ParseCryptoHash("0OIl")
	t.True(xerrors.Is(err, InvalidHashInputError))

	_, err = ParseCryptoHash("abc")
	t.True(xerrors.Is(err, InvalidHashInputError))
	t.Contains(err.Error(), "wrong length")
}

func (t *testCryptoHash) TestJSON() {
	h := NewCryptoHash([]byte("show me"))

	b, err := json.Marshal(map[string]CryptoHash{"hash": h})
	t.NoError(err)
	t.Equal(`{"hash":"`+h.String()+`"}`, string(b))

	var m map[string]CryptoHash
	t.NoError(json.Unmarshal(b, &m))
	t.Equal(h, m["hash"])
}

func (t *testCryptoHash) TestBorsh() {
	h := NewCryptoHash([]byte("show me"))

	b, err := encode.Marshal(h)
	t.NoError(err)
	t.Equal(h[:], b)

	var uh CryptoHash
	t.NoError(encode.Unmarshal(b, &uh))
	t.Equal(h, uh)

	err = encode.Unmarshal(b[:31], &uh)
	t.True(xerrors.Is(err, encode.DecodeFailedError))
}

type testHashable struct {
	s string
}

func (h testHashable) MarshalBorsh(w *encode.Writer) error {
	return w.WriteString(h.s)
}

func (t *testCryptoHash) TestMakeHash() {
	h, err := MakeHash(testHashable{s: "a"})
	t.NoError(err)
	t.Equal(NewCryptoHash([]byte{1, 0, 0, 0, 'a'}), h)
}

func TestCryptoHash(t *testing.T) {
	suite.Run(t, new(testCryptoHash))
}

