package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testVersion struct {
	suite.Suite
}

func (t *testVersion) TestEncodeDecode() {
	v, err := NewVersion("0.1.2-proto+findme")
	t.NoError(err)

	b, err := json.Marshal(v)
	t.NoError(err)
	t.Equal(`"0.1.2-proto+findme"`, string(b))

	var nv Version
	t.NoError(json.Unmarshal(b, &nv))
	t.True(v.Equal(nv))
}

func (t *testVersion) TestCompare() {
	a := MustParseVersion("0.1.2")
	b := MustParseVersion("0.2.0")

	t.True(a.LessThan(b))
	t.False(b.LessThan(a))
	t.False(a.Equal(b))

	_, err := NewVersion("not-version")
	t.Error(err)
}

func TestVersion(t *testing.T) {
	suite.Run(t, new(testVersion))
}
