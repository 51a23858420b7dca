package big

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/nearanywhere/encode"
)

type testBig struct {
	suite.Suite
}

func (t *testBig) TestAdd() {
	{
		a := NewBig(math.MaxUint64)
		b := NewBig(math.MaxUint64)

		c, ok := a.AddOK(b)
		t.True(ok)
		t.Equal("36893488147419103230", c.String())
		t.True(a.Equal(c.Sub(b)))
	}

	{
		_, ok := MaxBig.AddOK(NewBig(1))
		t.False(ok)
	}
}

func (t *testBig) TestSub() {
	c, ok := NewBig(math.MaxUint64).SubOK(NewBig(10))
	t.True(ok)
	t.Equal("18446744073709551605", c.String())

	_, ok = NewBig(10).SubOK(NewBig(11))
	t.False(ok)

	c, ok = NewBig(10).SubOK(NewBig(10))
	t.True(ok)
	t.True(c.IsZero())
}

func (t *testBig) TestMul() {
	_, ok := MaxBig.MulOK(NewBig(2))
	t.False(ok)

	c, ok := NewBig(3).MulOK(NewBig(4))
	t.True(ok)
	t.Equal("12", c.String())
}

func (t *testBig) TestParse() {
	a, err := ParseBig("1000000000000000000000000")
	t.NoError(err)
	t.Equal("1000000000000000000000000", a.String())

	_, err = ParseBig("-1")
	t.Error(err)

	_, err = ParseBig("340282366920938463463374607431768211456")
	t.Contains(err.Error(), "overflows")

	_, err = ParseBig("1e3")
	t.Error(err)
}

func (t *testBig) TestJSON() {
	a, _ := ParseBig("1000000000000000000000000")

	b, err := json.Marshal(a)
	t.NoError(err)
	t.Equal(`"1000000000000000000000000"`, string(b))

	var ua Big
	t.NoError(json.Unmarshal(b, &ua))
	t.True(a.Equal(ua))

	t.NoError(json.Unmarshal([]byte(`100`), &ua))
	t.Equal("100", ua.String())
}

func (t *testBig) TestBorsh() {
	a, _ := ParseBig("1000000000000000000000000")

	b, err := encode.Marshal(a)
	t.NoError(err)
	t.Equal(16, len(b))

	var ua Big
	t.NoError(encode.Unmarshal(b, &ua))
	t.True(a.Equal(ua))
}

func TestBig(t *testing.T) {
	suite.Run(t, new(testBig))
}
