package big

import (
	"encoding/json"
	"math/big"

	"golang.org/x/xerrors"

	"github.com/spikeekips/nearanywhere/encode"
)

var (
	ZeroBigInt *big.Int = new(big.Int).SetInt64(0)
	ZeroBig    Big      = NewBig(0)
	MaxBig     Big      = Big{Int: *new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))}
)

// Big is an unsigned 128 bit amount, like balance, deposit and gas price.
// In JSON it is a decimal string.
type Big struct {
	big.Int
}

func NewBig(i uint64) Big {
	var a big.Int
	a.SetUint64(i)

	return Big{Int: a}
}

func ParseBig(s string) (Big, error) {
	var a big.Int
	if _, ok := a.SetString(s, 10); !ok {
		return Big{}, xerrors.Errorf("invalid number string: %q", s)
	}

	b := Big{Int: a}
	if err := b.IsValid(); err != nil {
		return Big{}, err
	}

	return b, nil
}

func (a Big) IsValid() error {
	if a.Int.Sign() < 0 {
		return xerrors.Errorf("negative value: %s", a.String())
	} else if a.Int.Cmp(&MaxBig.Int) > 0 {
		return xerrors.Errorf("value overflows u128: %s", a.String())
	}

	return nil
}

func (a Big) MarshalBorsh(w *encode.Writer) error {
	return w.WriteU128(&a.Int)
}

func (a *Big) UnmarshalBorsh(r *encode.Reader) error {
	i, err := r.ReadU128()
	if err != nil {
		return err
	}

	*a = Big{Int: *i}

	return nil
}

func (a Big) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a decimal string or a plain number.
func (a *Big) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		s = n.String()
	}

	p, err := ParseBig(s)
	if err != nil {
		return err
	}

	*a = p

	return nil
}

func (a Big) String() string {
	return (&a.Int).String()
}

func (a Big) Add(n Big) Big {
	b, _ := a.AddOK(n)
	return b
}

// AddOK returns false when the sum overflows u128.
func (a Big) AddOK(n Big) (Big, bool) {
	var b big.Int
	b.Add(&a.Int, &n.Int)
	if b.Cmp(&MaxBig.Int) > 0 {
		return Big{}, false
	}

	return Big{Int: b}, true
}

func (a Big) Sub(n Big) Big {
	b, _ := a.SubOK(n)
	return b
}

func (a Big) SubOK(n Big) (Big, bool) {
	switch a.Int.Cmp(&n.Int) {
	case -1:
		return Big{}, false
	case 0:
		return ZeroBig, true
	}

	var b big.Int
	b.Sub(&a.Int, &n.Int)
	return Big{Int: b}, true
}

func (a Big) MulOK(n Big) (Big, bool) {
	var b big.Int
	b.Mul(&a.Int, &n.Int)
	if b.Cmp(&MaxBig.Int) > 0 {
		return Big{}, false
	}

	return Big{Int: b}, true
}

func (a Big) IsZero() bool {
	return a.Int.Cmp(ZeroBigInt) == 0
}

func (a Big) Cmp(b Big) int {
	return a.Int.Cmp(&b.Int)
}

func (a Big) Equal(b Big) bool {
	return a.Int.Cmp(&b.Int) == 0
}
