package encode

import (
	"encoding/binary"
	"math"
	"math/big"
)

// BorshMarshaler writes itself in the borsh layout: little-endian integers,
// u32 length prefix for strings and vectors, one tag byte for enums and
// options, fixed arrays as raw bytes.
type BorshMarshaler interface {
	MarshalBorsh(*Writer) error
}

type BorshUnmarshaler interface {
	UnmarshalBorsh(*Reader) error
}

func Marshal(v BorshMarshaler) ([]byte, error) {
	w := NewWriter()
	if err := v.MarshalBorsh(w); err != nil {
		return nil, EncodeFailedError.New(err)
	}

	return w.Bytes(), nil
}

// Unmarshal decodes b into v; every byte of b must be consumed.
func Unmarshal(b []byte, v BorshUnmarshaler) error {
	r := NewReader(b)
	if err := v.UnmarshalBorsh(r); err != nil {
		return err
	}

	if r.Len() > 0 {
		return DecodeFailedError.Newf("trailing bytes; length=%d", r.Len())
	}

	return nil
}

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

type Writer struct {
	b []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Bytes() []byte {
	return w.b
}

func (w *Writer) Len() int {
	return len(w.b)
}

func (w *Writer) WriteU8(v uint8) {
	w.b = append(w.b, v)
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
		return
	}

	w.WriteU8(0)
}

func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.b = append(w.b, b[:]...)
}

func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.b = append(w.b, b[:]...)
}

func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.b = append(w.b, b[:]...)
}

// WriteU128 writes v as 16 little-endian bytes. nil is written as zero.
func (w *Writer) WriteU128(v *big.Int) error {
	var b [16]byte
	if v != nil {
		if v.Sign() < 0 {
			return EncodeFailedError.Newf("negative u128; value=%s", v.String())
		} else if v.Cmp(maxU128) > 0 {
			return EncodeFailedError.Newf("u128 overflow; value=%s", v.String())
		}

		be := v.Bytes()
		for i, c := range be {
			b[len(be)-1-i] = c
		}
	}

	w.b = append(w.b, b[:]...)

	return nil
}

// WriteFixed writes b as it is, without length.
func (w *Writer) WriteFixed(b []byte) {
	w.b = append(w.b, b...)
}

func (w *Writer) WriteLength(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return EncodeFailedError.Newf("length overflow; length=%d", n)
	}

	w.WriteU32(uint32(n))

	return nil
}

func (w *Writer) WriteBytes(b []byte) error {
	if err := w.WriteLength(len(b)); err != nil {
		return err
	}

	w.WriteFixed(b)

	return nil
}

func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

func (w *Writer) WriteStrings(s []string) error {
	if err := w.WriteLength(len(s)); err != nil {
		return err
	}

	for i := range s {
		if err := w.WriteString(s[i]); err != nil {
			return err
		}
	}

	return nil
}

// WriteOption writes the option tag; the caller writes the value after it
// when some is true.
func (w *Writer) WriteOption(some bool) {
	w.WriteBool(some)
}

func (w *Writer) Write(v BorshMarshaler) error {
	return v.MarshalBorsh(w)
}

type Reader struct {
	b      []byte
	offset int
}

func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.b) - r.offset
}

func (r *Reader) Offset() int {
	return r.offset
}

func (r *Reader) ReadFixed(n int) ([]byte, error) {
	if n < 0 {
		return nil, DecodeFailedError.Newf("negative length; length=%d", n)
	} else if r.Len() < n {
		return nil, DecodeFailedError.Newf(
			"not enough bytes; offset=%d expected=%d remains=%d", r.offset, n, r.Len(),
		)
	}

	b := make([]byte, n)
	copy(b, r.b[r.offset:r.offset+n])
	r.offset += n

	return b, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadFixed(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, DecodeFailedError.Newf("invalid bool; value=%d", v)
	}
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadFixed(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadFixed(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.ReadFixed(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadU128() (*big.Int, error) {
	b, err := r.ReadFixed(16)
	if err != nil {
		return nil, err
	}

	be := make([]byte, 16)
	for i := range b {
		be[15-i] = b[i]
	}

	return new(big.Int).SetBytes(be), nil
}

func (r *Reader) ReadLength() (int, error) {
	l, err := r.ReadU32()
	if err != nil {
		return 0, err
	}

	if int64(l) > int64(r.Len()) && l > 0 {
		// every element occupies at least one byte, so a length beyond the
		// remaining bytes can not be valid.
		return 0, DecodeFailedError.Newf("length exceeds remains; length=%d remains=%d", l, r.Len())
	}

	return int(l), nil
}

func (r *Reader) ReadBytes() ([]byte, error) {
	l, err := r.ReadLength()
	if err != nil {
		return nil, err
	}

	return r.ReadFixed(l)
}

func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (r *Reader) ReadStrings() ([]string, error) {
	l, err := r.ReadLength()
	if err != nil {
		return nil, err
	}

	s := make([]string, l)
	for i := 0; i < l; i++ {
		if s[i], err = r.ReadString(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ReadOption reads the option tag.
func (r *Reader) ReadOption() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, DecodeFailedError.Newf("invalid option tag; tag=%d", v)
	}
}

func (r *Reader) Read(v BorshUnmarshaler) error {
	return v.UnmarshalBorsh(r)
}
