package element

import (
	"encoding/json"

	"github.com/spikeekips/nearanywhere/big"
	"github.com/spikeekips/nearanywhere/encode"
)

type AccessKeyPermissionType uint8

const (
	FunctionCallPermissionType AccessKeyPermissionType = iota
	FullAccessPermissionType
)

// AccessKeyPermission is either FunctionCall, which limits the key to the
// methods of one receiver, or FullAccess.
type AccessKeyPermission struct {
	FunctionCall *FunctionCallPermission
}

func FullAccessPermission() AccessKeyPermission {
	return AccessKeyPermission{}
}

func NewFunctionCallPermission(allowance *big.Big, receiverID string, methodNames []string) AccessKeyPermission {
	return AccessKeyPermission{
		FunctionCall: &FunctionCallPermission{
			Allowance:   allowance,
			ReceiverID:  receiverID,
			MethodNames: methodNames,
		},
	}
}

func (p AccessKeyPermission) Type() AccessKeyPermissionType {
	if p.FunctionCall == nil {
		return FullAccessPermissionType
	}

	return FunctionCallPermissionType
}

func (p AccessKeyPermission) IsFullAccess() bool {
	return p.FunctionCall == nil
}

func (p AccessKeyPermission) MarshalBorsh(w *encode.Writer) error {
	w.WriteU8(uint8(p.Type()))
	if p.FunctionCall == nil {
		return nil
	}

	return p.FunctionCall.MarshalBorsh(w)
}

func (p *AccessKeyPermission) UnmarshalBorsh(r *encode.Reader) error {
	t, err := r.ReadU8()
	if err != nil {
		return err
	}

	switch AccessKeyPermissionType(t) {
	case FullAccessPermissionType:
		*p = FullAccessPermission()
	case FunctionCallPermissionType:
		var fc FunctionCallPermission
		if err := fc.UnmarshalBorsh(r); err != nil {
			return err
		}
		*p = AccessKeyPermission{FunctionCall: &fc}
	default:
		return UnknownAccessKeyPermissionError.Newf("tag=%d", t)
	}

	return nil
}

// MarshalJSON follows the RPC form: "FullAccess" or {"FunctionCall": {..}}.
func (p AccessKeyPermission) MarshalJSON() ([]byte, error) {
	if p.FunctionCall == nil {
		return json.Marshal("FullAccess")
	}

	return json.Marshal(map[string]interface{}{"FunctionCall": p.FunctionCall})
}

func (p *AccessKeyPermission) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "FullAccess" {
			return UnknownAccessKeyPermissionError.Newf("%q", s)
		}

		*p = FullAccessPermission()

		return nil
	}

	var m struct {
		FunctionCall *FunctionCallPermission `json:"FunctionCall"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	} else if m.FunctionCall == nil {
		return UnknownAccessKeyPermissionError.Newf("%s", string(b))
	}

	*p = AccessKeyPermission{FunctionCall: m.FunctionCall}

	return nil
}

type FunctionCallPermission struct {
	Allowance   *big.Big `json:"allowance"`
	ReceiverID  string   `json:"receiver_id"`
	MethodNames []string `json:"method_names"`
}

func (p FunctionCallPermission) MarshalBorsh(w *encode.Writer) error {
	w.WriteOption(p.Allowance != nil)
	if p.Allowance != nil {
		if err := p.Allowance.MarshalBorsh(w); err != nil {
			return err
		}
	}

	if err := w.WriteString(p.ReceiverID); err != nil {
		return err
	}

	return w.WriteStrings(p.MethodNames)
}

func (p *FunctionCallPermission) UnmarshalBorsh(r *encode.Reader) error {
	some, err := r.ReadOption()
	if err != nil {
		return err
	}

	var allowance *big.Big
	if some {
		allowance = new(big.Big)
		if err := allowance.UnmarshalBorsh(r); err != nil {
			return err
		}
	}

	receiverID, err := r.ReadString()
	if err != nil {
		return err
	}

	methodNames, err := r.ReadStrings()
	if err != nil {
		return err
	}

	p.Allowance = allowance
	p.ReceiverID = receiverID
	p.MethodNames = methodNames

	return nil
}

type AccessKey struct {
	Nonce      uint64              `json:"nonce"`
	Permission AccessKeyPermission `json:"permission"`
}

func FullAccessKey() AccessKey {
	return AccessKey{Permission: FullAccessPermission()}
}

func (a AccessKey) MarshalBorsh(w *encode.Writer) error {
	w.WriteU64(a.Nonce)

	return a.Permission.MarshalBorsh(w)
}

func (a *AccessKey) UnmarshalBorsh(r *encode.Reader) error {
	nonce, err := r.ReadU64()
	if err != nil {
		return err
	}

	var p AccessKeyPermission
	if err := p.UnmarshalBorsh(r); err != nil {
		return err
	}

	a.Nonce = nonce
	a.Permission = p

	return nil
}
