package element

import (
	"encoding/json"

	"github.com/spikeekips/nearanywhere/big"
	"github.com/spikeekips/nearanywhere/encode"
	"github.com/spikeekips/nearanywhere/keypair"
)

type ActionType uint8

const (
	CreateAccountActionType ActionType = iota
	DeployContractActionType
	FunctionCallActionType
	TransferActionType
	StakeActionType
	AddKeyActionType
	DeleteKeyActionType
	DeleteAccountActionType
)

func (t ActionType) String() string {
	switch t {
	case CreateAccountActionType:
		return "CreateAccount"
	case DeployContractActionType:
		return "DeployContract"
	case FunctionCallActionType:
		return "FunctionCall"
	case TransferActionType:
		return "Transfer"
	case StakeActionType:
		return "Stake"
	case AddKeyActionType:
		return "AddKey"
	case DeleteKeyActionType:
		return "DeleteKey"
	case DeleteAccountActionType:
		return "DeleteAccount"
	default:
		return ""
	}
}

func ParseActionType(s string) (ActionType, error) {
	for t := CreateAccountActionType; t <= DeleteAccountActionType; t++ {
		if t.String() == s {
			return t, nil
		}
	}

	return 0, UnknownActionError.Newf("name=%q", s)
}

// Action is one of the actions of a transaction. In borsh it is prefixed by
// the ActionType byte.
type Action interface {
	encode.BorshMarshaler
	Type() ActionType
}

type CreateAccount struct{}

func (CreateAccount) Type() ActionType { return CreateAccountActionType }

func (CreateAccount) MarshalBorsh(*encode.Writer) error { return nil }

type DeployContract struct {
	Code []byte `json:"code"`
}

func (DeployContract) Type() ActionType { return DeployContractActionType }

func (a DeployContract) MarshalBorsh(w *encode.Writer) error {
	return w.WriteBytes(a.Code)
}

type FunctionCall struct {
	MethodName string  `json:"method_name"`
	Args       []byte  `json:"args"`
	Gas        uint64  `json:"gas"`
	Deposit    big.Big `json:"deposit"`
}

func (FunctionCall) Type() ActionType { return FunctionCallActionType }

func (a FunctionCall) MarshalBorsh(w *encode.Writer) error {
	if err := w.WriteString(a.MethodName); err != nil {
		return err
	}

	if err := w.WriteBytes(a.Args); err != nil {
		return err
	}

	w.WriteU64(a.Gas)

	return a.Deposit.MarshalBorsh(w)
}

type Transfer struct {
	Deposit big.Big `json:"deposit"`
}

func (Transfer) Type() ActionType { return TransferActionType }

func (a Transfer) MarshalBorsh(w *encode.Writer) error {
	return a.Deposit.MarshalBorsh(w)
}

type Stake struct {
	Stake     big.Big           `json:"stake"`
	PublicKey keypair.PublicKey `json:"public_key"`
}

func (Stake) Type() ActionType { return StakeActionType }

func (a Stake) MarshalBorsh(w *encode.Writer) error {
	if err := a.Stake.MarshalBorsh(w); err != nil {
		return err
	}

	return a.PublicKey.MarshalBorsh(w)
}

type AddKey struct {
	PublicKey keypair.PublicKey `json:"public_key"`
	AccessKey AccessKey         `json:"access_key"`
}

func (AddKey) Type() ActionType { return AddKeyActionType }

func (a AddKey) MarshalBorsh(w *encode.Writer) error {
	if err := a.PublicKey.MarshalBorsh(w); err != nil {
		return err
	}

	return a.AccessKey.MarshalBorsh(w)
}

type DeleteKey struct {
	PublicKey keypair.PublicKey `json:"public_key"`
}

func (DeleteKey) Type() ActionType { return DeleteKeyActionType }

func (a DeleteKey) MarshalBorsh(w *encode.Writer) error {
	return a.PublicKey.MarshalBorsh(w)
}

type DeleteAccount struct {
	BeneficiaryID string `json:"beneficiary_id"`
}

func (DeleteAccount) Type() ActionType { return DeleteAccountActionType }

func (a DeleteAccount) MarshalBorsh(w *encode.Writer) error {
	return w.WriteString(a.BeneficiaryID)
}

func marshalActionBorsh(w *encode.Writer, a Action) error {
	w.WriteU8(uint8(a.Type()))

	return a.MarshalBorsh(w)
}

func unmarshalActionBorsh(r *encode.Reader) (Action, error) {
	t, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	switch ActionType(t) {
	case CreateAccountActionType:
		return CreateAccount{}, nil
	case DeployContractActionType:
		code, err := r.ReadBytes()
		if err != nil {
			return nil, err
		}

		return DeployContract{Code: code}, nil
	case FunctionCallActionType:
		var a FunctionCall
		if a.MethodName, err = r.ReadString(); err != nil {
			return nil, err
		} else if a.Args, err = r.ReadBytes(); err != nil {
			return nil, err
		} else if a.Gas, err = r.ReadU64(); err != nil {
			return nil, err
		} else if err := a.Deposit.UnmarshalBorsh(r); err != nil {
			return nil, err
		}

		return a, nil
	case TransferActionType:
		var a Transfer
		if err := a.Deposit.UnmarshalBorsh(r); err != nil {
			return nil, err
		}

		return a, nil
	case StakeActionType:
		var a Stake
		if err := a.Stake.UnmarshalBorsh(r); err != nil {
			return nil, err
		} else if err := a.PublicKey.UnmarshalBorsh(r); err != nil {
			return nil, err
		}

		return a, nil
	case AddKeyActionType:
		var a AddKey
		if err := a.PublicKey.UnmarshalBorsh(r); err != nil {
			return nil, err
		} else if err := a.AccessKey.UnmarshalBorsh(r); err != nil {
			return nil, err
		}

		return a, nil
	case DeleteKeyActionType:
		var a DeleteKey
		if err := a.PublicKey.UnmarshalBorsh(r); err != nil {
			return nil, err
		}

		return a, nil
	case DeleteAccountActionType:
		beneficiaryID, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		return DeleteAccount{BeneficiaryID: beneficiaryID}, nil
	default:
		return nil, UnknownActionError.Newf("tag=%d", t)
	}
}

// Actions keeps the order of actions; borsh writes the count first.
type Actions []Action

func (as Actions) MarshalBorsh(w *encode.Writer) error {
	if err := w.WriteLength(len(as)); err != nil {
		return err
	}

	for i := range as {
		if err := marshalActionBorsh(w, as[i]); err != nil {
			return err
		}
	}

	return nil
}

func (as *Actions) UnmarshalBorsh(r *encode.Reader) error {
	l, err := r.ReadLength()
	if err != nil {
		return err
	}

	n := make(Actions, l)
	for i := 0; i < l; i++ {
		if n[i], err = unmarshalActionBorsh(r); err != nil {
			return err
		}
	}

	*as = n

	return nil
}

// MarshalJSON follows the RPC form: "CreateAccount" for the action without
// fields, {"<ActionType>": {..}} for the others.
func (as Actions) MarshalJSON() ([]byte, error) {
	l := make([]interface{}, len(as))
	for i := range as {
		if as[i].Type() == CreateAccountActionType {
			l[i] = as[i].Type().String()
			continue
		}

		l[i] = map[string]Action{as[i].Type().String(): as[i]}
	}

	return json.Marshal(l)
}

func (as *Actions) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}

	n := make(Actions, len(raws))
	for i := range raws {
		a, err := unmarshalActionJSON(raws[i])
		if err != nil {
			return err
		}

		n[i] = a
	}

	*as = n

	return nil
}

func unmarshalActionJSON(b []byte) (Action, error) {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		t, err := ParseActionType(name)
		if err != nil {
			return nil, err
		}

		switch t {
		case CreateAccountActionType:
			return CreateAccount{}, nil
		default:
			return nil, UnknownActionError.Newf("action without body; name=%q", name)
		}
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	} else if len(m) != 1 {
		return nil, UnknownActionError.Newf("%s", string(b))
	}

	for name, body := range m {
		t, err := ParseActionType(name)
		if err != nil {
			return nil, err
		}

		return decodeActionJSON(t, body)
	}

	return nil, UnknownActionError.Newf("%s", string(b))
}

func decodeActionJSON(t ActionType, body []byte) (Action, error) {
	switch t {
	case CreateAccountActionType:
		return CreateAccount{}, nil
	case DeployContractActionType:
		var a DeployContract
		err := json.Unmarshal(body, &a)
		return a, err
	case FunctionCallActionType:
		var a FunctionCall
		err := json.Unmarshal(body, &a)
		return a, err
	case TransferActionType:
		var a Transfer
		err := json.Unmarshal(body, &a)
		return a, err
	case StakeActionType:
		var a Stake
		err := json.Unmarshal(body, &a)
		return a, err
	case AddKeyActionType:
		var a AddKey
		err := json.Unmarshal(body, &a)
		return a, err
	case DeleteKeyActionType:
		var a DeleteKey
		err := json.Unmarshal(body, &a)
		return a, err
	case DeleteAccountActionType:
		var a DeleteAccount
		err := json.Unmarshal(body, &a)
		return a, err
	default:
		return nil, UnknownActionError.Newf("tag=%d", t)
	}
}
