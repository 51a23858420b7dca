package element

import (
	"encoding/json"

	"github.com/spikeekips/nearanywhere/big"
	"github.com/spikeekips/nearanywhere/encode"
	"github.com/spikeekips/nearanywhere/hash"
	"github.com/spikeekips/nearanywhere/keypair"
)

// SystemAccountID is the predecessor of the receipts made by the protocol
// itself, like refunds.
const SystemAccountID = "system"

type ReceiptType uint8

const (
	ActionReceiptType ReceiptType = iota
	DataReceiptType
)

// ReceiptBody is either *ActionReceipt or *DataReceipt.
type ReceiptBody interface {
	encode.BorshMarshaler
	ReceiptType() ReceiptType
}

type Receipt struct {
	PredecessorID string          `json:"predecessor_id"`
	ReceiverID    string          `json:"receiver_id"`
	ReceiptID     hash.CryptoHash `json:"receipt_id"`
	Receipt       ReceiptBody     `json:"receipt"`
}

// NewBalanceRefundReceipt refunds the balance from the system. It does not
// refund the allowance of the access key.
func NewBalanceRefundReceipt(receiverID string, refund big.Big) Receipt {
	return Receipt{
		PredecessorID: SystemAccountID,
		ReceiverID:    receiverID,
		Receipt: &ActionReceipt{
			SignerID:        SystemAccountID,
			SignerPublicKey: keypair.EmptyPublicKey(keypair.ED25519),
			GasPrice:        big.ZeroBig,
			Actions:         Actions{Transfer{Deposit: refund}},
		},
	}
}

// NewGasRefundReceipt refunds gas; signerPublicKey indicates the access key
// whose allowance is refunded.
func NewGasRefundReceipt(receiverID string, refund big.Big, signerPublicKey keypair.PublicKey) Receipt {
	return Receipt{
		PredecessorID: SystemAccountID,
		ReceiverID:    receiverID,
		Receipt: &ActionReceipt{
			SignerID:        receiverID,
			SignerPublicKey: signerPublicKey,
			GasPrice:        big.ZeroBig,
			Actions:         Actions{Transfer{Deposit: refund}},
		},
	}
}

// GasCost is gas priced by gasPrice.
func GasCost(gas uint64, gasPrice big.Big) (big.Big, error) {
	c, ok := big.NewBig(gas).MulOK(gasPrice)
	if !ok {
		return big.Big{}, AmountOverflowError.Newf("gas=%d gas_price=%s", gas, gasPrice)
	}

	return c, nil
}

// NewGasRefundReceiptFromGas refunds the unused gas at the gas price of the
// transaction.
func NewGasRefundReceiptFromGas(
	receiverID string, gas uint64, gasPrice big.Big, signerPublicKey keypair.PublicKey,
) (Receipt, error) {
	refund, err := GasCost(gas, gasPrice)
	if err != nil {
		return Receipt{}, err
	}

	return NewGasRefundReceipt(receiverID, refund, signerPublicKey), nil
}

// Hash is the receipt id; it is not the hash of the content.
func (r Receipt) Hash() hash.CryptoHash {
	return r.ReceiptID
}

func (t ReceiptType) String() string {
	switch t {
	case ActionReceiptType:
		return "Action"
	case DataReceiptType:
		return "Data"
	default:
		return ""
	}
}

type receiptJSON struct {
	PredecessorID string                     `json:"predecessor_id"`
	ReceiverID    string                     `json:"receiver_id"`
	ReceiptID     hash.CryptoHash            `json:"receipt_id"`
	Receipt       map[string]json.RawMessage `json:"receipt"`
}

// MarshalJSON writes the body as {"Action": {..}} or {"Data": {..}}.
func (r Receipt) MarshalJSON() ([]byte, error) {
	if r.Receipt == nil {
		return nil, UnknownReceiptError.Newf("empty receipt body")
	}

	body, err := json.Marshal(r.Receipt)
	if err != nil {
		return nil, err
	}

	return json.Marshal(receiptJSON{
		PredecessorID: r.PredecessorID,
		ReceiverID:    r.ReceiverID,
		ReceiptID:     r.ReceiptID,
		Receipt:       map[string]json.RawMessage{r.Receipt.ReceiptType().String(): body},
	})
}

func (r *Receipt) UnmarshalJSON(b []byte) error {
	var rj receiptJSON
	if err := json.Unmarshal(b, &rj); err != nil {
		return err
	}

	n := Receipt{
		PredecessorID: rj.PredecessorID,
		ReceiverID:    rj.ReceiverID,
		ReceiptID:     rj.ReceiptID,
	}

	if body, found := rj.Receipt[ActionReceiptType.String()]; found {
		ar := new(ActionReceipt)
		if err := json.Unmarshal(body, ar); err != nil {
			return err
		}
		n.Receipt = ar
	} else if body, found := rj.Receipt[DataReceiptType.String()]; found {
		dr := new(DataReceipt)
		if err := json.Unmarshal(body, dr); err != nil {
			return err
		}
		n.Receipt = dr
	} else {
		return UnknownReceiptError.Newf("%s", string(b))
	}

	*r = n

	return nil
}

func (r Receipt) MarshalBorsh(w *encode.Writer) error {
	if err := w.WriteString(r.PredecessorID); err != nil {
		return err
	} else if err := w.WriteString(r.ReceiverID); err != nil {
		return err
	} else if err := r.ReceiptID.MarshalBorsh(w); err != nil {
		return err
	}

	if r.Receipt == nil {
		return UnknownReceiptError.Newf("empty receipt body")
	}

	w.WriteU8(uint8(r.Receipt.ReceiptType()))

	return r.Receipt.MarshalBorsh(w)
}

func (r *Receipt) UnmarshalBorsh(rd *encode.Reader) error {
	var n Receipt

	var err error
	if n.PredecessorID, err = rd.ReadString(); err != nil {
		return err
	} else if n.ReceiverID, err = rd.ReadString(); err != nil {
		return err
	} else if err = n.ReceiptID.UnmarshalBorsh(rd); err != nil {
		return err
	}

	t, err := rd.ReadU8()
	if err != nil {
		return err
	}

	switch ReceiptType(t) {
	case ActionReceiptType:
		ar := new(ActionReceipt)
		if err := ar.UnmarshalBorsh(rd); err != nil {
			return err
		}
		n.Receipt = ar
	case DataReceiptType:
		dr := new(DataReceipt)
		if err := dr.UnmarshalBorsh(rd); err != nil {
			return err
		}
		n.Receipt = dr
	default:
		return UnknownReceiptError.Newf("tag=%d", t)
	}

	*r = n

	return nil
}

type DataReceiver struct {
	DataID     hash.CryptoHash `json:"data_id"`
	ReceiverID string          `json:"receiver_id"`
}

func (d DataReceiver) MarshalBorsh(w *encode.Writer) error {
	if err := d.DataID.MarshalBorsh(w); err != nil {
		return err
	}

	return w.WriteString(d.ReceiverID)
}

func (d *DataReceiver) UnmarshalBorsh(r *encode.Reader) error {
	if err := d.DataID.UnmarshalBorsh(r); err != nil {
		return err
	}

	receiverID, err := r.ReadString()
	if err != nil {
		return err
	}

	d.ReceiverID = receiverID

	return nil
}

type ActionReceipt struct {
	SignerID            string            `json:"signer_id"`
	SignerPublicKey     keypair.PublicKey `json:"signer_public_key"`
	GasPrice            big.Big           `json:"gas_price"`
	OutputDataReceivers []DataReceiver    `json:"output_data_receivers"`
	InputDataIDs        []hash.CryptoHash `json:"input_data_ids"`
	Actions             Actions           `json:"actions"`
}

func (*ActionReceipt) ReceiptType() ReceiptType { return ActionReceiptType }

// MarshalJSON writes the empty lists as [], not null.
func (a ActionReceipt) MarshalJSON() ([]byte, error) {
	type actionReceipt ActionReceipt

	n := actionReceipt(a)
	if n.OutputDataReceivers == nil {
		n.OutputDataReceivers = []DataReceiver{}
	}

	if n.InputDataIDs == nil {
		n.InputDataIDs = []hash.CryptoHash{}
	}

	if n.Actions == nil {
		n.Actions = Actions{}
	}

	return json.Marshal(n)
}

func (a *ActionReceipt) MarshalBorsh(w *encode.Writer) error {
	if err := w.WriteString(a.SignerID); err != nil {
		return err
	} else if err := a.SignerPublicKey.MarshalBorsh(w); err != nil {
		return err
	} else if err := a.GasPrice.MarshalBorsh(w); err != nil {
		return err
	}

	if err := w.WriteLength(len(a.OutputDataReceivers)); err != nil {
		return err
	}

	for i := range a.OutputDataReceivers {
		if err := a.OutputDataReceivers[i].MarshalBorsh(w); err != nil {
			return err
		}
	}

	if err := w.WriteLength(len(a.InputDataIDs)); err != nil {
		return err
	}

	for i := range a.InputDataIDs {
		if err := a.InputDataIDs[i].MarshalBorsh(w); err != nil {
			return err
		}
	}

	return a.Actions.MarshalBorsh(w)
}

func (a *ActionReceipt) UnmarshalBorsh(r *encode.Reader) error {
	var n ActionReceipt

	var err error
	if n.SignerID, err = r.ReadString(); err != nil {
		return err
	} else if err = n.SignerPublicKey.UnmarshalBorsh(r); err != nil {
		return err
	} else if err = n.GasPrice.UnmarshalBorsh(r); err != nil {
		return err
	}

	l, err := r.ReadLength()
	if err != nil {
		return err
	}

	n.OutputDataReceivers = make([]DataReceiver, l)
	for i := 0; i < l; i++ {
		if err := n.OutputDataReceivers[i].UnmarshalBorsh(r); err != nil {
			return err
		}
	}

	if l, err = r.ReadLength(); err != nil {
		return err
	}

	n.InputDataIDs = make([]hash.CryptoHash, l)
	for i := 0; i < l; i++ {
		if err := n.InputDataIDs[i].UnmarshalBorsh(r); err != nil {
			return err
		}
	}

	if err := n.Actions.UnmarshalBorsh(r); err != nil {
		return err
	}

	*a = n

	return nil
}

type DataReceipt struct {
	DataID hash.CryptoHash `json:"data_id"`
	Data   []byte          `json:"data"`
}

func (*DataReceipt) ReceiptType() ReceiptType { return DataReceiptType }

// MarshalBorsh writes Data as an option; nil Data is none.
func (d *DataReceipt) MarshalBorsh(w *encode.Writer) error {
	if err := d.DataID.MarshalBorsh(w); err != nil {
		return err
	}

	w.WriteOption(d.Data != nil)
	if d.Data == nil {
		return nil
	}

	return w.WriteBytes(d.Data)
}

func (d *DataReceipt) UnmarshalBorsh(r *encode.Reader) error {
	var n DataReceipt
	if err := n.DataID.UnmarshalBorsh(r); err != nil {
		return err
	}

	some, err := r.ReadOption()
	if err != nil {
		return err
	}

	if some {
		b, err := r.ReadBytes()
		if err != nil {
			return err
		}

		n.Data = b
	}

	*d = n

	return nil
}
