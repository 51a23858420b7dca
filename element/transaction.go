package element

import (
	"encoding/base64"

	"github.com/spikeekips/nearanywhere/encode"
	"github.com/spikeekips/nearanywhere/hash"
	"github.com/spikeekips/nearanywhere/keypair"
)

type Transaction struct {
	SignerID   string            `json:"signer_id"`
	PublicKey  keypair.PublicKey `json:"public_key"`
	Nonce      uint64            `json:"nonce"`
	ReceiverID string            `json:"receiver_id"`
	BlockHash  hash.CryptoHash   `json:"block_hash"`
	Actions    Actions           `json:"actions"`
}

func (t Transaction) IsValid() error {
	if len(t.SignerID) < 1 {
		return TransactionNotWellformedError.Newf("empty signer_id")
	} else if len(t.ReceiverID) < 1 {
		return TransactionNotWellformedError.Newf("empty receiver_id")
	}

	return nil
}

func (t Transaction) MarshalBorsh(w *encode.Writer) error {
	if err := w.WriteString(t.SignerID); err != nil {
		return err
	} else if err := t.PublicKey.MarshalBorsh(w); err != nil {
		return err
	}

	w.WriteU64(t.Nonce)

	if err := w.WriteString(t.ReceiverID); err != nil {
		return err
	} else if err := t.BlockHash.MarshalBorsh(w); err != nil {
		return err
	}

	return t.Actions.MarshalBorsh(w)
}

func (t *Transaction) UnmarshalBorsh(r *encode.Reader) error {
	var n Transaction

	var err error
	if n.SignerID, err = r.ReadString(); err != nil {
		return err
	} else if err = n.PublicKey.UnmarshalBorsh(r); err != nil {
		return err
	} else if n.Nonce, err = r.ReadU64(); err != nil {
		return err
	} else if n.ReceiverID, err = r.ReadString(); err != nil {
		return err
	} else if err = n.BlockHash.UnmarshalBorsh(r); err != nil {
		return err
	} else if err = n.Actions.UnmarshalBorsh(r); err != nil {
		return err
	}

	*t = n

	return nil
}

// Hash is the sha256 of the borsh encoded transaction; it is what the signer
// signs.
func (t Transaction) Hash() (hash.CryptoHash, error) {
	b, err := encode.Marshal(t)
	if err != nil {
		return hash.CryptoHash{}, err
	}

	return hash.NewCryptoHash(b), nil
}

type SignedTransaction struct {
	Transaction Transaction       `json:"transaction"`
	Signature   keypair.Signature `json:"signature"`
}

// SignTransaction signs the hash of the transaction. The public key of the
// transaction must be the one of kp.
func SignTransaction(tx Transaction, kp keypair.KeyPair) (SignedTransaction, error) {
	if err := tx.IsValid(); err != nil {
		return SignedTransaction{}, err
	}

	if !tx.PublicKey.Equal(kp.PublicKey()) {
		return SignedTransaction{}, TransactionNotWellformedError.Newf(
			"public key does not match; transaction=%s signer=%s", tx.PublicKey, kp.PublicKey(),
		)
	}

	h, err := tx.Hash()
	if err != nil {
		return SignedTransaction{}, err
	}

	sig, err := kp.Sign(h[:])
	if err != nil {
		return SignedTransaction{}, err
	}

	log.Debug("transaction signed", "hash", h, "signer", tx.SignerID, "nonce", tx.Nonce)

	return SignedTransaction{Transaction: tx, Signature: sig}, nil
}

func (st SignedTransaction) Hash() (hash.CryptoHash, error) {
	return st.Transaction.Hash()
}

func (st SignedTransaction) Verify() error {
	h, err := st.Transaction.Hash()
	if err != nil {
		return err
	}

	if !st.Signature.Verify(h[:], st.Transaction.PublicKey) {
		return InvalidSignatureError.Newf("hash=%s", h)
	}

	return nil
}

func (st SignedTransaction) MarshalBorsh(w *encode.Writer) error {
	if err := st.Transaction.MarshalBorsh(w); err != nil {
		return err
	}

	return st.Signature.MarshalBorsh(w)
}

func (st *SignedTransaction) UnmarshalBorsh(r *encode.Reader) error {
	var n SignedTransaction
	if err := n.Transaction.UnmarshalBorsh(r); err != nil {
		return err
	} else if err := n.Signature.UnmarshalBorsh(r); err != nil {
		return err
	}

	*st = n

	return nil
}

// Base64 is the payload of broadcast_tx_async and broadcast_tx_commit.
func (st SignedTransaction) Base64() (string, error) {
	b, err := encode.Marshal(st)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

func SignedTransactionFromBase64(s string) (SignedTransaction, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return SignedTransaction{}, encode.DecodeFailedError.New(err)
	}

	var st SignedTransaction
	if err := encode.Unmarshal(b, &st); err != nil {
		return SignedTransaction{}, err
	}

	return st, nil
}
