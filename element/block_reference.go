package element

import (
	"encoding/json"

	"github.com/spikeekips/nearanywhere/hash"
)

type Finality string

const (
	FinalityOptimistic Finality = "optimistic"
	FinalityNearFinal  Finality = "near-final"
	FinalityFinal      Finality = "final"
)

func (f Finality) IsValid() error {
	switch f {
	case FinalityOptimistic, FinalityNearFinal, FinalityFinal:
		return nil
	default:
		return InvalidBlockReferenceError.Newf("unknown finality; %q", string(f))
	}
}

// BlockReference selects a block for the query methods, either by finality,
// by height or by hash.
type BlockReference struct {
	Finality Finality
	Height   *uint64
	Hash     *hash.CryptoHash
}

func BlockByFinality(f Finality) BlockReference {
	return BlockReference{Finality: f}
}

func BlockByHeight(height uint64) BlockReference {
	return BlockReference{Height: &height}
}

func BlockByHash(h hash.CryptoHash) BlockReference {
	return BlockReference{Hash: &h}
}

// Params returns the JSON-RPC params of the reference; the method specific
// params are merged into it.
func (b BlockReference) Params() map[string]interface{} {
	switch {
	case b.Height != nil:
		return map[string]interface{}{"block_id": *b.Height}
	case b.Hash != nil:
		return map[string]interface{}{"block_id": b.Hash.String()}
	case len(b.Finality) > 0:
		return map[string]interface{}{"finality": b.Finality}
	default:
		return map[string]interface{}{"finality": FinalityFinal}
	}
}

func (b BlockReference) IsValid() error {
	if b.Height != nil || b.Hash != nil || len(b.Finality) < 1 {
		return nil
	}

	return b.Finality.IsValid()
}

func (b BlockReference) MarshalJSON() ([]byte, error) {
	if err := b.IsValid(); err != nil {
		return nil, err
	}

	return json.Marshal(b.Params())
}
