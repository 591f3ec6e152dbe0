// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package indexer

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/luxfi/teleport/state"
	"github.com/luxfi/teleport/types"
)

const (
	transfersName = "transfers"
	proofsName    = "proofs"
)

// TransferStatus is how far a transfer has progressed as seen from the
// indexed chain.
type TransferStatus uint8

const (
	TransferCreated TransferStatus = iota
	TransferBurned
	TransferApproved
	TransferExecuted
)

func (s TransferStatus) String() string {
	switch s {
	case TransferCreated:
		return "Created"
	case TransferBurned:
		return "Burned"
	case TransferApproved:
		return "Approved"
	case TransferExecuted:
		return "Executed"
	default:
		return "Unknown"
	}
}

// Transfer is keyed by proof hash
type Transfer struct {
	ID     types.Hash
	Status TransferStatus
}

type ProofKind uint8

const (
	ProofBurn ProofKind = iota
	ProofMint
)

func (k ProofKind) String() string {
	switch k {
	case ProofBurn:
		return "Burn"
	case ProofMint:
		return "Mint"
	default:
		return "Unknown"
	}
}

// Proof is one side of a transfer as recorded by a ProofOfBurn or
// ProofOfMint event. Addresses are rendered in their chain's format.
type Proof struct {
	ID   types.Hash
	Kind ProofKind
	// Nonce is only known for burns
	Nonce      *uint256.Int
	Src        uint32
	SrcType    uint8
	Dest       uint32
	DestType   uint8
	SrcCaller  string
	DestCaller string
	SrcToken   string
	DestToken  string
	Amount     *uint256.Int
	// Seq is the emission log position the proof was read from
	Seq uint64
}

// rlpCodec stores values with their RLP encoding.
type rlpCodec[V any] struct{}

func (rlpCodec[V]) Marshal(v *V) ([]byte, error) {
	return rlp.EncodeToBytes(v)
}

func (rlpCodec[V]) Unmarshal(b []byte) (*V, error) {
	v := new(V)
	if err := rlp.DecodeBytes(b, v); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return v, nil
}

func transfers(db database.Database) *state.KeyedMap[*Transfer] {
	return state.NewKeyedMap[*Transfer](db, transfersName, rlpCodec[Transfer]{}, nil)
}

func proofs(db database.Database) *state.KeyedMap[*Proof] {
	return state.NewKeyedMap[*Proof](db, proofsName, rlpCodec[Proof]{}, nil)
}

func proofKey(id types.Hash, kind ProofKind) string {
	return id.Hex() + "/" + kind.String()
}
