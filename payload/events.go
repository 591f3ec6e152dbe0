// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package payload

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/luxfi/teleport"
	"github.com/luxfi/teleport/types"
)

const (
	ProofOfBurnName       = "ProofOfBurn"
	ProofOfMintName       = "ProofOfMint"
	ApprovedBurnProofName = "ApprovedBurnProof"

	// sig | 4 addresses | amount | nonce | mint chain | burn chain | hash
	ProofOfBurnLen = teleport.SignatureLen + 4*types.AddressLen + 2*uint256Len + 2*chainLen + teleport.HashLen
	// ProofOfBurn without the nonce
	ProofOfMintLen       = ProofOfBurnLen - uint256Len
	ApprovedBurnProofLen = teleport.SignatureLen + teleport.HashLen
)

var (
	ProofOfBurnSig       = teleport.EventSignature(ProofOfBurnName)
	ProofOfMintSig       = teleport.EventSignature(ProofOfMintName)
	ApprovedBurnProofSig = teleport.EventSignature(ApprovedBurnProofName)

	ErrUnknownEvent = errors.New("unknown event signature")
)

// Event is a record appended to the emission log for relayers to pick up.
type Event interface {
	Name() string
	Bytes() []byte
}

var (
	_ Event = (*ProofOfBurn)(nil)
	_ Event = (*ProofOfMint)(nil)
	_ Event = (*ApprovedBurnProof)(nil)
)

// ProofOfBurn is emitted when tokens are burned locally and a proof is created
type ProofOfBurn struct {
	MintToken  types.Address
	BurnToken  types.Address
	MintCaller types.Address
	BurnCaller types.Address
	Amount     uint256.Int
	Nonce      uint256.Int
	MintChain  types.Chain
	BurnChain  types.Chain
	ProofHash  types.Hash
}

// NewProofOfBurn describes the burn of intent i under proof hash id.
func NewProofOfBurn(i *Intent, id types.Hash) *ProofOfBurn {
	return &ProofOfBurn{
		MintToken:  i.MintToken,
		BurnToken:  i.BurnToken,
		MintCaller: i.MintCaller,
		BurnCaller: i.BurnCaller,
		Amount:     i.Amount,
		Nonce:      i.Nonce,
		MintChain:  i.MintChain,
		BurnChain:  i.BurnChain,
		ProofHash:  id,
	}
}

func (*ProofOfBurn) Name() string { return ProofOfBurnName }

func (e *ProofOfBurn) Bytes() []byte {
	buf := make([]byte, 0, ProofOfBurnLen)
	buf = append(buf, ProofOfBurnSig[:]...)
	buf = appendTransfer(buf, e.MintToken, e.BurnToken, e.MintCaller, e.BurnCaller, &e.Amount)
	nonce := e.Nonce.Bytes32()
	buf = append(buf, nonce[:]...)
	buf = appendChain(buf, e.MintChain)
	buf = appendChain(buf, e.BurnChain)
	return append(buf, e.ProofHash[:]...)
}

// ProofOfMint is emitted when a relayed proof is executed locally
type ProofOfMint struct {
	MintToken  types.Address
	BurnToken  types.Address
	MintCaller types.Address
	BurnCaller types.Address
	Amount     uint256.Int
	MintChain  types.Chain
	BurnChain  types.Chain
	ProofHash  types.Hash
}

// NewProofOfMint describes the mint of intent i under proof hash id.
func NewProofOfMint(i *Intent, id types.Hash) *ProofOfMint {
	return &ProofOfMint{
		MintToken:  i.MintToken,
		BurnToken:  i.BurnToken,
		MintCaller: i.MintCaller,
		BurnCaller: i.BurnCaller,
		Amount:     i.Amount,
		MintChain:  i.MintChain,
		BurnChain:  i.BurnChain,
		ProofHash:  id,
	}
}

func (*ProofOfMint) Name() string { return ProofOfMintName }

func (e *ProofOfMint) Bytes() []byte {
	buf := make([]byte, 0, ProofOfMintLen)
	buf = append(buf, ProofOfMintSig[:]...)
	buf = appendTransfer(buf, e.MintToken, e.BurnToken, e.MintCaller, e.BurnCaller, &e.Amount)
	buf = appendChain(buf, e.MintChain)
	buf = appendChain(buf, e.BurnChain)
	return append(buf, e.ProofHash[:]...)
}

// ApprovedBurnProof is emitted when the approver approves a foreign proof
type ApprovedBurnProof struct {
	ProofHash types.Hash
}

func (*ApprovedBurnProof) Name() string { return ApprovedBurnProofName }

func (e *ApprovedBurnProof) Bytes() []byte {
	buf := make([]byte, 0, ApprovedBurnProofLen)
	buf = append(buf, ApprovedBurnProofSig[:]...)
	return append(buf, e.ProofHash[:]...)
}

func appendTransfer(buf []byte, mintToken, burnToken, mintCaller, burnCaller types.Address, amount *uint256.Int) []byte {
	buf = append(buf, mintToken[:]...)
	buf = append(buf, burnToken[:]...)
	buf = append(buf, mintCaller[:]...)
	buf = append(buf, burnCaller[:]...)
	a := amount.Bytes32()
	return append(buf, a[:]...)
}

// ParseEvent decodes an emitted record by its signature.
func ParseEvent(data []byte) (Event, error) {
	if len(data) < teleport.SignatureLen {
		return nil, fmt.Errorf("%w: record of %d bytes", teleport.ErrInvalidPackage, len(data))
	}

	sig := data[:teleport.SignatureLen]
	switch {
	case bytes.Equal(sig, ProofOfBurnSig[:]):
		return parseProofOfBurn(data)
	case bytes.Equal(sig, ProofOfMintSig[:]):
		return parseProofOfMint(data)
	case bytes.Equal(sig, ApprovedBurnProofSig[:]):
		if len(data) != ApprovedBurnProofLen {
			return nil, lengthError(ApprovedBurnProofName, len(data), ApprovedBurnProofLen)
		}
		e := &ApprovedBurnProof{}
		copy(e.ProofHash[:], data[teleport.SignatureLen:])
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %x", ErrUnknownEvent, sig)
	}
}

func parseProofOfBurn(data []byte) (*ProofOfBurn, error) {
	if len(data) != ProofOfBurnLen {
		return nil, lengthError(ProofOfBurnName, len(data), ProofOfBurnLen)
	}

	e := &ProofOfBurn{}
	offset := parseTransfer(data, &e.MintToken, &e.BurnToken, &e.MintCaller, &e.BurnCaller, &e.Amount)
	e.Nonce.SetBytes32(data[offset : offset+uint256Len])
	offset += uint256Len

	var err error
	if e.MintChain, err = parseChain(data[offset:]); err != nil {
		return nil, err
	}
	offset += chainLen
	if e.BurnChain, err = parseChain(data[offset:]); err != nil {
		return nil, err
	}
	offset += chainLen

	copy(e.ProofHash[:], data[offset:])
	return e, nil
}

func parseProofOfMint(data []byte) (*ProofOfMint, error) {
	if len(data) != ProofOfMintLen {
		return nil, lengthError(ProofOfMintName, len(data), ProofOfMintLen)
	}

	e := &ProofOfMint{}
	offset := parseTransfer(data, &e.MintToken, &e.BurnToken, &e.MintCaller, &e.BurnCaller, &e.Amount)

	var err error
	if e.MintChain, err = parseChain(data[offset:]); err != nil {
		return nil, err
	}
	offset += chainLen
	if e.BurnChain, err = parseChain(data[offset:]); err != nil {
		return nil, err
	}
	offset += chainLen

	copy(e.ProofHash[:], data[offset:])
	return e, nil
}

// parseTransfer reads the shared prefix after the signature and returns the
// offset of the next field.
func parseTransfer(data []byte, mintToken, burnToken, mintCaller, burnCaller *types.Address, amount *uint256.Int) int {
	offset := teleport.SignatureLen
	for _, addr := range []*types.Address{mintToken, burnToken, mintCaller, burnCaller} {
		copy(addr[:], data[offset:offset+types.AddressLen])
		offset += types.AddressLen
	}
	amount.SetBytes32(data[offset : offset+uint256Len])
	return offset + uint256Len
}

func lengthError(name string, got, want int) error {
	return fmt.Errorf("%w: %s record of %d bytes, want %d", teleport.ErrInvalidPackage, name, got, want)
}
