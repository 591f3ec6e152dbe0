// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/teleport"
	"github.com/luxfi/teleport/payload"
	"github.com/luxfi/teleport/types"
)

var (
	evmChain  = types.Chain{Type: types.ChainTypeEvm, ID: 1337}
	peerChain = types.Chain{Type: types.ChainTypeNative, ID: 2020}
)

type recordingNotifier struct {
	lock   sync.Mutex
	events []payload.Event
}

func (r *recordingNotifier) Notify(_ context.Context, _ uint64, e payload.Event) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, e)
}

type testEnv struct {
	bridge   *Bridge
	approver ids.ID
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T, chain types.Chain) *testEnv {
	t.Helper()

	env := &testEnv{
		approver: ids.GenerateTestID(),
		notifier: &recordingNotifier{},
	}
	b, err := New(memdb.New(), Config{
		Chain:      chain,
		Approver:   env.approver,
		Logger:     logging.NoLog{},
		Registerer: prometheus.NewRegistry(),
		Notifier:   env.notifier,
	})
	require.NoError(t, err)
	env.bridge = b
	return env
}

func (e *testEnv) allow(t *testing.T, a, b payload.Side) {
	t.Helper()
	require.NoError(t, e.bridge.SetAllowance(context.Background(), e.approver, SetAllowanceRequest{
		MintToken:     a.Token.Bytes(),
		BurnToken:     b.Token.Bytes(),
		MintChainType: uint8(a.Chain.Type),
		MintChainID:   a.Chain.ID,
		BurnChainType: uint8(b.Chain.Type),
		BurnChainID:   b.Chain.ID,
	}))
}

func (e *testEnv) credit(t *testing.T, token, account ids.ID, amount uint64) {
	t.Helper()
	require.NoError(t, e.bridge.Credit(context.Background(), e.approver, token, account, uint256.NewInt(amount)))
}

func (e *testEnv) balance(t *testing.T, token, account ids.ID) uint64 {
	t.Helper()
	balance, err := e.bridge.Balance(types.FromNative(token), types.FromNative(account))
	require.NoError(t, err)
	return balance.Uint64()
}

func (e *testEnv) events(t *testing.T) []payload.Event {
	t.Helper()
	records, err := e.bridge.Events(0, 100)
	require.NoError(t, err)
	parsed := make([]payload.Event, 0, len(records))
	for _, r := range records {
		ev, err := payload.ParseEvent(r.Data)
		require.NoError(t, err)
		parsed = append(parsed, ev)
	}
	return parsed
}

func TestNew(t *testing.T) {
	require := require.New(t)

	_, err := New(memdb.New(), Config{Chain: types.Chain{Type: types.ChainTypeUndefined}, Approver: ids.GenerateTestID()})
	require.ErrorIs(err, teleport.ErrUnknownChain)

	_, err = New(memdb.New(), Config{Chain: DefaultChain})
	require.Error(err)

	b, err := New(memdb.New(), Config{Chain: DefaultChain, Approver: ids.GenerateTestID()})
	require.NoError(err)
	require.Equal(DefaultChain, b.Chain())
}

// Burn on a route with an allowance entry.
func TestBurnAndCreateProof(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t, DefaultChain)
	tokenX := ids.GenerateTestID()
	tokenY := types.FromEVM(common.HexToAddress("0x00000000000000000000000000000000000000aa"))
	holder := ids.GenerateTestID()
	recipient := types.FromEVM(common.HexToAddress("0x00000000000000000000000000000000000000bb"))

	env.allow(t,
		payload.Side{Chain: DefaultChain, Token: types.FromNative(tokenX)},
		payload.Side{Chain: evmChain, Token: tokenY},
	)
	env.credit(t, tokenX, holder, 5000)

	hash, err := env.bridge.BurnAndCreateProof(ctx, holder, BurnRequest{
		BurnToken:     tokenX,
		MintToken:     tokenY.Bytes(),
		MintCaller:    recipient.Bytes(),
		MintChainType: uint8(types.ChainTypeEvm),
		MintChainID:   1337,
		Amount:        uint256.NewInt(1000),
	})
	require.NoError(err)

	require.Equal(uint64(4000), env.balance(t, tokenX, holder))

	nonce, err := env.bridge.Nonce(types.FromNative(tokenX))
	require.NoError(err)
	require.Equal(uint64(1), nonce.Uint64())

	s, err := env.bridge.ProofState(hash)
	require.NoError(err)
	require.Equal(types.ProofStateBurned, s)

	intent := &payload.Intent{
		MintCaller: recipient,
		BurnCaller: types.FromNative(holder),
		MintToken:  tokenY,
		BurnToken:  types.FromNative(tokenX),
		Amount:     *uint256.NewInt(1000),
		MintChain:  evmChain,
		BurnChain:  DefaultChain,
	}
	expected, err := intent.ID()
	require.NoError(err)
	require.Equal(expected, hash)

	emitted := env.events(t)
	require.Len(emitted, 1)
	burn, ok := emitted[0].(*payload.ProofOfBurn)
	require.True(ok)
	require.True(burn.Nonce.IsZero())
	require.Equal(hash, burn.ProofHash)
	require.Equal(uint64(1000), burn.Amount.Uint64())
	require.Equal(evmChain, burn.MintChain)
	require.Equal(DefaultChain, burn.BurnChain)

	require.Equal([]payload.Event{burn}, env.notifier.events)
	require.Equal(1.0, testutil.ToFloat64(env.bridge.metrics.successfulOperationCount.WithLabelValues(opBurn)))
}

func TestBurnEmitsRecordLayout(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultChain)
	tokenX := ids.GenerateTestID()
	tokenY := types.FromEVM(common.HexToAddress("0x00000000000000000000000000000000000000aa"))
	holder := ids.GenerateTestID()
	recipient := types.FromEVM(common.HexToAddress("0x00000000000000000000000000000000000000bb"))

	env.allow(t,
		payload.Side{Chain: DefaultChain, Token: types.FromNative(tokenX)},
		payload.Side{Chain: evmChain, Token: tokenY},
	)
	env.credit(t, tokenX, holder, 5000)

	hash, err := env.bridge.BurnAndCreateProof(context.Background(), holder, BurnRequest{
		BurnToken:     tokenX,
		MintToken:     tokenY.Bytes(),
		MintCaller:    recipient.Bytes(),
		MintChainType: uint8(types.ChainTypeEvm),
		MintChainID:   1337,
		Amount:        uint256.NewInt(1000),
	})
	require.NoError(err)

	records, err := env.bridge.Events(0, 10)
	require.NoError(err)
	require.Len(records, 1)
	require.Zero(records[0].Seq)

	evmPadded := func(last byte) []byte {
		return append(make([]byte, 39), last)
	}
	nativePadded := func(id ids.ID) []byte {
		return append(make([]byte, 8), id[:]...)
	}

	var expected []byte
	expected = append(expected, 0xc5, 0xe1, 0x9c, 0x70)
	expected = append(expected, evmPadded(0xaa)...)      // mint token
	expected = append(expected, nativePadded(tokenX)...) // burn token
	expected = append(expected, evmPadded(0xbb)...)      // mint caller
	expected = append(expected, nativePadded(holder)...) // burn caller
	expected = append(expected, make([]byte, 30)...)     // amount
	expected = append(expected, 0x03, 0xe8)
	expected = append(expected, make([]byte, 32)...) // nonce 0
	expected = append(expected, 0x01, 0x00, 0x00, 0x05, 0x39)
	expected = append(expected, 0x02, 0x00, 0x00, 0x03, 0xf2)
	expected = append(expected, hash[:]...)

	data := records[0].Data
	require.Len(data, 270)
	require.Equal(expected, data)
	require.Equal(make([]byte, 32), data[196:228])
	require.Equal(hash[:], data[238:])
}

func TestBurnNonceMonotonic(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t, DefaultChain)
	token := ids.GenerateTestID()
	holder := ids.GenerateTestID()
	tokenY := types.FromNative(ids.GenerateTestID())

	env.allow(t,
		payload.Side{Chain: DefaultChain, Token: types.FromNative(token)},
		payload.Side{Chain: peerChain, Token: tokenY},
	)
	env.credit(t, token, holder, 100)

	req := BurnRequest{
		BurnToken:     token,
		MintToken:     tokenY.Bytes(),
		MintCaller:    types.FromNative(holder).Bytes(),
		MintChainType: uint8(peerChain.Type),
		MintChainID:   peerChain.ID,
		Amount:        uint256.NewInt(10),
	}

	seen := make(map[types.Hash]struct{})
	for i := uint64(0); i < 3; i++ {
		hash, err := env.bridge.BurnAndCreateProof(ctx, holder, req)
		require.NoError(err)
		seen[hash] = struct{}{}

		nonce, err := env.bridge.Nonce(types.FromNative(token))
		require.NoError(err)
		require.Equal(i+1, nonce.Uint64())
	}
	// identical requests get distinct proofs
	require.Len(seen, 3)

	for i, ev := range env.events(t) {
		require.Equal(uint64(i), ev.(*payload.ProofOfBurn).Nonce.Uint64())
	}
}

// Burn attempt on a route with no allowance entry.
func TestBurnWithoutAllowance(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultChain)
	token := ids.GenerateTestID()
	holder := ids.GenerateTestID()
	env.credit(t, token, holder, 5000)

	_, err := env.bridge.BurnAndCreateProof(context.Background(), holder, BurnRequest{
		BurnToken:     token,
		MintToken:     types.FromNative(ids.GenerateTestID()).Bytes(),
		MintCaller:    types.FromNative(holder).Bytes(),
		MintChainType: uint8(types.ChainTypeEvm),
		MintChainID:   1337,
		Amount:        uint256.NewInt(1000),
	})
	require.ErrorIs(err, teleport.ErrAllowanceNotFound)

	require.Equal(uint64(5000), env.balance(t, token, holder))
	nonce, err := env.bridge.Nonce(types.FromNative(token))
	require.NoError(err)
	require.True(nonce.IsZero())
	require.Empty(env.events(t))
	require.Empty(env.notifier.events)
	require.Equal(1.0, testutil.ToFloat64(
		env.bridge.metrics.failedOperationCount.WithLabelValues(opBurn, teleport.ErrAllowanceNotFound.Message),
	))
}

func TestBurnFailuresLeaveNoTrace(t *testing.T) {
	token := ids.GenerateTestID()
	holder := ids.GenerateTestID()
	tokenY := types.FromNative(ids.GenerateTestID())

	valid := func() BurnRequest {
		return BurnRequest{
			BurnToken:     token,
			MintToken:     tokenY.Bytes(),
			MintCaller:    types.FromNative(holder).Bytes(),
			MintChainType: uint8(peerChain.Type),
			MintChainID:   peerChain.ID,
			Amount:        uint256.NewInt(10),
		}
	}

	tests := []struct {
		name        string
		mutate      func(r *BurnRequest)
		expectedErr error
	}{
		{
			name:        "amount exceeds balance",
			mutate:      func(r *BurnRequest) { r.Amount = uint256.NewInt(101) },
			expectedErr: teleport.ErrAmountExceeded,
		},
		{
			name:        "short mint token",
			mutate:      func(r *BurnRequest) { r.MintToken = r.MintToken[1:] },
			expectedErr: teleport.ErrInvalidTokenLength,
		},
		{
			name:        "long mint caller",
			mutate:      func(r *BurnRequest) { r.MintCaller = append(r.MintCaller, 0) },
			expectedErr: teleport.ErrInvalidCallerLength,
		},
		{
			name:        "unknown chain",
			mutate:      func(r *BurnRequest) { r.MintChainType = 7 },
			expectedErr: teleport.ErrUnknownChain,
		},
		{
			name:        "wrong chain id",
			mutate:      func(r *BurnRequest) { r.MintChainID++ },
			expectedErr: teleport.ErrAllowanceNotFound,
		},
		{
			name:        "missing amount",
			mutate:      func(r *BurnRequest) { r.Amount = nil },
			expectedErr: teleport.ErrInvalidPackage,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			env := newTestEnv(t, DefaultChain)
			env.allow(t,
				payload.Side{Chain: DefaultChain, Token: types.FromNative(token)},
				payload.Side{Chain: peerChain, Token: tokenY},
			)
			env.credit(t, token, holder, 100)

			req := valid()
			test.mutate(&req)
			_, err := env.bridge.BurnAndCreateProof(context.Background(), holder, req)
			require.ErrorIs(err, test.expectedErr)

			require.Equal(uint64(100), env.balance(t, token, holder))
			nonce, err := env.bridge.Nonce(types.FromNative(token))
			require.NoError(err)
			require.True(nonce.IsZero())
			require.Empty(env.events(t))
		})
	}
}

func TestApproveBurnProof(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t, peerChain)
	hash := types.Hash{0xde, 0xad}

	err := env.bridge.ApproveBurnProof(ctx, ids.GenerateTestID(), hash.Uint256())
	require.ErrorIs(err, teleport.ErrMissingApproverRole)

	require.NoError(env.bridge.ApproveBurnProof(ctx, env.approver, hash.Uint256()))
	s, err := env.bridge.ProofState(hash)
	require.NoError(err)
	require.Equal(types.ProofStateApproved, s)

	err = env.bridge.ApproveBurnProof(ctx, env.approver, hash.Uint256())
	require.ErrorIs(err, teleport.ErrAlreadyApproved)

	require.Equal([]payload.Event{&payload.ApprovedBurnProof{ProofHash: hash}}, env.events(t))
}

func TestApproveAfterLocalBurn(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t, DefaultChain)
	token := ids.GenerateTestID()
	tokenY := types.FromNative(ids.GenerateTestID())
	env.allow(t,
		payload.Side{Chain: DefaultChain, Token: types.FromNative(token)},
		payload.Side{Chain: peerChain, Token: tokenY},
	)
	env.credit(t, token, env.approver, 10)

	hash, err := env.bridge.BurnAndCreateProof(ctx, env.approver, BurnRequest{
		BurnToken:     token,
		MintToken:     tokenY.Bytes(),
		MintCaller:    tokenY.Bytes(),
		MintChainType: uint8(peerChain.Type),
		MintChainID:   peerChain.ID,
		Amount:        uint256.NewInt(10),
	})
	require.NoError(err)

	// Burned and Approved share one state space
	err = env.bridge.ApproveBurnProof(ctx, env.approver, hash.Uint256())
	require.ErrorIs(err, teleport.ErrAlreadyApproved)

	s, err := env.bridge.ProofState(hash)
	require.NoError(err)
	require.Equal(types.ProofStateBurned, s)
}

func TestSetAllowance(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t, DefaultChain)
	a := payload.Side{Chain: DefaultChain, Token: types.FromNative(ids.GenerateTestID())}
	b := payload.Side{Chain: evmChain, Token: types.FromEVM(common.HexToAddress("0x01"))}
	route := payload.RouteID(a, b)

	s, err := env.bridge.Allowance(route)
	require.NoError(err)
	require.Equal(types.AllowanceUndefined, s)

	req := SetAllowanceRequest{
		MintToken:     b.Token.Bytes(),
		BurnToken:     a.Token.Bytes(),
		MintChainType: uint8(b.Chain.Type),
		MintChainID:   b.Chain.ID,
		BurnChainType: uint8(a.Chain.Type),
		BurnChainID:   a.Chain.ID,
	}
	require.ErrorIs(env.bridge.SetAllowance(ctx, ids.GenerateTestID(), req), teleport.ErrMissingApproverRole)

	short := req
	short.BurnToken = short.BurnToken[:32]
	require.ErrorIs(env.bridge.SetAllowance(ctx, env.approver, short), teleport.ErrInvalidTokenLength)

	unknown := req
	unknown.BurnChainType = 0
	require.ErrorIs(env.bridge.SetAllowance(ctx, env.approver, unknown), teleport.ErrUnknownChain)

	require.NoError(env.bridge.SetAllowance(ctx, env.approver, req))

	// one entry covers both directions
	s, err = env.bridge.Allowance(payload.RouteID(b, a))
	require.NoError(err)
	require.Equal(types.AllowanceAllowed, s)

	// setting again is idempotent
	require.NoError(env.bridge.SetAllowance(ctx, env.approver, req))
	require.Empty(env.events(t))
}

// bridgePair wires a source and destination deployment with the route between
// tokenX on the source and tokenY on the destination opened on both.
type bridgePair struct {
	source, dest   *testEnv
	tokenX, tokenY ids.ID
}

func newBridgePair(t *testing.T) *bridgePair {
	p := &bridgePair{
		source: newTestEnv(t, DefaultChain),
		dest:   newTestEnv(t, peerChain),
		tokenX: ids.GenerateTestID(),
		tokenY: ids.GenerateTestID(),
	}
	x := payload.Side{Chain: DefaultChain, Token: types.FromNative(p.tokenX)}
	y := payload.Side{Chain: peerChain, Token: types.FromNative(p.tokenY)}
	p.source.allow(t, x, y)
	p.dest.allow(t, y, x)
	return p
}

// burn burns amount on the source and relays the approval to the
// destination, returning the mint request the recipient presents.
func (p *bridgePair) burn(t *testing.T, holder, recipient ids.ID, amount uint64) MintRequest {
	t.Helper()
	ctx := context.Background()

	hash, err := p.source.bridge.BurnAndCreateProof(ctx, holder, BurnRequest{
		BurnToken:     p.tokenX,
		MintToken:     types.FromNative(p.tokenY).Bytes(),
		MintCaller:    types.FromNative(recipient).Bytes(),
		MintChainType: uint8(peerChain.Type),
		MintChainID:   peerChain.ID,
		Amount:        uint256.NewInt(amount),
	})
	require.NoError(t, err)

	emitted := p.source.events(t)
	burn := emitted[len(emitted)-1].(*payload.ProofOfBurn)
	require.Equal(t, hash, burn.ProofHash)

	require.NoError(t, p.dest.bridge.ApproveBurnProof(ctx, p.dest.approver, burn.ProofHash.Uint256()))

	return MintRequest{
		MintToken:     burn.MintToken.Native(),
		BurnToken:     burn.BurnToken.Bytes(),
		BurnCaller:    burn.BurnCaller.Bytes(),
		BurnChainType: uint8(burn.BurnChain.Type),
		BurnChainID:   burn.BurnChain.ID,
		Amount:        new(uint256.Int).Set(&burn.Amount),
		ProofHash:     burn.ProofHash.Uint256(),
		Nonce:         new(uint256.Int).Set(&burn.Nonce),
	}
}

func TestMintWithBurnProof(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	p := newBridgePair(t)
	holder := ids.GenerateTestID()
	recipient := ids.GenerateTestID()
	p.source.credit(t, p.tokenX, holder, 1000)

	req := p.burn(t, holder, recipient, 400)

	require.NoError(p.dest.bridge.MintWithBurnProof(ctx, recipient, req))
	require.Equal(uint64(400), p.dest.balance(t, p.tokenY, recipient))
	require.Equal(uint64(600), p.source.balance(t, p.tokenX, holder))

	hash := types.HashFromUint256(req.ProofHash)
	s, err := p.dest.bridge.ProofState(hash)
	require.NoError(err)
	require.Equal(types.ProofStateExecuted, s)

	emitted := p.dest.events(t)
	require.Len(emitted, 2)
	mint, ok := emitted[1].(*payload.ProofOfMint)
	require.True(ok)
	require.Equal(hash, mint.ProofHash)
	require.Equal(types.FromNative(recipient), mint.MintCaller)
	require.Equal(types.FromNative(holder), mint.BurnCaller)

	// Executed is terminal
	err = p.dest.bridge.MintWithBurnProof(ctx, recipient, req)
	require.ErrorIs(err, teleport.ErrNotApprovedOrExecuted)
	err = p.dest.bridge.ApproveBurnProof(ctx, p.dest.approver, req.ProofHash)
	require.ErrorIs(err, teleport.ErrAlreadyApproved)
	require.Equal(uint64(400), p.dest.balance(t, p.tokenY, recipient))
}

func TestMintRejections(t *testing.T) {
	tests := []struct {
		name        string
		caller      func(recipient ids.ID) ids.ID
		mutate      func(r *MintRequest)
		expectedErr error
	}{
		{
			name:        "tampered amount",
			mutate:      func(r *MintRequest) { r.Amount = uint256.NewInt(401) },
			expectedErr: teleport.ErrProvidedHashIsInvalid,
		},
		{
			name:        "tampered nonce",
			mutate:      func(r *MintRequest) { r.Nonce = uint256.NewInt(1) },
			expectedErr: teleport.ErrProvidedHashIsInvalid,
		},
		{
			name:        "wrong caller",
			caller:      func(ids.ID) ids.ID { return ids.GenerateTestID() },
			expectedErr: teleport.ErrProvidedHashIsInvalid,
		},
		{
			name:        "unapproved hash",
			mutate:      func(r *MintRequest) { r.ProofHash = uint256.NewInt(1) },
			expectedErr: teleport.ErrNotApprovedOrExecuted,
		},
		{
			name:        "burn token width",
			mutate:      func(r *MintRequest) { r.BurnToken = append(r.BurnToken, 0) },
			expectedErr: teleport.ErrInvalidTokenLength,
		},
		{
			name:        "burn caller width",
			mutate:      func(r *MintRequest) { r.BurnCaller = r.BurnCaller[:20] },
			expectedErr: teleport.ErrInvalidCallerLength,
		},
		{
			name:        "unknown burn chain",
			mutate:      func(r *MintRequest) { r.BurnChainType = 5 },
			expectedErr: teleport.ErrUnknownChain,
		},
		{
			name:        "route not allowed",
			mutate:      func(r *MintRequest) { r.MintToken = ids.GenerateTestID() },
			expectedErr: teleport.ErrAllowanceNotFound,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			p := newBridgePair(t)
			holder := ids.GenerateTestID()
			recipient := ids.GenerateTestID()
			p.source.credit(t, p.tokenX, holder, 1000)
			req := p.burn(t, holder, recipient, 400)

			caller := recipient
			if test.caller != nil {
				caller = test.caller(recipient)
			}
			if test.mutate != nil {
				test.mutate(&req)
			}
			err := p.dest.bridge.MintWithBurnProof(context.Background(), caller, req)
			require.ErrorIs(err, test.expectedErr)

			require.Zero(p.dest.balance(t, p.tokenY, caller))
			// only the approval was emitted
			require.Len(p.dest.events(t), 1)
		})
	}
}

func TestConcurrentMints(t *testing.T) {
	require := require.New(t)

	p := newBridgePair(t)
	holder := ids.GenerateTestID()
	recipient := ids.GenerateTestID()
	p.source.credit(t, p.tokenX, holder, 1000)
	req := p.burn(t, holder, recipient, 250)

	const workers = 16
	var (
		wg        sync.WaitGroup
		lock      sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.dest.bridge.MintWithBurnProof(context.Background(), recipient, req)
			lock.Lock()
			defer lock.Unlock()
			switch {
			case err == nil:
				succeeded++
			case !errors.Is(err, teleport.ErrNotApprovedOrExecuted):
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(1, succeeded)
	require.Equal(uint64(250), p.dest.balance(t, p.tokenY, recipient))
}

func TestCancelledContext(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, DefaultChain)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := env.bridge.ApproveBurnProof(ctx, env.approver, uint256.NewInt(1))
	require.ErrorIs(err, context.Canceled)

	s, err := env.bridge.ProofState(types.HashFromUint256(uint256.NewInt(1)))
	require.NoError(err)
	require.Equal(types.ProofStateUndefined, s)
}

func TestCreditRequiresApprover(t *testing.T) {
	env := newTestEnv(t, DefaultChain)
	err := env.bridge.Credit(context.Background(), ids.GenerateTestID(), ids.GenerateTestID(), ids.GenerateTestID(), uint256.NewInt(1))
	require.ErrorIs(t, err, teleport.ErrMissingApproverRole)
}
