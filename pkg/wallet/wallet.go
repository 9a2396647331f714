// Package wallet provides the account/signing provider consumed by the ledger
// client. The provider is injected explicitly rather than reached through an
// ambient global, so alternative signers can be swapped in for tests or
// hardware wallets.
package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lip-protocol/lip-coordinator/pkg/clienterrors"
)

// Provider exposes the account and signing primitives the ledger client needs.
type Provider interface {
	// Account returns the address transactions are sent from
	Account() common.Address
	// ChainID returns the chain id the provider signs for
	ChainID() *big.Int
	// TransactOpts returns signing/submission options bound to ctx
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

// KeyedProvider signs with a locally held private key.
type KeyedProvider struct {
	account common.Address
	chainID *big.Int
	auth    *bind.TransactOpts
}

var _ Provider = (*KeyedProvider)(nil)

// NewKeyedProvider creates a provider from a hex-encoded private key
func NewKeyedProvider(privateKeyHex string, chainID *big.Int) (*KeyedProvider, error) {
	if privateKeyHex == "" {
		return nil, clienterrors.NoWallet("no private key configured")
	}

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, clienterrors.NoWallet("invalid private key: " + err.Error())
	}

	auth, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return nil, clienterrors.NoWallet("failed to create transactor: " + err.Error())
	}

	return &KeyedProvider{
		account: crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID: chainID,
		auth:    auth,
	}, nil
}

// Account returns the address derived from the private key
func (p *KeyedProvider) Account() common.Address {
	return p.account
}

// ChainID returns the chain id the provider signs for
func (p *KeyedProvider) ChainID() *big.Int {
	return new(big.Int).Set(p.chainID)
}

// TransactOpts returns signing options bound to the given context
func (p *KeyedProvider) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts := *p.auth
	opts.Context = ctx
	return &opts, nil
}
