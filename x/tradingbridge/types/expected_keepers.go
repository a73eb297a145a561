package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// LedgerAccessor is the read side of the host ledger consumed by handlers
type LedgerAccessor interface {
	// GetMarkerAddressForDenom resolves the marker account backing denom
	GetMarkerAddressForDenom(ctx context.Context, denom string) (sdk.AccAddress, error)

	// CheckAccountHasAllAttributes fails with ErrNotAuthorized unless account
	// holds every required attribute. An empty requirement always passes.
	CheckAccountHasAllAttributes(ctx context.Context, account sdk.AccAddress, required []string) error

	// CheckAccountHasEnoughDenom fails with ErrInvalidFunds when the balance of
	// denom held by account is below amount.
	CheckAccountHasEnoughDenom(ctx context.Context, account sdk.AccAddress, denom string, amount math.Uint) error
}

// MessageDispatcher executes a single ledger instruction on behalf of the
// contract.
type MessageDispatcher interface {
	Dispatch(ctx context.Context, contract sdk.AccAddress, msg LedgerMsg) error
}

// Ledger is the full host capability the keeper depends on
type Ledger interface {
	LedgerAccessor
	MessageDispatcher
}

// =============================================================================
// Host keepers backing the chain ledger binding
// =============================================================================

// BankKeeper defines the expected bank keeper
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// MarkerKeeper defines the expected marker keeper. Mint credits the marker
// account, Withdraw debits it, Burn destroys coins held by the administrator
// and Transfer moves coins between arbitrary accounts; each requires the
// administrator to hold the matching marker permission.
type MarkerKeeper interface {
	GetMarkerAddress(ctx context.Context, denom string) (sdk.AccAddress, error)
	TransferCoin(ctx context.Context, administrator, from, to sdk.AccAddress, coin sdk.Coin) error
	MintCoin(ctx context.Context, administrator sdk.AccAddress, coin sdk.Coin) error
	BurnCoin(ctx context.Context, administrator sdk.AccAddress, coin sdk.Coin) error
	WithdrawCoins(ctx context.Context, administrator, to sdk.AccAddress, denom string, coins sdk.Coins) error
}

// AttributeKeeper defines the expected attribute registry
type AttributeKeeper interface {
	GetAccountAttributeNames(ctx context.Context, account sdk.AccAddress, pagination *query.PageRequest) ([]string, *query.PageResponse, error)
}

// NameKeeper defines the expected name registry
type NameKeeper interface {
	BindName(ctx context.Context, name, parent string, address sdk.AccAddress, restricted bool) error
}
