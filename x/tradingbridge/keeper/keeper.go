package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// Keeper of the trading bridge store
type Keeper struct {
	storeService    store.KVStoreService
	ledger          types.Ledger
	contractAddress sdk.AccAddress
	contractVersion string
	metrics         *BridgeMetrics
}

// Option configures a Keeper
type Option func(*Keeper)

// WithContractVersion overrides the compiled contract version. Used to
// exercise migrations.
func WithContractVersion(version string) Option {
	return func(k *Keeper) {
		k.contractVersion = version
	}
}

// NewKeeper creates a new trading bridge Keeper instance bound to the
// account the contract executes as.
func NewKeeper(
	storeService store.KVStoreService,
	ledger types.Ledger,
	contractAddress sdk.AccAddress,
	opts ...Option,
) *Keeper {
	k := &Keeper{
		storeService:    storeService,
		ledger:          ledger,
		contractAddress: contractAddress,
		contractVersion: types.ContractVersion,
		metrics:         NewBridgeMetrics(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// ContractAddress returns the account the contract executes as
func (k Keeper) ContractAddress() sdk.AccAddress {
	return k.contractAddress
}

// ContractVersion returns the version this keeper writes on instantiate and
// migrate.
func (k Keeper) ContractVersion() string {
	return k.contractVersion
}
