package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/ledger/types"
)

// Keeper maintains the state of the ledger simulator: balances, supply,
// markers, account attributes and bound names. It implements the host
// keeper interfaces the trading bridge consumes.
type Keeper struct {
	storeService store.KVStoreService
}

// NewKeeper creates a new ledger Keeper instance
func NewKeeper(storeService store.KVStoreService) *Keeper {
	return &Keeper{
		storeService: storeService,
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
