package keeper

import (
	"context"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

// GetContractState loads the singleton contract state
func (k Keeper) GetContractState(ctx context.Context) (types.ContractStateV1, error) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ContractStateV1Key)
	if err != nil {
		return types.ContractStateV1{}, types.ErrStorage.Wrapf("failed to read contract state: %s", err)
	}
	if bz == nil {
		return types.ContractStateV1{}, types.ErrNotFound.Wrap("contract state has not been initialized")
	}

	state, err := types.UnmarshalContractStateV1(bz)
	if err != nil {
		return types.ContractStateV1{}, types.ErrStorage.Wrapf("failed to decode contract state: %s", err)
	}
	return state, nil
}

// SetContractState replaces the singleton contract state
func (k Keeper) SetContractState(ctx context.Context, state types.ContractStateV1) error {
	if err := state.Validate(); err != nil {
		return types.ErrStorage.Wrapf("refusing to store invalid contract state: %s", err)
	}
	bz, err := state.Marshal()
	if err != nil {
		return types.ErrStorage.Wrapf("failed to encode contract state: %s", err)
	}

	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.ContractStateV1Key, bz); err != nil {
		return types.ErrStorage.Wrapf("failed to write contract state: %s", err)
	}
	return nil
}

// HasContractState reports whether the contract has been instantiated
func (k Keeper) HasContractState(ctx context.Context) bool {
	store := k.storeService.OpenKVStore(ctx)
	has, err := store.Has(types.ContractStateV1Key)
	return err == nil && has
}
