package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/tradingbridge/types"
)

func (k Keeper) queryContractState(ctx sdk.Context) ([]byte, error) {
	state, err := k.GetContractState(ctx)
	if err != nil {
		return nil, err
	}
	bz, err := state.Marshal()
	if err != nil {
		return nil, types.ErrStorage.Wrapf("failed to encode contract state: %s", err)
	}
	return bz, nil
}
