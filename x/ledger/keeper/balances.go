package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/ledger/types"
)

// GetBalance returns the balance of denom held by addr. A missing balance is
// a zero coin.
func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amount, err := k.getAmount(ctx, types.GetBalanceKey(addr, denom))
	if err != nil {
		k.Logger(ctx).Error("failed to read balance", "address", addr.String(), "denom", denom, "error", err)
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, amount)
}

// GetSupply returns the total supply of denom
func (k Keeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	amount, err := k.getAmount(ctx, types.GetSupplyKey(denom))
	if err != nil {
		k.Logger(ctx).Error("failed to read supply", "denom", denom, "error", err)
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, amount)
}

// SendCoins moves amt from fromAddr to toAddr. Either every coin moves or the
// call fails before any balance is written.
func (k Keeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return types.ErrInvalidCoin.Wrapf("cannot send %s", amt)
	}
	for _, coin := range amt {
		if balance := k.GetBalance(ctx, fromAddr, coin.Denom); balance.IsLT(coin) {
			return types.ErrInsufficientFunds.Wrapf(
				"%s holds %s but %s is required", fromAddr, balance, coin,
			)
		}
	}
	for _, coin := range amt {
		if err := k.subBalance(ctx, fromAddr, coin); err != nil {
			return err
		}
		if err := k.addBalance(ctx, toAddr, coin); err != nil {
			return err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeySender, fromAddr.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, toAddr.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amt.String()),
		),
	)
	return nil
}

func (k Keeper) addBalance(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	balance := k.GetBalance(ctx, addr, coin.Denom)
	return k.setAmount(ctx, types.GetBalanceKey(addr, coin.Denom), balance.Amount.Add(coin.Amount))
}

func (k Keeper) subBalance(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	balance := k.GetBalance(ctx, addr, coin.Denom)
	if balance.IsLT(coin) {
		return types.ErrInsufficientFunds.Wrapf("%s holds %s but %s is required", addr, balance, coin)
	}
	return k.setAmount(ctx, types.GetBalanceKey(addr, coin.Denom), balance.Amount.Sub(coin.Amount))
}

func (k Keeper) addSupply(ctx context.Context, coin sdk.Coin) error {
	supply := k.GetSupply(ctx, coin.Denom)
	return k.setAmount(ctx, types.GetSupplyKey(coin.Denom), supply.Amount.Add(coin.Amount))
}

func (k Keeper) subSupply(ctx context.Context, coin sdk.Coin) error {
	supply := k.GetSupply(ctx, coin.Denom)
	if supply.IsLT(coin) {
		return types.ErrStateCorruption.Wrapf("supply %s is below %s", supply, coin)
	}
	return k.setAmount(ctx, types.GetSupplyKey(coin.Denom), supply.Amount.Sub(coin.Amount))
}

func (k Keeper) getAmount(ctx context.Context, key []byte) (math.Int, error) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(key)
	if err != nil {
		return math.ZeroInt(), err
	}
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		return math.ZeroInt(), types.ErrStateCorruption.Wrapf("failed to unmarshal amount: %s", err)
	}
	return amount, nil
}

func (k Keeper) setAmount(ctx context.Context, key []byte, amount math.Int) error {
	store := k.storeService.OpenKVStore(ctx)
	if amount.IsZero() {
		return store.Delete(key)
	}
	bz, err := amount.Marshal()
	if err != nil {
		return types.ErrStateCorruption.Wrapf("failed to marshal amount: %s", err)
	}
	return store.Set(key, bz)
}
