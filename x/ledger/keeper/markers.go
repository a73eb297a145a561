package keeper

import (
	"context"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/ledger/types"
)

// CreateMarker registers a new marker for denom administered by admins
func (k Keeper) CreateMarker(ctx context.Context, denom string, admins ...sdk.AccAddress) (types.Marker, error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.Marker{}, types.ErrInvalidCoin.Wrapf("marker denom [%s]: %s", denom, err)
	}
	if _, found := k.GetMarker(ctx, denom); found {
		return types.Marker{}, types.ErrMarkerExists.Wrapf("marker for denom %s", denom)
	}

	marker := types.NewMarker(denom, admins)
	if err := k.SetMarker(ctx, marker); err != nil {
		return types.Marker{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMarkerCreated,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyMarker, marker.Address),
		),
	)
	k.Logger(ctx).Info("marker created", "denom", denom, "address", marker.Address)
	return marker, nil
}

// GrantAdministrator adds admin to the administrators of the denom's marker
func (k Keeper) GrantAdministrator(ctx context.Context, denom string, admin sdk.AccAddress) error {
	marker, found := k.GetMarker(ctx, denom)
	if !found {
		return types.ErrMarkerNotFound.Wrapf("denom %s", denom)
	}
	if marker.HasAdministrator(admin) {
		return nil
	}
	marker.Administrators = append(marker.Administrators, admin.String())
	return k.SetMarker(ctx, marker)
}

// GetMarker returns the marker for denom
func (k Keeper) GetMarker(ctx context.Context, denom string) (types.Marker, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.GetMarkerKey(denom))
	if err != nil || bz == nil {
		return types.Marker{}, false
	}

	var marker types.Marker
	if err := json.Unmarshal(bz, &marker); err != nil {
		k.Logger(ctx).Error("failed to unmarshal marker", "denom", denom, "error", err)
		return types.Marker{}, false
	}
	return marker, true
}

// SetMarker stores a marker record
func (k Keeper) SetMarker(ctx context.Context, marker types.Marker) error {
	if err := marker.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(marker)
	if err != nil {
		return types.ErrStateCorruption.Wrapf("failed to marshal marker: %s", err)
	}
	store := k.storeService.OpenKVStore(ctx)
	return store.Set(types.GetMarkerKey(marker.Denom), bz)
}

// GetMarkerAddress resolves the account backing the marker of denom
func (k Keeper) GetMarkerAddress(ctx context.Context, denom string) (sdk.AccAddress, error) {
	marker, found := k.GetMarker(ctx, denom)
	if !found {
		return nil, types.ErrMarkerNotFound.Wrapf("denom %s", denom)
	}
	return sdk.AccAddressFromBech32(marker.Address)
}

// MintCoin increases supply and credits the new coins to the marker account
func (k Keeper) MintCoin(ctx context.Context, administrator sdk.AccAddress, coin sdk.Coin) error {
	marker, err := k.authorize(ctx, administrator, coin)
	if err != nil {
		return err
	}
	markerAddr := types.MarkerAddress(marker.Denom)

	if err := k.addSupply(ctx, coin); err != nil {
		return err
	}
	if err := k.addBalance(ctx, markerAddr, coin); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyAdministrator, administrator.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	)
	return nil
}

// BurnCoin destroys coin held by the administrator and reduces supply
func (k Keeper) BurnCoin(ctx context.Context, administrator sdk.AccAddress, coin sdk.Coin) error {
	if _, err := k.authorize(ctx, administrator, coin); err != nil {
		return err
	}

	if err := k.subBalance(ctx, administrator, coin); err != nil {
		return err
	}
	if err := k.subSupply(ctx, coin); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurn,
			sdk.NewAttribute(types.AttributeKeyAdministrator, administrator.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	)
	return nil
}

// WithdrawCoins moves coins out of the marker account of denom to the
// recipient.
func (k Keeper) WithdrawCoins(ctx context.Context, administrator, to sdk.AccAddress, denom string, coins sdk.Coins) error {
	marker, found := k.GetMarker(ctx, denom)
	if !found {
		return types.ErrMarkerNotFound.Wrapf("denom %s", denom)
	}
	if !marker.HasAdministrator(administrator) {
		return types.ErrUnauthorized.Wrapf("%s cannot withdraw from marker %s", administrator, denom)
	}
	if err := k.SendCoins(ctx, types.MarkerAddress(denom), to, coins); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, coins.String()),
		),
	)
	return nil
}

// TransferCoin moves coin between two accounts on the authority of a marker
// administrator, without requiring the sender's signature.
func (k Keeper) TransferCoin(ctx context.Context, administrator, from, to sdk.AccAddress, coin sdk.Coin) error {
	if _, err := k.authorize(ctx, administrator, coin); err != nil {
		return err
	}
	return k.SendCoins(ctx, from, to, sdk.NewCoins(coin))
}

// FundAccount credits coins to addr out of thin air while keeping supply in
// step. Used for genesis and local tooling.
func (k Keeper) FundAccount(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	if !coins.IsValid() {
		return types.ErrInvalidCoin.Wrapf("cannot fund %s", coins)
	}
	for _, coin := range coins {
		if err := k.addSupply(ctx, coin); err != nil {
			return err
		}
		if err := k.addBalance(ctx, addr, coin); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) authorize(ctx context.Context, administrator sdk.AccAddress, coin sdk.Coin) (types.Marker, error) {
	if !coin.IsValid() || coin.IsZero() {
		return types.Marker{}, types.ErrInvalidCoin.Wrapf("invalid amount %s", coin)
	}
	marker, found := k.GetMarker(ctx, coin.Denom)
	if !found {
		return types.Marker{}, types.ErrMarkerNotFound.Wrapf("denom %s", coin.Denom)
	}
	if !marker.HasAdministrator(administrator) {
		return types.Marker{}, types.ErrUnauthorized.Wrapf("%s does not administer marker %s", administrator, coin.Denom)
	}
	return marker, nil
}
