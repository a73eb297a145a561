package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/paw-chain/trading-bridge/x/ledger/types"
)

// AddAttribute records attribute name on account. Adding an attribute the
// account already holds is a no-op.
func (k Keeper) AddAttribute(ctx context.Context, account sdk.AccAddress, name string) error {
	if name == "" {
		return types.ErrInvalidAttribute.Wrap("attribute name cannot be empty")
	}
	if account.Empty() {
		return types.ErrInvalidAddress.Wrap("attribute account cannot be empty")
	}

	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.GetAttributeKey(account, name), []byte{0x01}); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttribute,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyName, name),
		),
	)
	return nil
}

// HasAttribute reports whether account holds attribute name
func (k Keeper) HasAttribute(ctx context.Context, account sdk.AccAddress, name string) bool {
	store := k.storeService.OpenKVStore(ctx)
	has, err := store.Has(types.GetAttributeKey(account, name))
	return err == nil && has
}

// GetAccountAttributeNames returns one page of the attribute names held by
// account, in lexical order.
func (k Keeper) GetAccountAttributeNames(ctx context.Context, account sdk.AccAddress, pagination *query.PageRequest) ([]string, *query.PageResponse, error) {
	store := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	attributeStore := prefix.NewStore(store, types.GetAttributesPrefix(account))

	var names []string
	pageRes, err := query.Paginate(attributeStore, pagination, func(key []byte, _ []byte) error {
		names = append(names, string(key))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return names, pageRes, nil
}
