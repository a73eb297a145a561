package keeper

import (
	"context"
	"encoding/json"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/trading-bridge/x/ledger/types"
)

// BindName binds name under parent to address. An empty parent binds a root
// name. A restricted parent only accepts children from its own owner.
func (k Keeper) BindName(ctx context.Context, name, parent string, address sdk.AccAddress, restricted bool) error {
	if name == "" {
		return types.ErrInvalidAttribute.Wrap("name segment cannot be empty")
	}
	if address.Empty() {
		return types.ErrInvalidAddress.Wrap("cannot bind a name to an empty address")
	}

	fullName := name
	if parent != "" {
		parentRecord, found := k.ResolveName(ctx, parent)
		if !found {
			return types.ErrNameNotFound.Wrapf("parent name %s", parent)
		}
		if parentRecord.Restricted && parentRecord.Address != address.String() {
			return types.ErrNameRestricted.Wrapf("%s cannot bind under %s", address, parent)
		}
		fullName = name + "." + parent
	}
	if _, found := k.ResolveName(ctx, fullName); found {
		return types.ErrNameTaken.Wrapf("name %s", fullName)
	}

	record := types.NameRecord{
		Name:       fullName,
		Address:    address.String(),
		Restricted: restricted,
	}
	bz, err := json.Marshal(record)
	if err != nil {
		return types.ErrStateCorruption.Wrapf("failed to marshal name record: %s", err)
	}
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.GetNameKey(fullName), bz); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNameBound,
			sdk.NewAttribute(types.AttributeKeyName, fullName),
			sdk.NewAttribute(types.AttributeKeyAccount, address.String()),
			sdk.NewAttribute(types.AttributeKeyRestricted, strconv.FormatBool(restricted)),
		),
	)
	return nil
}

// ResolveName looks up a fully qualified name
func (k Keeper) ResolveName(ctx context.Context, name string) (types.NameRecord, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.GetNameKey(name))
	if err != nil || bz == nil {
		return types.NameRecord{}, false
	}

	var record types.NameRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		k.Logger(ctx).Error("failed to unmarshal name record", "name", name, "error", err)
		return types.NameRecord{}, false
	}
	return record, true
}
