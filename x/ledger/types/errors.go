package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Ledger module sentinel errors
var (
	ErrMarkerNotFound    = errorsmod.Register(ModuleName, 2, "marker not found")
	ErrMarkerExists      = errorsmod.Register(ModuleName, 3, "marker already exists")
	ErrUnauthorized      = errorsmod.Register(ModuleName, 4, "not a marker administrator")
	ErrInsufficientFunds = errorsmod.Register(ModuleName, 5, "insufficient funds")
	ErrInvalidCoin       = errorsmod.Register(ModuleName, 6, "invalid coin")
	ErrNameTaken         = errorsmod.Register(ModuleName, 7, "name already bound")
	ErrNameRestricted    = errorsmod.Register(ModuleName, 8, "parent name is restricted")
	ErrNameNotFound      = errorsmod.Register(ModuleName, 9, "name not found")
	ErrInvalidAddress    = errorsmod.Register(ModuleName, 10, "invalid address")
	ErrInvalidAttribute  = errorsmod.Register(ModuleName, 11, "invalid attribute")
	ErrStateCorruption   = errorsmod.Register(ModuleName, 12, "state corruption detected")
)
