package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "ledger"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// ModuleNamespace is the namespace byte for the ledger module (0x02)
	ModuleNamespace = byte(0x02)

	// BalanceKeyPrefix is the prefix for account balances
	BalanceKeyPrefix = []byte{0x02, 0x01}

	// SupplyKeyPrefix is the prefix for per-denom total supply
	SupplyKeyPrefix = []byte{0x02, 0x02}

	// MarkerKeyPrefix is the prefix for marker records
	MarkerKeyPrefix = []byte{0x02, 0x03}

	// AttributeKeyPrefix is the prefix for account attributes
	AttributeKeyPrefix = []byte{0x02, 0x04}

	// NameKeyPrefix is the prefix for bound names
	NameKeyPrefix = []byte{0x02, 0x05}
)

// GetBalanceKey returns the store key for the balance of denom held by addr
func GetBalanceKey(addr sdk.AccAddress, denom string) []byte {
	return append(GetBalancesPrefix(addr), []byte(denom)...)
}

// GetBalancesPrefix returns the prefix for every balance held by addr
func GetBalancesPrefix(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), address.MustLengthPrefix(addr)...)
}

// GetSupplyKey returns the store key for the total supply of denom
func GetSupplyKey(denom string) []byte {
	return append(append([]byte{}, SupplyKeyPrefix...), []byte(denom)...)
}

// GetMarkerKey returns the store key for the marker of denom
func GetMarkerKey(denom string) []byte {
	return append(append([]byte{}, MarkerKeyPrefix...), []byte(denom)...)
}

// GetAttributesPrefix returns the prefix under which the attributes of addr
// are stored, keyed by attribute name.
func GetAttributesPrefix(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, AttributeKeyPrefix...), address.MustLengthPrefix(addr)...)
}

// GetAttributeKey returns the store key for a single attribute of addr
func GetAttributeKey(addr sdk.AccAddress, name string) []byte {
	return append(GetAttributesPrefix(addr), []byte(name)...)
}

// GetNameKey returns the store key for a fully qualified name
func GetNameKey(name string) []byte {
	return append(append([]byte{}, NameKeyPrefix...), []byte(name)...)
}

// MarkerAddress derives the deterministic account address of a marker
func MarkerAddress(denom string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte(denom)))
}
