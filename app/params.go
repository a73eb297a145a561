package app

import (
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// Bech32PrefixAccAddr defines the Bech32 prefix of an account's address
	Bech32PrefixAccAddr = "paw"
	// Bech32PrefixAccPub defines the Bech32 prefix of an account's public key
	Bech32PrefixAccPub = "pawpub"

	// ChainID is stamped into every block header the host creates
	ChainID = "paw-bridge-local"
)

var sdkConfigOnce sync.Once

// SetConfig sets the address configuration for the bridge host. Safe to call
// more than once.
func SetConfig() {
	sdkConfigOnce.Do(func() {
		config := sdk.GetConfig()
		config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
		config.Seal()
	})
}
