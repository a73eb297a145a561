package types

const (
	// ModuleName defines the module name
	ModuleName = "tradingbridge"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// ContractType is written into the contract state at instantiation and
	// checked again on every migration.
	ContractType = "trading_bridge"
)

// ContractVersion is the compiled contract version. It is a var so release
// builds can stamp it with -ldflags "-X ...types.ContractVersion=x.y.z".
var ContractVersion = "1.0.0"

var (
	// ModuleNamespace is the namespace byte for the trading bridge module
	ModuleNamespace = byte(0x01)

	// ContractStateV1Key is the single storage slot holding ContractStateV1
	ContractStateV1Key = []byte{0x01, 0x01}
)
