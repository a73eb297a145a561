package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// Trading bridge sentinel errors. Codes start at 2; code 1 is reserved for
// internal errors by the SDK.
var (
	ErrConversion     = errorsmod.Register(ModuleName, 2, "conversion failure")
	ErrInstantiation  = errorsmod.Register(ModuleName, 3, "instantiation error occurred")
	ErrInvalidAccount = errorsmod.Register(ModuleName, 4, "invalid account")
	ErrInvalidFormat  = errorsmod.Register(ModuleName, 5, "invalid format")
	ErrInvalidFunds   = errorsmod.Register(ModuleName, 6, "invalid funds")
	ErrMigration      = errorsmod.Register(ModuleName, 7, "migration error occurred")
	ErrNotAuthorized  = errorsmod.Register(ModuleName, 8, "not authorized")
	ErrNotFound       = errorsmod.Register(ModuleName, 9, "not found")
	ErrParseInt       = errorsmod.Register(ModuleName, 10, "integer parse failure")
	ErrSemVer         = errorsmod.Register(ModuleName, 11, "semantic version failure")
	ErrStorage        = errorsmod.Register(ModuleName, 12, "storage error occurred")
	ErrValidation     = errorsmod.Register(ModuleName, 13, "validation failed")

	// ErrLedger wraps any error returned by the host ledger keepers.
	ErrLedger = errorsmod.Register(ModuleName, 14, "ledger error")
)

// ContractError is the structured form of a failed invocation as reported to
// the caller.
type ContractError struct {
	Codespace string `json:"codespace"`
	Code      uint32 `json:"code"`
	Message   string `json:"message"`
}

func (e ContractError) Error() string {
	return e.Message
}

// NewContractError converts any error into its structured representation.
// Errors that were not registered by any module report the internal code.
func NewContractError(err error) ContractError {
	codespace, code, log := errorsmod.ABCIInfo(err, false)
	return ContractError{
		Codespace: codespace,
		Code:      code,
		Message:   log,
	}
}

// WrapLedgerError passes a host ledger error through unless it already
// carries a registered trading bridge error.
func WrapLedgerError(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if isBridgeError(err) {
		return errorsmod.Wrapf(err, format, args...)
	}
	return errorsmod.Wrapf(ErrLedger, format+": %s", append(args, err.Error())...)
}

func isBridgeError(err error) bool {
	for _, target := range []error{
		ErrConversion, ErrInstantiation, ErrInvalidAccount, ErrInvalidFormat,
		ErrInvalidFunds, ErrMigration, ErrNotAuthorized, ErrNotFound,
		ErrParseInt, ErrSemVer, ErrStorage, ErrValidation, ErrLedger,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
