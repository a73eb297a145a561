package types

import (
	"regexp"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxAttributeNameLength is the longest attribute or bindable name accepted
const MaxAttributeNameLength = 128

// attributeNamePattern accepts dot-separated segments of lowercase
// alphanumerics and hyphens, e.g. "kyc.passed.pb".
var attributeNamePattern = regexp.MustCompile(`^[a-z0-9-]+(\.[a-z0-9-]+)*$`)

// SelfValidating is implemented by every inbound message and by the value
// types embedded in them. ValidateBasic is purely structural and never reads
// ledger state.
type SelfValidating interface {
	ValidateBasic() error
}

// CheckFundsAreEmpty rejects routes that must not receive native funds
func CheckFundsAreEmpty(funds sdk.Coins) error {
	if !funds.Empty() {
		return ErrInvalidFunds.Wrapf("funds [%s] provided but empty funds required", funds)
	}
	return nil
}

// ValidateAttributeName checks a single attribute name
func ValidateAttributeName(name string) error {
	if name == "" {
		return ErrValidation.Wrap("attribute name cannot be empty")
	}
	if len(name) > MaxAttributeNameLength {
		return ErrValidation.Wrapf(
			"attribute name [%s] exceeds the maximum length of %d", name, MaxAttributeNameLength,
		)
	}
	if !attributeNamePattern.MatchString(name) {
		return ErrValidation.Wrapf("attribute name [%s] contains disallowed characters", name)
	}
	return nil
}

// ValidateAttributeNames checks every element of a required-attribute list.
// An empty list is valid and means no attributes are required.
func ValidateAttributeNames(field string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if err := ValidateAttributeName(name); err != nil {
			return ErrValidation.Wrapf("%s: %s", field, err)
		}
		if _, ok := seen[name]; ok {
			return ErrValidation.Wrapf("%s: duplicate attribute [%s]", field, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
