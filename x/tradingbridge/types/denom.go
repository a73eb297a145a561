package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ SelfValidating = Denom{}

// Denom is a marker denomination together with the number of fractional
// digits its smallest unit represents.
type Denom struct {
	Name      string `json:"name"`
	Precision uint64 `json:"precision"`
}

// NewDenom creates a new Denom instance
func NewDenom(name string, precision uint64) Denom {
	return Denom{
		Name:      name,
		Precision: precision,
	}
}

// ValidateBasic implements SelfValidating
func (d Denom) ValidateBasic() error {
	if d.Name == "" {
		return ErrValidation.Wrap("name cannot be empty")
	}
	if err := sdk.ValidateDenom(d.Name); err != nil {
		return ErrValidation.Wrapf("name [%s] is not a valid denom: %s", d.Name, err)
	}
	return nil
}

// DenomConversion is the result of converting an amount between two denoms.
// SourceAmount always equals TargetAmount rescaled to the source precision
// plus Remainder.
type DenomConversion struct {
	SourceAmount math.Uint `json:"source_amount"`
	TargetAmount math.Uint `json:"target_amount"`
	Remainder    math.Uint `json:"remainder"`
}

// ConvertedSourceAmount is the portion of the source amount that was actually
// converted, i.e. everything except the remainder.
func (c DenomConversion) ConvertedSourceAmount() math.Uint {
	return c.SourceAmount.Sub(c.Remainder)
}

// HasRemainder reports whether any dust was left unconverted
func (c DenomConversion) HasRemainder() bool {
	return !c.Remainder.IsZero()
}

// Coin builds a coin of this denom. amount must not be nil.
func (d Denom) Coin(amount math.Uint) sdk.Coin {
	return sdk.NewCoin(d.Name, UintToInt(amount))
}

// UintToInt converts an unsigned amount into the signed representation used
// by coins. Both are bounded to 256 bits.
func UintToInt(amount math.Uint) math.Int {
	return math.NewIntFromBigInt(amount.BigInt())
}
