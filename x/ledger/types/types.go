package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Marker is a ledger-native asset class. Only its administrators may mint,
// burn or withdraw its denom.
type Marker struct {
	Denom          string   `json:"denom"`
	Address        string   `json:"address"`
	Administrators []string `json:"administrators"`
}

// NewMarker creates a marker for denom at its derived address
func NewMarker(denom string, administrators []sdk.AccAddress) Marker {
	admins := make([]string, 0, len(administrators))
	for _, admin := range administrators {
		admins = append(admins, admin.String())
	}
	return Marker{
		Denom:          denom,
		Address:        MarkerAddress(denom).String(),
		Administrators: admins,
	}
}

// HasAdministrator reports whether addr administers the marker
func (m Marker) HasAdministrator(addr sdk.AccAddress) bool {
	for _, admin := range m.Administrators {
		if admin == addr.String() {
			return true
		}
	}
	return false
}

// Validate checks the marker record
func (m Marker) Validate() error {
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return ErrInvalidCoin.Wrapf("marker denom [%s]: %s", m.Denom, err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Address); err != nil {
		return ErrInvalidAddress.Wrapf("marker address [%s]: %s", m.Address, err)
	}
	for _, admin := range m.Administrators {
		if _, err := sdk.AccAddressFromBech32(admin); err != nil {
			return ErrInvalidAddress.Wrapf("marker administrator [%s]: %s", admin, err)
		}
	}
	return nil
}

// NameRecord is a bound name
type NameRecord struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Restricted bool   `json:"restricted"`
}
