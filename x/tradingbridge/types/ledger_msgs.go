package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LedgerMsg is a privileged ledger instruction produced by a handler. The
// host dispatches the instructions of one response in order and atomically.
// Exactly one field is set.
type LedgerMsg struct {
	Transfer *TransferMsg `json:"transfer,omitempty"`
	Mint     *MintMsg     `json:"mint,omitempty"`
	Burn     *BurnMsg     `json:"burn,omitempty"`
	Withdraw *WithdrawMsg `json:"withdraw,omitempty"`
	BindName *BindNameMsg `json:"bind_name,omitempty"`
}

// TransferMsg moves a coin between two accounts
type TransferMsg struct {
	FromAddress string   `json:"from_address"`
	ToAddress   string   `json:"to_address"`
	Amount      sdk.Coin `json:"amount"`
}

// MintMsg mints a coin into its marker account
type MintMsg struct {
	Administrator string   `json:"administrator"`
	Amount        sdk.Coin `json:"amount"`
}

// BurnMsg destroys a coin held by the administrator
type BurnMsg struct {
	Administrator string   `json:"administrator"`
	Amount        sdk.Coin `json:"amount"`
}

// WithdrawMsg moves coins out of the marker account of Denom
type WithdrawMsg struct {
	Denom         string    `json:"denom"`
	Administrator string    `json:"administrator"`
	ToAddress     string    `json:"to_address"`
	Amount        sdk.Coins `json:"amount"`
}

// NameRecord is a name bound to an address
type NameRecord struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Restricted bool   `json:"restricted"`
}

// BindNameMsg binds Record under Parent. With no parent the record is bound
// as a root name.
type BindNameMsg struct {
	Record NameRecord  `json:"record"`
	Parent *NameRecord `json:"parent,omitempty"`
}

// FullName is the fully qualified name the message binds
func (m BindNameMsg) FullName() string {
	if m.Parent == nil {
		return m.Record.Name
	}
	return m.Record.Name + "." + m.Parent.Name
}

// Type returns the name of the populated variant
func (m LedgerMsg) Type() string {
	switch {
	case m.Transfer != nil:
		return "transfer"
	case m.Mint != nil:
		return "mint"
	case m.Burn != nil:
		return "burn"
	case m.Withdraw != nil:
		return "withdraw"
	case m.BindName != nil:
		return "bind_name"
	default:
		return ""
	}
}

func (m LedgerMsg) String() string {
	switch {
	case m.Transfer != nil:
		return fmt.Sprintf("transfer %s from %s to %s", m.Transfer.Amount, m.Transfer.FromAddress, m.Transfer.ToAddress)
	case m.Mint != nil:
		return fmt.Sprintf("mint %s by %s", m.Mint.Amount, m.Mint.Administrator)
	case m.Burn != nil:
		return fmt.Sprintf("burn %s by %s", m.Burn.Amount, m.Burn.Administrator)
	case m.Withdraw != nil:
		return fmt.Sprintf("withdraw %s from marker %s to %s", m.Withdraw.Amount, m.Withdraw.Denom, m.Withdraw.ToAddress)
	case m.BindName != nil:
		return fmt.Sprintf("bind name %s to %s", m.BindName.FullName(), m.BindName.Record.Address)
	default:
		return "empty ledger msg"
	}
}

// NewTransferMsg wraps a transfer instruction
func NewTransferMsg(from, to sdk.AccAddress, amount sdk.Coin) LedgerMsg {
	return LedgerMsg{Transfer: &TransferMsg{
		FromAddress: from.String(),
		ToAddress:   to.String(),
		Amount:      amount,
	}}
}

// NewMintMsg wraps a mint instruction
func NewMintMsg(administrator sdk.AccAddress, amount sdk.Coin) LedgerMsg {
	return LedgerMsg{Mint: &MintMsg{
		Administrator: administrator.String(),
		Amount:        amount,
	}}
}

// NewBurnMsg wraps a burn instruction
func NewBurnMsg(administrator sdk.AccAddress, amount sdk.Coin) LedgerMsg {
	return LedgerMsg{Burn: &BurnMsg{
		Administrator: administrator.String(),
		Amount:        amount,
	}}
}

// NewWithdrawMsg wraps a withdraw instruction for a single coin
func NewWithdrawMsg(administrator, to sdk.AccAddress, amount sdk.Coin) LedgerMsg {
	return LedgerMsg{Withdraw: &WithdrawMsg{
		Denom:         amount.Denom,
		Administrator: administrator.String(),
		ToAddress:     to.String(),
		Amount:        sdk.NewCoins(amount),
	}}
}

// MsgBindName builds (but does not execute) a name binding. The first
// segment of the fully qualified name is the new record; the remaining
// segments name the parent, which is referenced unrestricted so the binder
// can attach under it.
func MsgBindName(name string, bindTo sdk.AccAddress, restricted bool) (BindNameMsg, error) {
	parts := strings.Split(name, ".")
	if len(parts) == 0 || parts[0] == "" {
		return BindNameMsg{}, ErrInvalidFormat.Wrapf("cannot bind to an empty name string [%s]", name)
	}
	for _, part := range parts[1:] {
		if part == "" {
			return BindNameMsg{}, ErrInvalidFormat.Wrapf("cannot derive parent name from input [%s]", name)
		}
	}

	msg := BindNameMsg{
		Record: NameRecord{
			Name:       parts[0],
			Address:    bindTo.String(),
			Restricted: restricted,
		},
	}
	if len(parts) > 1 {
		msg.Parent = &NameRecord{
			Name:       strings.Join(parts[1:], "."),
			Address:    bindTo.String(),
			Restricted: false,
		}
	}
	return msg, nil
}
