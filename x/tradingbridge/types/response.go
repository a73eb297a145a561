package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Response is the outcome of a successful handler invocation: the ordered
// ledger instructions to dispatch, the attributes describing the invocation
// and optional response data.
type Response struct {
	Messages   []LedgerMsg     `json:"messages"`
	Attributes []sdk.Attribute `json:"attributes"`
	Data       []byte          `json:"data,omitempty"`
}

// NewResponse creates an empty response
func NewResponse() *Response {
	return &Response{}
}

// AddMessage appends a ledger instruction; instructions dispatch in the
// order they were added.
func (r *Response) AddMessage(msg LedgerMsg) *Response {
	r.Messages = append(r.Messages, msg)
	return r
}

// AddAttribute appends an attribute
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, sdk.NewAttribute(key, value))
	return r
}

// SetData sets the response data
func (r *Response) SetData(data []byte) *Response {
	r.Data = data
	return r
}

// Attribute returns the value of the first attribute with key
func (r *Response) Attribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Event renders the attributes as a single SDK event
func (r *Response) Event() sdk.Event {
	return sdk.NewEvent(EventTypeTradingBridge, r.Attributes...)
}
