package models

import "time"

// CreateTransactionRequest is the body of POST /transactions/.
//
// Fields are pointers so that a missing field can be told apart from a zero
// value during validation.
type CreateTransactionRequest struct {
	Amount      *float64   `json:"amount"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date,omitempty"`
}

// ToTransaction converts a validated request into a transaction draft.
// The draft has no ID; a nil Date is left zero so the store stamps it.
func (r CreateTransactionRequest) ToTransaction() Transaction {
	var t Transaction
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Category != nil {
		t.Category = *r.Category
	}
	if r.Date != nil {
		t.Date = r.Date.UTC()
	}
	return t
}
