// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Transaction is a single financial ledger entry.
//
// ID and Date are assigned by the store on creation; after that the record is
// read-only until it is deleted.
type Transaction struct {
	// ID is the unique, monotonically increasing identifier of the entry.
	// It is never reused, even after the entry is deleted.
	ID int64 `json:"id"`

	// Amount is the monetary value of the entry. No sign or range
	// constraint is enforced.
	Amount float64 `json:"amount"`

	// Description is a free-form note describing the entry.
	Description string `json:"description"`

	// Category groups entries (e.g. "food", "rent").
	Category string `json:"category"`

	// Date is the moment the entry was recorded, always in UTC.
	Date time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
