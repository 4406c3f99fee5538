package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID             int             `db:"id" json:"id"`
	DisplayName    string          `db:"display_name" json:"display_name"`
	AccountCode    string          `db:"account_code" json:"account_code"`
	AccountType    AccountType     `db:"account_type" json:"account_type"`
	AccountGroup   AccountGroup    `db:"account_group" json:"account_group"`
	Description    string          `db:"description" json:"description"`
	TaxType        TaxType         `db:"tax_type" json:"tax_type"`
	CurrentBalance decimal.Decimal `db:"current_balance" json:"current_balance"`
	Inactive       bool            `db:"inactive" json:"inactive"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

type AccountRequest struct {
	DisplayName string      `json:"display_name" validate:"required"`
	AccountCode string      `json:"account_code" validate:"required"`
	AccountType AccountType `json:"account_type" validate:"required"`
	Description string      `json:"description"`
	TaxType     TaxType     `json:"tax_type"`
	Inactive    bool        `json:"inactive"`
}

// UpdateAccountRequest carries the mutable fields of an account. Code and type
// are fixed at creation time.
type UpdateAccountRequest struct {
	DisplayName string  `json:"display_name"`
	Description string  `json:"description"`
	TaxType     TaxType `json:"tax_type"`
	Inactive    bool    `json:"inactive"`
}
