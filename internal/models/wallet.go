package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CryptoWallet struct {
	ID                  int             `db:"id" json:"id"`
	DisplayName         string          `db:"display_name" json:"display_name"`
	CryptoWalletAddress string          `db:"crypto_wallet_address" json:"crypto_wallet_address"`
	CryptoWalletType    string          `db:"crypto_wallet_type" json:"crypto_wallet_type"`
	Description         string          `db:"description" json:"description"`
	TaxCode             TaxType         `db:"tax_code" json:"tax_code"`
	CurrentBalance      decimal.Decimal `db:"current_balance" json:"current_balance"`
	Inactive            bool            `db:"inactive" json:"inactive"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}

type CryptoWalletRequest struct {
	DisplayName         string  `json:"display_name" validate:"required"`
	CryptoWalletAddress string  `json:"crypto_wallet_address" validate:"required"`
	CryptoWalletType    string  `json:"crypto_wallet_type" validate:"required"`
	Description         string  `json:"description"`
	TaxCode             TaxType `json:"tax_code"`
	Inactive            bool    `json:"inactive"`
}
