package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		display_name VARCHAR(100) NOT NULL,
		account_code VARCHAR(50) NOT NULL,
		account_type VARCHAR(50) NOT NULL,
		account_group VARCHAR(20) NOT NULL DEFAULT '',
		description TEXT,
		tax_type VARCHAR(20) NOT NULL DEFAULT 'NONE',
		current_balance DECIMAL(18,2) NOT NULL DEFAULT 0,
		inactive BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_accounts_code (account_code)
	)`,

	`CREATE TABLE IF NOT EXISTS crypto_wallets (
		id INT AUTO_INCREMENT PRIMARY KEY,
		display_name VARCHAR(100) NOT NULL,
		crypto_wallet_address VARCHAR(255) NOT NULL,
		crypto_wallet_type VARCHAR(50) NOT NULL,
		description TEXT,
		tax_code VARCHAR(20) NOT NULL DEFAULT 'NONE',
		current_balance DECIMAL(18,8) NOT NULL DEFAULT 0,
		inactive BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS owner_info (
		id INT PRIMARY KEY,
		display_name VARCHAR(100) NOT NULL,
		owner_name VARCHAR(100),
		address_line_1 VARCHAR(255),
		address_line_2 VARCHAR(255),
		city VARCHAR(100),
		region VARCHAR(100),
		postal_code VARCHAR(20),
		country VARCHAR(100),
		owner_telephone VARCHAR(50),
		owner_website VARCHAR(255)
	)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id INT AUTO_INCREMENT PRIMARY KEY,
		date DATE NOT NULL,
		journal_lines TEXT NOT NULL,
		description TEXT,
		posted BOOLEAN NOT NULL DEFAULT TRUE,
		journal_type VARCHAR(30),
		validate_journal_type BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_journal_entries_date (date)
	)`,
}

// EnsureSchema creates the tables the API needs if they do not exist yet.
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
