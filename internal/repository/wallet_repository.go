package repository

import (
	"fmt"

	"ledger-api/internal/models"

	"github.com/jmoiron/sqlx"
)

type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) FindAll(limit, offset int, search string) ([]models.CryptoWallet, int, error) {
	var wallets []models.CryptoWallet
	var total int

	whereClause := ""
	args := []interface{}{}

	if search != "" {
		whereClause = "WHERE display_name LIKE ? OR crypto_wallet_address LIKE ?"
		searchPattern := "%" + search + "%"
		args = append(args, searchPattern, searchPattern)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM crypto_wallets %s", whereClause)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id,
		       display_name,
		       crypto_wallet_address,
		       crypto_wallet_type,
		       COALESCE(description, '') as description,
		       tax_code,
		       current_balance,
		       inactive,
		       created_at,
		       updated_at
		FROM crypto_wallets %s
		ORDER BY display_name
		LIMIT ? OFFSET ?`, whereClause)
	args = append(args, limit, offset)
	err = r.db.Select(&wallets, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return wallets, total, nil
}

func (r *WalletRepository) FindByID(id int) (*models.CryptoWallet, error) {
	var wallet models.CryptoWallet
	query := `
		SELECT id,
		       display_name,
		       crypto_wallet_address,
		       crypto_wallet_type,
		       COALESCE(description, '') as description,
		       tax_code,
		       current_balance,
		       inactive,
		       created_at,
		       updated_at
		FROM crypto_wallets
		WHERE id = ?
		LIMIT 1`
	err := r.db.Get(&wallet, query, id)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) Create(wallet *models.CryptoWallet) error {
	query := `INSERT INTO crypto_wallets (display_name, crypto_wallet_address, crypto_wallet_type, description, tax_code, current_balance, inactive)
	          VALUES (:display_name, :crypto_wallet_address, :crypto_wallet_type, :description, :tax_code, :current_balance, :inactive)`
	result, err := r.db.NamedExec(query, wallet)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	wallet.ID = int(id)
	return nil
}

func (r *WalletRepository) Update(wallet *models.CryptoWallet) error {
	query := `UPDATE crypto_wallets SET display_name = :display_name,
	          crypto_wallet_address = :crypto_wallet_address,
	          crypto_wallet_type = :crypto_wallet_type,
	          description = :description, tax_code = :tax_code, inactive = :inactive
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, wallet)
	return err
}

func (r *WalletRepository) Delete(id int) error {
	query := "DELETE FROM crypto_wallets WHERE id = ?"
	_, err := r.db.Exec(query, id)
	return err
}
