package repository

import (
	"fmt"

	"ledger-api/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindAll(limit, offset int, search string) ([]models.Account, int, error) {
	var accounts []models.Account
	var total int

	// Build query with search
	whereClause := ""
	args := []interface{}{}

	if search != "" {
		whereClause = "WHERE account_code LIKE ? OR display_name LIKE ?"
		searchPattern := "%" + search + "%"
		args = append(args, searchPattern, searchPattern)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM accounts %s", whereClause)
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id,
		       display_name,
		       account_code,
		       account_type,
		       account_group,
		       COALESCE(description, '') as description,
		       tax_type,
		       current_balance,
		       inactive,
		       created_at,
		       updated_at
		FROM accounts %s
		ORDER BY account_code
		LIMIT ? OFFSET ?`, whereClause)
	args = append(args, limit, offset)
	err = r.db.Select(&accounts, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (r *AccountRepository) FindByID(id int) (*models.Account, error) {
	var account models.Account
	query := `
		SELECT id,
		       display_name,
		       account_code,
		       account_type,
		       account_group,
		       COALESCE(description, '') as description,
		       tax_type,
		       current_balance,
		       inactive,
		       created_at,
		       updated_at
		FROM accounts
		WHERE id = ?
		LIMIT 1`
	err := r.db.Get(&account, query, id)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByCode(code string) (*models.Account, error) {
	var account models.Account
	query := `
		SELECT id,
		       display_name,
		       account_code,
		       account_type,
		       account_group,
		       COALESCE(description, '') as description,
		       tax_type,
		       current_balance,
		       inactive,
		       created_at,
		       updated_at
		FROM accounts
		WHERE account_code = ?
		LIMIT 1`
	err := r.db.Get(&account, query, code)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Create(account *models.Account) error {
	query := `INSERT INTO accounts (display_name, account_code, account_type, account_group, description, tax_type, current_balance, inactive)
	          VALUES (:display_name, :account_code, :account_type, :account_group, :description, :tax_type, :current_balance, :inactive)`
	result, err := r.db.NamedExec(query, account)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	account.ID = int(id)
	return nil
}

func (r *AccountRepository) Update(account *models.Account) error {
	query := `UPDATE accounts SET display_name = :display_name, description = :description,
	          tax_type = :tax_type, inactive = :inactive
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, account)
	return err
}

func (r *AccountRepository) Delete(id int) error {
	query := "DELETE FROM accounts WHERE id = ?"
	_, err := r.db.Exec(query, id)
	return err
}

// UpdateBalanceByCode writes the recomputed running balance for every account
// carrying the given code.
func (r *AccountRepository) UpdateBalanceByCode(code string, balance decimal.Decimal) error {
	query := "UPDATE accounts SET current_balance = ? WHERE account_code = ?"
	_, err := r.db.Exec(query, balance, code)
	return err
}
