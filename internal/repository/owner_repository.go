package repository

import (
	"ledger-api/internal/models"

	"github.com/jmoiron/sqlx"
)

// ownerRowID is the fixed row the singleton owner record lives under.
const ownerRowID = 1

type OwnerRepository struct {
	db *sqlx.DB
}

func NewOwnerRepository(db *sqlx.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Get() (*models.OwnerInfo, error) {
	var owner models.OwnerInfo
	query := `
		SELECT id,
		       display_name,
		       COALESCE(owner_name, '') as owner_name,
		       COALESCE(address_line_1, '') as address_line_1,
		       COALESCE(address_line_2, '') as address_line_2,
		       COALESCE(city, '') as city,
		       COALESCE(region, '') as region,
		       COALESCE(postal_code, '') as postal_code,
		       COALESCE(country, '') as country,
		       COALESCE(owner_telephone, '') as owner_telephone,
		       COALESCE(owner_website, '') as owner_website
		FROM owner_info
		WHERE id = ?
		LIMIT 1`
	err := r.db.Get(&owner, query, ownerRowID)
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerRepository) Create(owner *models.OwnerInfo) error {
	owner.ID = ownerRowID
	query := `INSERT INTO owner_info (id, display_name, owner_name, address_line_1, address_line_2, city, region, postal_code, country, owner_telephone, owner_website)
	          VALUES (:id, :display_name, :owner_name, :address_line_1, :address_line_2, :city, :region, :postal_code, :country, :owner_telephone, :owner_website)`
	_, err := r.db.NamedExec(query, owner)
	return err
}

func (r *OwnerRepository) Update(owner *models.OwnerInfo) error {
	owner.ID = ownerRowID
	query := `UPDATE owner_info SET display_name = :display_name, owner_name = :owner_name,
	          address_line_1 = :address_line_1, address_line_2 = :address_line_2,
	          city = :city, region = :region, postal_code = :postal_code, country = :country,
	          owner_telephone = :owner_telephone, owner_website = :owner_website
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, owner)
	return err
}
