package models

// OwnerInfo is a singleton row (id=1) describing the books' owner.
type OwnerInfo struct {
	ID             int    `db:"id" json:"id"`
	DisplayName    string `db:"display_name" json:"display_name"`
	OwnerName      string `db:"owner_name" json:"owner_name"`
	AddressLine1   string `db:"address_line_1" json:"address_line_1"`
	AddressLine2   string `db:"address_line_2" json:"address_line_2"`
	City           string `db:"city" json:"city"`
	Region         string `db:"region" json:"region"`
	PostalCode     string `db:"postal_code" json:"postal_code"`
	Country        string `db:"country" json:"country"`
	OwnerTelephone string `db:"owner_telephone" json:"owner_telephone"`
	OwnerWebsite   string `db:"owner_website" json:"owner_website"`
}
