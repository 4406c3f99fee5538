package repository

import (
	"fmt"
	"strings"

	"ledger-api/internal/models"

	"github.com/jmoiron/sqlx"
)

// JournalRepository persists journal entries. Line items cross this boundary
// as the opaque blob produced by models.EncodeLines; every read decodes them
// back into structured form.
type JournalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

const journalSelectColumns = `
		id,
		DATE_FORMAT(date, '%Y-%m-%d') as date,
		journal_lines,
		COALESCE(description, '') as description,
		posted,
		COALESCE(journal_type, '') as journal_type,
		validate_journal_type,
		created_at,
		updated_at`

func (r *JournalRepository) Create(entry *models.JournalEntry) error {
	query := `INSERT INTO journal_entries (date, journal_lines, description, posted, journal_type, validate_journal_type)
	          VALUES (:date, :journal_lines, :description, :posted, NULLIF(:journal_type, ''), :validate_journal_type)`
	result, err := r.db.NamedExec(query, entry)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	entry.ID = int(id)
	return nil
}

func (r *JournalRepository) FindByID(id int) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	query := fmt.Sprintf("SELECT %s FROM journal_entries WHERE id = ? LIMIT 1", journalSelectColumns)
	if err := r.db.Get(&entry, query, id); err != nil {
		return nil, err
	}
	lines, err := models.DecodeLines(entry.LinesBlob)
	if err != nil {
		return nil, err
	}
	entry.JournalLines = lines
	return &entry, nil
}

func (r *JournalRepository) FindAll(limit, offset int, search string) ([]models.JournalEntry, int, error) {
	var entries []models.JournalEntry
	var total int

	whereClause := ""
	args := []interface{}{}

	if search != "" {
		whereClause = "WHERE description LIKE ?"
		args = append(args, "%"+search+"%")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM journal_entries %s", whereClause)
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM journal_entries %s ORDER BY date, id LIMIT ? OFFSET ?",
		journalSelectColumns, whereClause)
	args = append(args, limit, offset)
	if err := r.db.Select(&entries, query, args...); err != nil {
		return nil, 0, err
	}

	if err := decodeEntryLines(entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// FindByDateRange returns entries whose date falls within the inclusive
// window. An empty bound leaves that side of the window open.
func (r *JournalRepository) FindByDateRange(startDate, endDate string) ([]models.JournalEntry, error) {
	var conditions []string
	args := []interface{}{}

	if startDate != "" {
		conditions = append(conditions, "date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		conditions = append(conditions, "date <= ?")
		args = append(args, endDate)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var entries []models.JournalEntry
	query := fmt.Sprintf("SELECT %s FROM journal_entries %s ORDER BY date, id",
		journalSelectColumns, whereClause)
	if err := r.db.Select(&entries, query, args...); err != nil {
		return nil, err
	}

	if err := decodeEntryLines(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *JournalRepository) Update(entry *models.JournalEntry) error {
	query := `UPDATE journal_entries SET date = :date, journal_lines = :journal_lines,
	          description = :description, posted = :posted,
	          journal_type = NULLIF(:journal_type, ''),
	          validate_journal_type = :validate_journal_type
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, entry)
	return err
}

func (r *JournalRepository) Delete(id int) error {
	query := "DELETE FROM journal_entries WHERE id = ?"
	_, err := r.db.Exec(query, id)
	return err
}

func decodeEntryLines(entries []models.JournalEntry) error {
	for i := range entries {
		lines, err := models.DecodeLines(entries[i].LinesBlob)
		if err != nil {
			return err
		}
		entries[i].JournalLines = lines
	}
	return nil
}
