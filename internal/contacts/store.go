// Package contacts is the local point-of-contact directory: a single-file
// sqlite table keyed by (org, name) with upsert-on-conflict semantics.
package contacts

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Contact is one directory row. Email and phone may be empty.
type Contact struct {
	Org   string
	Name  string
	Email string
	Phone string
}

// Store wraps the sqlite directory. Each CLI run opens it exclusively;
// these are single-operator tools, so no concurrent-writer protection is
// needed beyond sqlite's own locking.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS pocs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	org TEXT NOT NULL,
	name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	UNIQUE(org, name)
)`

// Open creates the database file and schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open contacts db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init contacts schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert inserts or replaces the row for (org, name). Last write wins.
func (s *Store) Upsert(c Contact) error {
	_, err := s.db.Exec(`
		INSERT INTO pocs (org, name, email, phone)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(org, name) DO UPDATE SET
			email = excluded.email,
			phone = excluded.phone`,
		c.Org, c.Name, c.Email, c.Phone)
	if err != nil {
		return fmt.Errorf("upsert contact %s/%s: %w", c.Org, c.Name, err)
	}
	return nil
}

// ByOrg lists the contacts on file for one organization.
func (s *Store) ByOrg(org string) ([]Contact, error) {
	rows, err := s.db.Query(`SELECT org, name, email, phone FROM pocs WHERE org = ? ORDER BY name`, org)
	if err != nil {
		return nil, err
	}
	return scanContacts(rows)
}

// All lists the whole directory ordered by org, then name.
func (s *Store) All() ([]Contact, error) {
	rows, err := s.db.Query(`SELECT org, name, email, phone FROM pocs ORDER BY org, name`)
	if err != nil {
		return nil, err
	}
	return scanContacts(rows)
}

// Delete removes one contact by its unique key.
func (s *Store) Delete(org, name string) error {
	_, err := s.db.Exec(`DELETE FROM pocs WHERE org = ? AND name = ?`, org, name)
	return err
}

func scanContacts(rows *sql.Rows) ([]Contact, error) {
	defer rows.Close()
	var out []Contact
	for rows.Next() {
		var c Contact
		var email, phone sql.NullString
		if err := rows.Scan(&c.Org, &c.Name, &email, &phone); err != nil {
			return out, err
		}
		c.Email = email.String
		c.Phone = phone.String
		out = append(out, c)
	}
	return out, rows.Err()
}
