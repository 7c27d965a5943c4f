package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Storage provides SQLite database access for credentials and archived
// reports. It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// UpsertToken creates or replaces the credential for cred.ShopName
func (s *Storage) UpsertToken(cred *Credential) error {
	_, err := s.db.Exec(`
	INSERT INTO shopee_tokens (shop_name, shop_id, access_token, refresh_token, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(shop_name) DO UPDATE SET
		shop_id = excluded.shop_id,
		access_token = excluded.access_token,
		refresh_token = excluded.refresh_token,
		updated_at = excluded.updated_at`,
		cred.ShopName,
		cred.ShopID,
		cred.AccessToken,
		cred.RefreshToken,
		time.Now().UTC(),
	)
	return err
}

// ListShopNames returns all shop names with stored credentials
func (s *Storage) ListShopNames() ([]string, error) {
	rows, err := s.db.Query("SELECT shop_name FROM shopee_tokens ORDER BY shop_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetToken retrieves the credential for a shop
func (s *Storage) GetToken(shopName string) (*Credential, error) {
	cred := &Credential{}
	err := s.db.QueryRow(`
	SELECT shop_name, shop_id, access_token, refresh_token, updated_at
	FROM shopee_tokens WHERE shop_name = ?`, shopName).Scan(
		&cred.ShopName,
		&cred.ShopID,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	return cred, nil
}

// SaveReport archives an export and returns its id
func (s *Storage) SaveReport(rec *ReportRecord) (int64, error) {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.Exec(`
	INSERT INTO shopee_reports (shop_name, date_range, content, created_at)
	VALUES (?, ?, ?, ?)`,
		rec.ShopName,
		rec.DateRange,
		rec.Content,
		createdAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListReports returns the most recent reports for a shop, newest first
func (s *Storage) ListReports(shopName string, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
	SELECT id, shop_name, date_range, LENGTH(content), created_at
	FROM shopee_reports
	WHERE shop_name = ?
	ORDER BY created_at DESC, id DESC
	LIMIT ?`, shopName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReportSummary
	for rows.Next() {
		var sum ReportSummary
		if err := rows.Scan(&sum.ID, &sum.ShopName, &sum.DateRange, &sum.SizeBytes, &sum.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// GetReport retrieves a full archived report by id
func (s *Storage) GetReport(id int64) (*ReportRecord, error) {
	rec := &ReportRecord{}
	err := s.db.QueryRow(`
	SELECT id, shop_name, date_range, content, created_at
	FROM shopee_reports WHERE id = ?`, id).Scan(
		&rec.ID,
		&rec.ShopName,
		&rec.DateRange,
		&rec.Content,
		&rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
