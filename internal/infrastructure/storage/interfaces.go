package storage

import "errors"

// ErrTokenNotFound is returned when a shop has no stored credential.
var ErrTokenNotFound = errors.New("storage: token not found")

// ErrReportNotFound is returned when an archived report id does not exist.
var ErrReportNotFound = errors.New("storage: report not found")

// Repository defines the complete storage interface.
// This interface allows swapping implementations and makes testing with
// mocks straightforward.
type Repository interface {
	CredentialRepository
	ReportRepository
	Close() error
}

// CredentialRepository handles per-shop token storage
type CredentialRepository interface {
	// UpsertToken creates or replaces the credential for cred.ShopName
	UpsertToken(cred *Credential) error

	// ListShopNames returns all shop names with stored credentials
	ListShopNames() ([]string, error)

	// GetToken retrieves the credential for a shop.
	// Returns ErrTokenNotFound when the shop has never been authorized.
	GetToken(shopName string) (*Credential, error)
}

// ReportRepository archives generated exports
type ReportRepository interface {
	// SaveReport archives an export and returns its id
	SaveReport(rec *ReportRecord) (int64, error)

	// ListReports returns the most recent reports for a shop, newest first.
	// limit <= 0 means a default of 20.
	ListReports(shopName string, limit int) ([]ReportSummary, error)

	// GetReport retrieves a full archived report by id.
	// Returns ErrReportNotFound when the id does not exist.
	GetReport(id int64) (*ReportRecord, error)
}
