package storage

import (
	"sort"
	"time"
)

// MockRepository is an in-memory implementation of Repository for testing.
type MockRepository struct {
	credentials map[string]*Credential
	reports     map[int64]*ReportRecord
	nextID      int64

	// Hooks for test assertions
	UpsertTokenCalled bool
	LastUpsertedToken *Credential
	SaveReportCalled  bool
	LastSavedReport   *ReportRecord

	// Error injection for testing error paths
	UpsertTokenErr error
	GetTokenErr    error
	SaveReportErr  error
	ListReportsErr error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{
		credentials: make(map[string]*Credential),
		reports:     make(map[int64]*ReportRecord),
		nextID:      1,
	}
}

// UpsertToken creates or replaces the credential for cred.ShopName
func (m *MockRepository) UpsertToken(cred *Credential) error {
	m.UpsertTokenCalled = true
	if m.UpsertTokenErr != nil {
		return m.UpsertTokenErr
	}
	clone := *cred
	if clone.UpdatedAt.IsZero() {
		clone.UpdatedAt = time.Now().UTC()
	}
	m.credentials[cred.ShopName] = &clone
	m.LastUpsertedToken = &clone
	return nil
}

// ListShopNames returns all shop names with stored credentials
func (m *MockRepository) ListShopNames() ([]string, error) {
	names := make([]string, 0, len(m.credentials))
	for name := range m.credentials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GetToken retrieves the credential for a shop
func (m *MockRepository) GetToken(shopName string) (*Credential, error) {
	if m.GetTokenErr != nil {
		return nil, m.GetTokenErr
	}
	cred, ok := m.credentials[shopName]
	if !ok {
		return nil, ErrTokenNotFound
	}
	clone := *cred
	return &clone, nil
}

// SaveReport archives an export and returns its id
func (m *MockRepository) SaveReport(rec *ReportRecord) (int64, error) {
	m.SaveReportCalled = true
	if m.SaveReportErr != nil {
		return 0, m.SaveReportErr
	}
	clone := *rec
	clone.ID = m.nextID
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now().UTC()
	}
	m.nextID++
	m.reports[clone.ID] = &clone
	m.LastSavedReport = &clone
	return clone.ID, nil
}

// ListReports returns the most recent reports for a shop, newest first
func (m *MockRepository) ListReports(shopName string, limit int) ([]ReportSummary, error) {
	if m.ListReportsErr != nil {
		return nil, m.ListReportsErr
	}
	if limit <= 0 {
		limit = 20
	}

	var out []ReportSummary
	for _, rec := range m.reports {
		if rec.ShopName != shopName {
			continue
		}
		out = append(out, ReportSummary{
			ID:        rec.ID,
			ShopName:  rec.ShopName,
			DateRange: rec.DateRange,
			SizeBytes: int64(len(rec.Content)),
			CreatedAt: rec.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetReport retrieves a full archived report by id
func (m *MockRepository) GetReport(id int64) (*ReportRecord, error) {
	rec, ok := m.reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	clone := *rec
	return &clone, nil
}

// Close is a no-op for the mock
func (m *MockRepository) Close() error {
	return nil
}
