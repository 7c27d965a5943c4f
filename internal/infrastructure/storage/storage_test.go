package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	cred := &Credential{
		ShopName:     "TokoBagus",
		ShopID:       123456,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}
	require.NoError(t, s.UpsertToken(cred))

	got, err := s.GetToken("TokoBagus")
	require.NoError(t, err)
	assert.Equal(t, int64(123456), got.ShopID)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestUpsertTokenReplaces(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.UpsertToken(&Credential{ShopName: "Toko", ShopID: 1, AccessToken: "old", RefreshToken: "old-r"}))
	require.NoError(t, s.UpsertToken(&Credential{ShopName: "Toko", ShopID: 2, AccessToken: "new", RefreshToken: "new-r"}))

	got, err := s.GetToken("Toko")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ShopID)
	assert.Equal(t, "new", got.AccessToken)

	names, err := s.ListShopNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Toko"}, names, "upsert must not duplicate the shop")
}

func TestGetTokenNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetToken("Unknown")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestListShopNamesSorted(t *testing.T) {
	s := newTestStorage(t)

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		require.NoError(t, s.UpsertToken(&Credential{ShopName: name, ShopID: 1, AccessToken: "t"}))
	}

	names, err := s.ListShopNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names)
}

func TestReportArchive(t *testing.T) {
	s := newTestStorage(t)

	content := []byte("fake-xlsx-bytes")
	id, err := s.SaveReport(&ReportRecord{
		ShopName:  "Toko",
		DateRange: "CONVERSION 2025-01-01_2025-01-31",
		Content:   content,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	rec, err := s.GetReport(id)
	require.NoError(t, err)
	assert.Equal(t, "Toko", rec.ShopName)
	assert.Equal(t, "CONVERSION 2025-01-01_2025-01-31", rec.DateRange)
	assert.Equal(t, content, rec.Content)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestGetReportNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetReport(9999)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestListReportsNewestFirstAndLimited(t *testing.T) {
	s := newTestStorage(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.SaveReport(&ReportRecord{
			ShopName:  "Toko",
			DateRange: "CONVERSION",
			Content:   []byte{byte(i)},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	// Another shop's reports must not leak in
	_, err := s.SaveReport(&ReportRecord{ShopName: "Lain", DateRange: "CONVERSION", Content: []byte("x")})
	require.NoError(t, err)

	got, err := s.ListReports("Toko", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
	assert.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
	for _, sum := range got {
		assert.Equal(t, "Toko", sum.ShopName)
		assert.Equal(t, int64(1), sum.SizeBytes)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s1, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, s1.UpsertToken(&Credential{ShopName: "Toko", ShopID: 1, AccessToken: "t"}))
	require.NoError(t, s1.Close())

	// Reopening runs the migration check again; data survives
	s2, err := NewStorage(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.GetToken("Toko")
	require.NoError(t, err)
	assert.Equal(t, "t", got.AccessToken)
}
