package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
)

type mockRaporRepo struct {
	yeni     []models.RaporTalep
	degisen  []models.DurumDegisikligi
	err      error
	lastFrom string
	lastTo   string
}

func (m *mockRaporRepo) NewBetween(ctx context.Context, start, end string) ([]models.RaporTalep, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFrom, m.lastTo = start, end
	return m.yeni, nil
}

func (m *mockRaporRepo) DurumDegisiklikleriBetween(ctx context.Context, start, end string) ([]models.DurumDegisikligi, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.degisen, nil
}

func TestRaporMissingBounds(t *testing.T) {
	svc := NewRaporService(&mockRaporRepo{}, nil, nil)

	_, err := svc.Generate(context.Background(), models.RaporIstek{BaslangicTarihi: "2025-03-01"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Başlangıç ve bitiş tarihi gereklidir", appErr.Message)
}

func TestRaporRejectsBadDateFormat(t *testing.T) {
	svc := NewRaporService(&mockRaporRepo{}, nil, nil)

	_, err := svc.Generate(context.Background(), models.RaporIstek{
		BaslangicTarihi: "01.03.2025",
		BitisTarihi:     "2025-03-31",
	})
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Tarih formatı geçersiz", appErr.Message)
}

func TestRaporTotalsMatchSetLengths(t *testing.T) {
	repo := &mockRaporRepo{
		yeni: []models.RaporTalep{
			{Kategori: models.KategoriYeniTalep, Talep: models.Talep{ID: "1"}},
			{Kategori: models.KategoriYeniTalep, Talep: models.Talep{ID: "2"}},
		},
		degisen: []models.DurumDegisikligi{
			{Kategori: models.KategoriDurumDegisikligi, Talep: models.Talep{ID: "1"},
				EskiDurum: models.DurumIletildi, YeniDurum: models.DurumOlumlu},
		},
	}
	svc := NewRaporService(repo, nil, nil)

	rapor, err := svc.Generate(context.Background(), models.RaporIstek{
		BaslangicTarihi: "2025-03-01",
		BitisTarihi:     "2025-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rapor.ToplamYeni)
	assert.Equal(t, 1, rapor.ToplamDurumDegisikligi)
	assert.Equal(t, "2025-03-01", repo.lastFrom)
	assert.Equal(t, "2025-03-31", repo.lastTo)
}

func TestRaporRepositoryFailure(t *testing.T) {
	svc := NewRaporService(&mockRaporRepo{err: errors.New("connection reset")}, nil, nil)

	_, err := svc.Generate(context.Background(), models.RaporIstek{
		BaslangicTarihi: "2025-03-01",
		BitisTarihi:     "2025-03-31",
	})
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Rapor oluşturulurken hata oluştu", appErr.Message)
}
