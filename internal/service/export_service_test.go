package service

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
)

func sampleRapor() *models.RaporSonucu {
	return &models.RaporSonucu{
		YeniTalepler: []models.RaporTalep{
			{Kategori: models.KategoriYeniTalep, Talep: models.Talep{
				ID:          "1",
				TalepSahibi: models.PaydasDis,
				TalepIlcesi: "Konak",
				Bolge:       2,
				HatNo:       "169",
				Isletici:    models.IsleticiEshot,
				TalepOzeti:  "Sefer sıklığı artırılsın",
				TalepDurumu: models.DurumIletildi,
			}},
		},
		DurumDegisiklikleri: []models.DurumDegisikligi{
			{Kategori: models.KategoriDurumDegisikligi, Talep: models.Talep{ID: "2", TalepIlcesi: "Buca"},
				EskiDurum: models.DurumIletildi, YeniDurum: models.DurumOlumlu,
				DurumDegisiklikTarihi: "15.03.2025 10:42"},
		},
		ToplamYeni:             1,
		ToplamDurumDegisikligi: 1,
	}
}

func exportReq() models.RaporIstek {
	return models.RaporIstek{BaslangicTarihi: "2025-03-01", BitisTarihi: "2025-03-31"}
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	result, err := svc.Render(sampleRapor(), exportReq(), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "talep-raporu-2025-03-01-2025-03-31.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	assert.True(t, bytes.HasPrefix(result.Payload, []byte{0xEF, 0xBB, 0xBF}), "Excel needs the UTF-8 BOM")

	body := string(result.Payload)
	assert.Contains(t, body, "Kategori;Talep Sahibi")
	assert.Contains(t, body, "Yeni Talep")
	assert.Contains(t, body, "Durum Değişikliği")
	assert.Contains(t, body, "15.03.2025 10:42")

	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, 3, "header plus one row per report entry")
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	result, err := svc.Render(sampleRapor(), exportReq(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "talep-raporu-2025-03-01-2025-03-31.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, bytes.HasPrefix(result.Payload, []byte("%PDF")))
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(nil, nil, nil)

	_, err := svc.Render(sampleRapor(), exportReq(), "xlsx")
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Geçersiz dışa aktarma formatı", appErr.Message)
}
