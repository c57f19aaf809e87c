package service

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
	"github.com/izmirulasim/talep-takip-api/pkg/export"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult carries the rendered file and its download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders a report as a downloadable CSV or PDF table.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, logger: logger}
}

// exportHeaders lays the columns out the way the browser export always has:
// category first, the record fields in form order, then the status-change
// columns that stay empty on "Yeni Talep" rows.
var exportHeaders = []string{
	"Kategori",
	models.AlanIsimleri["talepSahibi"],
	models.AlanIsimleri["talepSahibiAciklamasi"],
	models.AlanIsimleri["talepSahibiDigerAciklama"],
	models.AlanIsimleri["talepIlcesi"],
	models.AlanIsimleri["bolge"],
	models.AlanIsimleri["hatNo"],
	models.AlanIsimleri["isletici"],
	models.AlanIsimleri["talepOzeti"],
	models.AlanIsimleri["talepIletimSekli"],
	models.AlanIsimleri["evrakTarihi"],
	models.AlanIsimleri["evrakSayisi"],
	models.AlanIsimleri["yapılanIs"],
	models.AlanIsimleri["talepDurumu"],
	"Oluşturma Tarihi",
	"Eski Durum",
	"Yeni Durum",
	"Değişiklik Tarihi",
}

// Render builds the tabular dataset for the report and renders it in the
// requested format.
func (s *ExportService) Render(rapor *models.RaporSonucu, req models.RaporIstek, format string) (*ExportResult, error) {
	dataset := buildRaporDataset(rapor)
	title := fmt.Sprintf("Talep Raporu %s / %s", req.BaslangicTarihi, req.BitisTarihi)
	filename := fmt.Sprintf("talep-raporu-%s-%s.%s", req.BaslangicTarihi, req.BitisTarihi, format)

	var (
		payload     []byte
		contentType string
		err         error
	)
	switch format {
	case FormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv; charset=utf-8"
	case FormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "Geçersiz dışa aktarma formatı")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Rapor dışa aktarılırken hata oluştu")
	}

	return &ExportResult{Filename: filename, ContentType: contentType, Payload: payload}, nil
}

func buildRaporDataset(rapor *models.RaporSonucu) export.Dataset {
	rows := make([]map[string]string, 0, len(rapor.YeniTalepler)+len(rapor.DurumDegisiklikleri))
	for i := range rapor.YeniTalepler {
		item := &rapor.YeniTalepler[i]
		row := talepRow(item.Kategori, &item.Talep)
		rows = append(rows, row)
	}
	for i := range rapor.DurumDegisiklikleri {
		item := &rapor.DurumDegisiklikleri[i]
		row := talepRow(item.Kategori, &item.Talep)
		row["Eski Durum"] = item.EskiDurum
		row["Yeni Durum"] = item.YeniDurum
		row["Değişiklik Tarihi"] = item.DurumDegisiklikTarihi
		rows = append(rows, row)
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}

func talepRow(kategori string, t *models.Talep) map[string]string {
	return map[string]string{
		"Kategori":                                      kategori,
		models.AlanIsimleri["talepSahibi"]:              t.TalepSahibi,
		models.AlanIsimleri["talepSahibiAciklamasi"]:    t.TalepSahibiAciklamasi,
		models.AlanIsimleri["talepSahibiDigerAciklama"]: derefOrEmpty(t.TalepSahibiDigerAciklama),
		models.AlanIsimleri["talepIlcesi"]:              t.TalepIlcesi,
		models.AlanIsimleri["bolge"]:                    strconv.Itoa(t.Bolge),
		models.AlanIsimleri["hatNo"]:                    t.HatNo,
		models.AlanIsimleri["isletici"]:                 t.Isletici,
		models.AlanIsimleri["talepOzeti"]:               t.TalepOzeti,
		models.AlanIsimleri["talepIletimSekli"]:         t.TalepIletimSekli,
		models.AlanIsimleri["evrakTarihi"]:              derefOrEmpty(t.EvrakTarihi),
		models.AlanIsimleri["evrakSayisi"]:              derefOrEmpty(t.EvrakSayisi),
		models.AlanIsimleri["yapılanIs"]:                t.YapilanIs,
		models.AlanIsimleri["talepDurumu"]:              t.TalepDurumu,
		"Oluşturma Tarihi":                              t.OlusturmaTarihi,
	}
}

func derefOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
