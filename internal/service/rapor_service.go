package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
)

type raporRepository interface {
	NewBetween(ctx context.Context, start, end string) ([]models.RaporTalep, error)
	DurumDegisiklikleriBetween(ctx context.Context, start, end string) ([]models.DurumDegisikligi, error)
}

// RaporService builds the date-range activity report.
type RaporService struct {
	repo      raporRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRaporService creates an instance of RaporService.
func NewRaporService(repo raporRepository, validate *validator.Validate, logger *zap.Logger) *RaporService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RaporService{repo: repo, validator: validate, logger: logger}
}

// Generate collects the records created in the range and the status changes
// recorded in the range, with their totals.
func (s *RaporService) Generate(ctx context.Context, req models.RaporIstek) (*models.RaporSonucu, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Başlangıç ve bitiş tarihi gereklidir")
	}
	for _, bound := range []string{req.BaslangicTarihi, req.BitisTarihi} {
		if _, err := time.Parse("2006-01-02", bound); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Tarih formatı geçersiz")
		}
	}

	yeniTalepler, err := s.repo.NewBetween(ctx, req.BaslangicTarihi, req.BitisTarihi)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Rapor oluşturulurken hata oluştu")
	}

	durumDegisiklikleri, err := s.repo.DurumDegisiklikleriBetween(ctx, req.BaslangicTarihi, req.BitisTarihi)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Rapor oluşturulurken hata oluştu")
	}

	return &models.RaporSonucu{
		YeniTalepler:           yeniTalepler,
		DurumDegisiklikleri:    durumDegisiklikleri,
		ToplamYeni:             len(yeniTalepler),
		ToplamDurumDegisikligi: len(durumDegisiklikleri),
	}, nil
}
