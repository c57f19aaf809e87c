package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
)

type talepRepository interface {
	List(ctx context.Context) ([]models.Talep, error)
	GetRaw(ctx context.Context, id string) (*models.Talep, error)
	Create(ctx context.Context, in models.TalepCreate) (*models.Talep, error)
	BulkCreate(ctx context.Context, in []models.TalepCreate) ([]models.Talep, error)
	UpdateWithAudit(ctx context.Context, id string, changes []models.FieldChange) (*models.Talep, error)
	Delete(ctx context.Context, id string) error
	Logs(ctx context.Context, id string) ([]models.TalepLog, error)
}

// TalepService orchestrates request-record workflows, including the
// diff-then-audit update path.
type TalepService struct {
	repo      talepRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTalepService creates an instance of TalepService.
func NewTalepService(repo talepRepository, validate *validator.Validate, logger *zap.Logger) *TalepService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TalepService{repo: repo, validator: validate, logger: logger}
}

// List returns all records, most recently updated first.
func (s *TalepService) List(ctx context.Context) ([]models.Talep, error) {
	talepler, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Talepler getirilirken hata oluştu")
	}
	return talepler, nil
}

// Create validates and inserts one record.
func (s *TalepService) Create(ctx context.Context, in models.TalepCreate) (*models.Talep, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Zorunlu alanlar eksik")
	}

	talep, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Talep eklenirken hata oluştu")
	}
	return talep, nil
}

// BulkCreate imports a spreadsheet batch. The whole list is validated up
// front and inserted in one transaction: a failing row commits nothing.
func (s *TalepService) BulkCreate(ctx context.Context, in []models.TalepCreate) ([]models.Talep, error) {
	if len(in) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Geçerli talep listesi gönderilmedi")
	}
	for _, item := range in {
		if err := s.validator.Struct(item); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Zorunlu alanlar eksik")
		}
	}

	created, err := s.repo.BulkCreate(ctx, in)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Toplu talep eklenirken hata oluştu")
	}
	return created, nil
}

// Update diffs the provided fields against the stored record and applies the
// changed ones together with their audit rows. A payload that changes
// nothing is rejected before any write.
func (s *TalepService) Update(ctx context.Context, id string, update models.TalepUpdate) (*models.Talep, error) {
	current, err := s.repo.GetRaw(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Talep bulunamadı")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Talep güncellenirken hata oluştu")
	}

	changes := update.Diff(current)
	if len(changes) == 0 {
		return nil, appErrors.ErrNoChange
	}

	talep, err := s.repo.UpdateWithAudit(ctx, id, changes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Talep bulunamadı")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Talep güncellenirken hata oluştu")
	}

	s.logger.Info("talep updated",
		zap.String("talep_id", id),
		zap.Int("changed_fields", len(changes)))
	return talep, nil
}

// Delete removes one record and its cascading audit rows.
func (s *TalepService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Talep bulunamadı")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Talep silinirken hata oluştu")
	}
	return nil
}

// Logs returns the audit history of one record, newest first.
func (s *TalepService) Logs(ctx context.Context, id string) ([]models.TalepLog, error) {
	logs, err := s.repo.Logs(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Talep logları getirilirken hata oluştu")
	}
	return logs, nil
}
