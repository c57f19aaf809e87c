package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
)

type kullaniciRepository interface {
	List(ctx context.Context) ([]models.Kullanici, error)
	FindByUsername(ctx context.Context, username string) (*models.Kullanici, error)
	FindByID(ctx context.Context, id string) (*models.Kullanici, error)
	Create(ctx context.Context, username, passwordHash, rol string) (*models.Kullanici, error)
	Update(ctx context.Context, id string, update models.KullaniciUpdate, passwordHash string) (*models.Kullanici, error)
	Delete(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context, username, passwordHash string) error
}

// CreateKullaniciIstek is the payload for creating users.
type CreateKullaniciIstek struct {
	KullaniciAdi string `json:"kullaniciAdi" validate:"required"`
	Sifre        string `json:"sifre" validate:"required"`
	Rol          string `json:"rol" validate:"omitempty,oneof=admin user"`
}

// KullaniciService handles account management workflows.
type KullaniciService struct {
	repo          kullaniciRepository
	validator     *validator.Validate
	logger        *zap.Logger
	adminUsername string
}

// NewKullaniciService creates an instance of KullaniciService. The
// adminUsername names the seeded account protected from deletion.
func NewKullaniciService(repo kullaniciRepository, validate *validator.Validate, logger *zap.Logger, adminUsername string) *KullaniciService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &KullaniciService{repo: repo, validator: validate, logger: logger, adminUsername: adminUsername}
}

// List returns all accounts.
func (s *KullaniciService) List(ctx context.Context) ([]models.Kullanici, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcılar getirilirken hata oluştu")
	}
	return users, nil
}

// Create adds a new account. The username must be unique; the role defaults
// to "user"; the password is stored as a bcrypt hash.
func (s *KullaniciService) Create(ctx context.Context, req CreateKullaniciIstek) (*models.Kullanici, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Kullanıcı adı ve şifre gereklidir")
	}

	if _, err := s.repo.FindByUsername(ctx, req.KullaniciAdi); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Bu kullanıcı adı zaten kullanılıyor")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcı eklenirken hata oluştu")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Sifre), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcı eklenirken hata oluştu")
	}

	rol := req.Rol
	if rol == "" {
		rol = models.RolUser
	}

	user, err := s.repo.Create(ctx, req.KullaniciAdi, string(hash), rol)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcı eklenirken hata oluştu")
	}
	return user, nil
}

// Update recomputes only the provided fields. An empty subset is rejected;
// a provided password is re-hashed before storage.
func (s *KullaniciService) Update(ctx context.Context, id string, update models.KullaniciUpdate) (*models.Kullanici, error) {
	if update.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Güncellenecek alan bulunamadı")
	}

	var hash string
	if update.Sifre != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*update.Sifre), bcrypt.DefaultCost)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcı güncellenirken hata oluştu")
		}
		hash = string(h)
	}

	user, err := s.repo.Update(ctx, id, update, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Kullanıcı bulunamadı")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcı güncellenirken hata oluştu")
	}
	return user, nil
}

// Delete removes an account. The seeded admin account is refused here, not
// just hidden in the UI.
func (s *KullaniciService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Kullanıcı bulunamadı")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcı silinirken hata oluştu")
	}

	if user.KullaniciAdi == s.adminUsername {
		return appErrors.Clone(appErrors.ErrValidation, "Varsayılan yönetici hesabı silinemez")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Kullanıcı bulunamadı")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Kullanıcı silinirken hata oluştu")
	}
	return nil
}

// EnsureDefaultAdmin seeds the admin account once at startup.
func (s *KullaniciService) EnsureDefaultAdmin(ctx context.Context, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.EnsureAdmin(ctx, s.adminUsername, string(hash)); err != nil {
		return err
	}
	s.logger.Info("default admin ensured", zap.String("username", s.adminUsername))
	return nil
}
