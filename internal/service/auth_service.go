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

type authKullaniciRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Kullanici, error)
}

// GirisIstek is the login payload.
type GirisIstek struct {
	KullaniciAdi string `json:"kullaniciAdi" validate:"required"`
	Sifre        string `json:"sifre" validate:"required"`
}

// AuthService performs the single-step credential check. There is no
// server-side session or token: the browser persists the returned
// descriptor and clears it on logout.
type AuthService struct {
	repo      authKullaniciRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authKullaniciRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger}
}

// Login verifies the credentials against the stored bcrypt hash. Unknown
// username, wrong password and inactive account all fail with the same
// message so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req GirisIstek) (*models.AuthUser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Kullanıcı adı ve şifre gereklidir")
	}

	user, err := s.repo.FindByUsername(ctx, req.KullaniciAdi)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Giriş yapılırken beklenmeyen bir hata oluştu")
	}

	if !user.Aktif {
		return nil, appErrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Sifre), []byte(req.Sifre)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	return &models.AuthUser{
		ID:           user.ID,
		KullaniciAdi: user.KullaniciAdi,
		Rol:          user.Rol,
	}, nil
}
