package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/izmirulasim/talep-takip-api/internal/models"
)

// kullaniciProjection formats timestamps for display exactly as the browser
// client renders them.
const kullaniciProjection = `id::text AS id,
	kullanici_adi,
	rol,
	aktif,
	TO_CHAR(olusturma_tarihi, 'DD.MM.YYYY HH24:MI') AS olusturma_tarihi,
	TO_CHAR(guncelleme_tarihi, 'DD.MM.YYYY HH24:MI') AS guncelleme_tarihi`

// KullaniciRepository provides database access for user management.
type KullaniciRepository struct {
	db *sqlx.DB
}

// NewKullaniciRepository creates a new instance of KullaniciRepository.
func NewKullaniciRepository(db *sqlx.DB) *KullaniciRepository {
	return &KullaniciRepository{db: db}
}

// List returns all users, newest first, without password material.
func (r *KullaniciRepository) List(ctx context.Context) ([]models.Kullanici, error) {
	query := fmt.Sprintf(`SELECT %s FROM kullanicilar ORDER BY olusturma_tarihi DESC`, kullaniciProjection)
	users := []models.Kullanici{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list kullanicilar: %w", err)
	}
	return users, nil
}

// FindByUsername returns the raw row including the stored password hash.
func (r *KullaniciRepository) FindByUsername(ctx context.Context, username string) (*models.Kullanici, error) {
	const query = `SELECT id::text AS id, kullanici_adi, sifre, rol, aktif FROM kullanicilar WHERE kullanici_adi = $1 LIMIT 1`
	var user models.Kullanici
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find kullanici by username: %w", err)
	}
	return &user, nil
}

// FindByID returns the raw row by identifier.
func (r *KullaniciRepository) FindByID(ctx context.Context, id string) (*models.Kullanici, error) {
	const query = `SELECT id::text AS id, kullanici_adi, sifre, rol, aktif FROM kullanicilar WHERE id = $1 LIMIT 1`
	var user models.Kullanici
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find kullanici by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and returns the display-formatted record.
func (r *KullaniciRepository) Create(ctx context.Context, username, passwordHash, rol string) (*models.Kullanici, error) {
	query := fmt.Sprintf(`INSERT INTO kullanicilar (kullanici_adi, sifre, rol) VALUES ($1, $2, $3) RETURNING %s`, kullaniciProjection)
	var user models.Kullanici
	if err := r.db.GetContext(ctx, &user, query, username, passwordHash, rol); err != nil {
		return nil, fmt.Errorf("create kullanici: %w", err)
	}
	return &user, nil
}

// Update recomputes only the provided columns and returns the updated row.
// Returns sql.ErrNoRows when the id does not exist.
func (r *KullaniciRepository) Update(ctx context.Context, id string, update models.KullaniciUpdate, passwordHash string) (*models.Kullanici, error) {
	set := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)

	if update.KullaniciAdi != nil {
		set = append(set, fmt.Sprintf("kullanici_adi = $%d", len(args)+1))
		args = append(args, *update.KullaniciAdi)
	}
	if update.Sifre != nil {
		set = append(set, fmt.Sprintf("sifre = $%d", len(args)+1))
		args = append(args, passwordHash)
	}
	if update.Rol != nil {
		set = append(set, fmt.Sprintf("rol = $%d", len(args)+1))
		args = append(args, *update.Rol)
	}
	if update.Aktif != nil {
		set = append(set, fmt.Sprintf("aktif = $%d", len(args)+1))
		args = append(args, *update.Aktif)
	}
	set = append(set, "guncelleme_tarihi = CURRENT_TIMESTAMP")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE kullanicilar SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), kullaniciProjection)

	var user models.Kullanici
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update kullanici: %w", err)
	}
	return &user, nil
}

// Delete removes the user. Returns sql.ErrNoRows when the id does not exist.
func (r *KullaniciRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM kullanicilar WHERE id = $1 RETURNING id`
	var deleted string
	if err := r.db.GetContext(ctx, &deleted, query, id); err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("delete kullanici: %w", err)
	}
	return nil
}

// EnsureAdmin idempotently seeds the default admin account at startup.
func (r *KullaniciRepository) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	const query = `INSERT INTO kullanicilar (kullanici_adi, sifre, rol) VALUES ($1, $2, 'admin') ON CONFLICT (kullanici_adi) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, username, passwordHash); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
