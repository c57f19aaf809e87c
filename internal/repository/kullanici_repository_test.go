package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izmirulasim/talep-takip-api/internal/models"
)

var kullaniciColumns = []string{"id", "kullanici_adi", "rol", "aktif", "olusturma_tarihi", "guncelleme_tarihi"}

func TestKullaniciList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKullaniciRepository(db)

	rows := sqlmock.NewRows(kullaniciColumns).
		AddRow("1", "Admin", "admin", true, "01.01.2025 09:00", "01.01.2025 09:00")
	mock.ExpectQuery(`SELECT (.+) FROM kullanicilar ORDER BY olusturma_tarihi DESC`).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Admin", users[0].KullaniciAdi)
	assert.Empty(t, users[0].Sifre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKullaniciFindByUsername(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKullaniciRepository(db)

	rows := sqlmock.NewRows([]string{"id", "kullanici_adi", "sifre", "rol", "aktif"}).
		AddRow("1", "Admin", "$2a$10$hash", "admin", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id::text AS id, kullanici_adi, sifre, rol, aktif FROM kullanicilar WHERE kullanici_adi = $1 LIMIT 1`)).
		WithArgs("Admin").
		WillReturnRows(rows)

	user, err := repo.FindByUsername(context.Background(), "Admin")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", user.Sifre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKullaniciCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKullaniciRepository(db)

	rows := sqlmock.NewRows(kullaniciColumns).
		AddRow("2", "ayse", "user", true, "02.01.2025 10:00", "02.01.2025 10:00")
	mock.ExpectQuery(`INSERT INTO kullanicilar \(kullanici_adi, sifre, rol\)`).
		WithArgs("ayse", "hash", "user").
		WillReturnRows(rows)

	user, err := repo.Create(context.Background(), "ayse", "hash", "user")
	require.NoError(t, err)
	assert.Equal(t, "2", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKullaniciUpdateBuildsOnlyProvidedColumns(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKullaniciRepository(db)

	rol := "admin"
	aktif := false

	rows := sqlmock.NewRows(kullaniciColumns).
		AddRow("2", "ayse", "admin", false, "02.01.2025 10:00", "05.01.2025 11:30")
	mock.ExpectQuery(`UPDATE kullanicilar SET rol = \$1, aktif = \$2, guncelleme_tarihi = CURRENT_TIMESTAMP WHERE id = \$3 RETURNING`).
		WithArgs("admin", false, "2").
		WillReturnRows(rows)

	user, err := repo.Update(context.Background(), "2", models.KullaniciUpdate{Rol: &rol, Aktif: &aktif}, "")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Rol)
	assert.False(t, user.Aktif)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKullaniciUpdateMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKullaniciRepository(db)

	rol := "user"
	mock.ExpectQuery(`UPDATE kullanicilar SET`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "99", models.KullaniciUpdate{Rol: &rol}, "")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewKullaniciRepository(db)

	mock.ExpectExec(`INSERT INTO kullanicilar \(kullanici_adi, sifre, rol\) VALUES \(\$1, \$2, 'admin'\) ON CONFLICT \(kullanici_adi\) DO NOTHING`).
		WithArgs("Admin", "hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureAdmin(context.Background(), "Admin", "hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
