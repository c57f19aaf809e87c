package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	"github.com/izmirulasim/talep-takip-api/internal/service"
)

type fakeKullaniciRepo struct {
	users  map[string]*models.Kullanici
	nextID int
}

func newFakeKullaniciRepo() *fakeKullaniciRepo {
	return &fakeKullaniciRepo{users: make(map[string]*models.Kullanici), nextID: 1}
}

func (f *fakeKullaniciRepo) List(ctx context.Context) ([]models.Kullanici, error) {
	var out []models.Kullanici
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeKullaniciRepo) FindByUsername(ctx context.Context, username string) (*models.Kullanici, error) {
	for _, u := range f.users {
		if u.KullaniciAdi == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeKullaniciRepo) FindByID(ctx context.Context, id string) (*models.Kullanici, error) {
	if u, ok := f.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeKullaniciRepo) Create(ctx context.Context, username, passwordHash, rol string) (*models.Kullanici, error) {
	id := strconv.Itoa(f.nextID)
	f.nextID++
	user := &models.Kullanici{ID: id, KullaniciAdi: username, Sifre: passwordHash, Rol: rol, Aktif: true}
	f.users[id] = user
	copy := *user
	return &copy, nil
}

func (f *fakeKullaniciRepo) Update(ctx context.Context, id string, update models.KullaniciUpdate, passwordHash string) (*models.Kullanici, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *u
	return &copy, nil
}

func (f *fakeKullaniciRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func (f *fakeKullaniciRepo) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	return nil
}

func newKullaniciHandler(repo *fakeKullaniciRepo) *KullaniciHandler {
	return NewKullaniciHandler(service.NewKullaniciService(repo, nil, nil, "Admin"))
}

func TestKullaniciHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newKullaniciHandler(newFakeKullaniciRepo())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/kullanicilar", `{"kullaniciAdi": "ayse", "sifre": "gizli123"}`)

	handler.Create(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "ayse", user["kullaniciAdi"])
	assert.Equal(t, models.RolUser, user["rol"])
}

func TestKullaniciHandlerCreateDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeKullaniciRepo()
	handler := newKullaniciHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/kullanicilar", `{"kullaniciAdi": "ayse", "sifre": "gizli123"}`)
	handler.Create(c)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/kullanicilar", `{"kullaniciAdi": "ayse", "sifre": "baska"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Bu kullanıcı adı zaten kullanılıyor", body["error"])
}
