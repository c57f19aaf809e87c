package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izmirulasim/talep-takip-api/internal/models"
	"github.com/izmirulasim/talep-takip-api/internal/service"
)

type fakeTalepRepo struct {
	talepler map[string]*models.Talep
	logs     map[string][]models.FieldChange
	nextID   int
}

func newFakeTalepRepo() *fakeTalepRepo {
	return &fakeTalepRepo{
		talepler: make(map[string]*models.Talep),
		logs:     make(map[string][]models.FieldChange),
		nextID:   1,
	}
}

func (f *fakeTalepRepo) List(ctx context.Context) ([]models.Talep, error) {
	var out []models.Talep
	for _, t := range f.talepler {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTalepRepo) GetRaw(ctx context.Context, id string) (*models.Talep, error) {
	if t, ok := f.talepler[id]; ok {
		copy := *t
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTalepRepo) Create(ctx context.Context, in models.TalepCreate) (*models.Talep, error) {
	id := strconv.Itoa(f.nextID)
	f.nextID++
	talep := &models.Talep{
		ID:                    id,
		TalepSahibi:           in.TalepSahibi,
		TalepSahibiAciklamasi: in.TalepSahibiAciklamasi,
		TalepIlcesi:           in.TalepIlcesi,
		Bolge:                 in.Bolge,
		HatNo:                 in.HatNo,
		Isletici:              in.Isletici,
		TalepOzeti:            in.TalepOzeti,
		TalepIletimSekli:      in.TalepIletimSekli,
		YapilanIs:             in.YapilanIs,
		TalepDurumu:           in.TalepDurumu,
	}
	f.talepler[id] = talep
	copy := *talep
	return &copy, nil
}

func (f *fakeTalepRepo) BulkCreate(ctx context.Context, in []models.TalepCreate) ([]models.Talep, error) {
	created := make([]models.Talep, 0, len(in))
	for _, item := range in {
		t, err := f.Create(ctx, item)
		if err != nil {
			return nil, err
		}
		created = append(created, *t)
	}
	return created, nil
}

func (f *fakeTalepRepo) UpdateWithAudit(ctx context.Context, id string, changes []models.FieldChange) (*models.Talep, error) {
	talep, ok := f.talepler[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	f.logs[id] = append(f.logs[id], changes...)
	copy := *talep
	return &copy, nil
}

func (f *fakeTalepRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.talepler[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.talepler, id)
	return nil
}

func (f *fakeTalepRepo) Logs(ctx context.Context, id string) ([]models.TalepLog, error) {
	var logs []models.TalepLog
	for i, c := range f.logs[id] {
		logs = append(logs, models.TalepLog{ID: int64(i + 1), DegisenAlan: c.Field, EskiDeger: c.Old, YeniDeger: c.New})
	}
	return logs, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(context.Context) { f.calls++ }

func newTalepHandler(repo *fakeTalepRepo) *TalepHandler {
	return NewTalepHandler(service.NewTalepService(repo, nil, nil), nil)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

const validTalepJSON = `{
	"talepSahibi": "Dış Paydaş",
	"talepSahibiAciklamasi": "Muhtarlık",
	"talepIlcesi": "Konak",
	"bolge": 2,
	"hatNo": "169",
	"isletici": "Eshot",
	"talepOzeti": "Sefer sıklığı artırılsın",
	"talepIletimSekli": "E-posta",
	"talepDurumu": "İletildi"
}`

func TestTalepHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTalepHandler(newFakeTalepRepo())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/talepler", validTalepJSON)

	handler.Create(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var talep map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &talep))
	assert.Equal(t, "1", talep["id"])
	assert.Equal(t, "169", talep["hatNo"])
}

func TestTalepHandlerCreateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTalepHandler(newFakeTalepRepo())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/talepler", `{"talepSahibi": "Dış Paydaş"}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestTalepHandlerUpdateNoChange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeTalepRepo()
	handler := newTalepHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/talepler", validTalepJSON)
	handler.Create(c)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = jsonRequest(http.MethodPut, "/talepler/1", `{"talepDurumu": "İletildi"}`)

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Güncellenecek alan bulunamadı", body["error"])
	assert.Empty(t, repo.logs["1"])
}

func TestTalepHandlerUpdateMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTalepHandler(newFakeTalepRepo())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "404"}}
	c.Request = jsonRequest(http.MethodPut, "/talepler/404", `{"talepDurumu": "Olumlu"}`)

	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Talep bulunamadı", body["error"])
}

func TestTalepHandlerDeleteReturnsSuccessShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeTalepRepo()
	handler := newTalepHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/talepler", validTalepJSON)
	handler.Create(c)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/talepler/1", nil)

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}

func TestTalepHandlerBulkCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeTalepRepo()
	handler := newTalepHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/talepler/bulk", `{"talepler": [`+validTalepJSON+`]}`)

	handler.BulkCreate(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var created []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created, 1)
	assert.Equal(t, "169", created[0]["hatNo"])
	assert.Len(t, repo.talepler, 1)
}

func TestTalepHandlerBulkEmptyList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTalepHandler(newFakeTalepRepo())

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/talepler/bulk", `{"talepler": []}`)

	handler.BulkCreate(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Geçerli talep listesi gönderilmedi", body["error"])
}

func TestTalepHandlerWritesDropDashboardCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newFakeTalepRepo()
	invalidator := &fakeInvalidator{}
	handler := NewTalepHandler(service.NewTalepService(repo, nil, nil), invalidator)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(http.MethodPost, "/talepler", validTalepJSON)
	handler.Create(c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, invalidator.calls)

	// A rejected update leaves the cached summary in place.
	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = jsonRequest(http.MethodPut, "/talepler/1", `{"talepDurumu": "İletildi"}`)
	handler.Update(c)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, invalidator.calls)

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/talepler/1", nil)
	handler.Delete(c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, invalidator.calls)
}
