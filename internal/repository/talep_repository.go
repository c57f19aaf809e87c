package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/izmirulasim/talep-takip-api/internal/models"
)

// talepProjection is the display shape: id as text and the update timestamp
// formatted the way the browser client renders it.
const talepProjection = `id::text AS id,
	talep_sahibi,
	talep_sahibi_aciklamasi,
	talep_sahibi_diger_aciklama,
	talep_ilcesi,
	bolge,
	hat_no,
	isletici,
	talep_ozeti,
	talep_iletim_sekli,
	evrak_tarihi,
	evrak_sayisi,
	yapilan_is,
	talep_durumu,
	TO_CHAR(guncelleme_tarihi, 'DD.MM.YYYY') AS guncelleme_tarihi`

// talepRawColumns is the unformatted projection used to diff a record
// against a proposed update.
const talepRawColumns = `id::text AS id,
	talep_sahibi,
	talep_sahibi_aciklamasi,
	talep_sahibi_diger_aciklama,
	talep_ilcesi,
	bolge,
	hat_no,
	isletici,
	talep_ozeti,
	talep_iletim_sekli,
	evrak_tarihi,
	evrak_sayisi,
	yapilan_is,
	talep_durumu`

const talepInsertColumns = `talep_sahibi, talep_sahibi_aciklamasi, talep_sahibi_diger_aciklama,
	talep_ilcesi, bolge, hat_no, isletici, talep_ozeti, talep_iletim_sekli,
	evrak_tarihi, evrak_sayisi, yapilan_is, talep_durumu`

const insertLogQuery = `INSERT INTO talep_guncelleme_loglari (talep_id, degisen_alan, eski_deger, yeni_deger) VALUES ($1, $2, $3, $4)`

// TalepRepository provides database access for request records and their
// audit trail.
type TalepRepository struct {
	db *sqlx.DB
}

// NewTalepRepository creates a new instance of TalepRepository.
func NewTalepRepository(db *sqlx.DB) *TalepRepository {
	return &TalepRepository{db: db}
}

// List returns all records, most recently updated first.
func (r *TalepRepository) List(ctx context.Context) ([]models.Talep, error) {
	query := fmt.Sprintf(`SELECT %s FROM talepler ORDER BY guncelleme_tarihi DESC`, talepProjection)
	talepler := []models.Talep{}
	if err := r.db.SelectContext(ctx, &talepler, query); err != nil {
		return nil, fmt.Errorf("list talepler: %w", err)
	}
	return talepler, nil
}

// GetRaw loads the stored field values of one record for diffing.
func (r *TalepRepository) GetRaw(ctx context.Context, id string) (*models.Talep, error) {
	query := fmt.Sprintf(`SELECT %s FROM talepler WHERE id = $1`, talepRawColumns)
	var talep models.Talep
	if err := r.db.GetContext(ctx, &talep, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get talep: %w", err)
	}
	return &talep, nil
}

// Create inserts one record and returns the display-formatted row. Optional
// fields are stored as NULL when absent or empty, matching legacy rows.
func (r *TalepRepository) Create(ctx context.Context, in models.TalepCreate) (*models.Talep, error) {
	query := fmt.Sprintf(`INSERT INTO talepler (%s)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING %s`, talepInsertColumns, talepProjection)

	var talep models.Talep
	err := r.db.GetContext(ctx, &talep, query,
		in.TalepSahibi,
		in.TalepSahibiAciklamasi,
		nullIfEmpty(in.TalepSahibiDigerAciklama),
		in.TalepIlcesi,
		in.Bolge,
		in.HatNo,
		in.Isletici,
		in.TalepOzeti,
		in.TalepIletimSekli,
		nullIfEmpty(in.EvrakTarihi),
		nullIfEmpty(in.EvrakSayisi),
		in.YapilanIs,
		in.TalepDurumu,
	)
	if err != nil {
		return nil, fmt.Errorf("create talep: %w", err)
	}
	return &talep, nil
}

// BulkCreate inserts the whole list in one transaction: either every row
// commits or none does.
func (r *TalepRepository) BulkCreate(ctx context.Context, in []models.TalepCreate) ([]models.Talep, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin bulk create: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := fmt.Sprintf(`INSERT INTO talepler (%s)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING %s`, talepInsertColumns, talepProjection)

	created := make([]models.Talep, 0, len(in))
	for _, item := range in {
		var talep models.Talep
		err := tx.GetContext(ctx, &talep, query,
			item.TalepSahibi,
			item.TalepSahibiAciklamasi,
			nullIfEmpty(item.TalepSahibiDigerAciklama),
			item.TalepIlcesi,
			item.Bolge,
			item.HatNo,
			item.Isletici,
			item.TalepOzeti,
			item.TalepIletimSekli,
			nullIfEmpty(item.EvrakTarihi),
			nullIfEmpty(item.EvrakSayisi),
			item.YapilanIs,
			item.TalepDurumu,
		)
		if err != nil {
			return nil, fmt.Errorf("bulk create talep: %w", err)
		}
		created = append(created, talep)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit bulk create: %w", err)
	}
	return created, nil
}

// UpdateWithAudit applies the staged column assignments and appends one
// audit row per change in a single transaction, so the record update and
// its audit trail commit or roll back together.
func (r *TalepRepository) UpdateWithAudit(ctx context.Context, id string, changes []models.FieldChange) (*models.Talep, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	set := make([]string, 0, len(changes)+1)
	args := make([]interface{}, 0, len(changes)+1)
	for _, change := range changes {
		set = append(set, fmt.Sprintf("%s = $%d", change.Column, len(args)+1))
		args = append(args, change.New)
	}
	set = append(set, "guncelleme_tarihi = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE talepler SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), talepProjection)

	var talep models.Talep
	if err := tx.GetContext(ctx, &talep, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update talep: %w", err)
	}

	for _, change := range changes {
		if _, err := tx.ExecContext(ctx, insertLogQuery, id, change.Field, change.Old, change.New); err != nil {
			return nil, fmt.Errorf("insert talep log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return &talep, nil
}

// Delete removes one record; audit rows cascade at the store layer.
// Returns sql.ErrNoRows when the id does not exist.
func (r *TalepRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM talepler WHERE id = $1 RETURNING id`
	var deleted string
	if err := r.db.GetContext(ctx, &deleted, query, id); err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("delete talep: %w", err)
	}
	return nil
}

// Logs returns the audit entries of one record, newest first.
func (r *TalepRepository) Logs(ctx context.Context, id string) ([]models.TalepLog, error) {
	const query = `SELECT id,
	degisen_alan,
	COALESCE(eski_deger, '') AS eski_deger,
	COALESCE(yeni_deger, '') AS yeni_deger,
	TO_CHAR(guncelleme_tarihi, 'DD.MM.YYYY HH24:MI') AS guncelleme_tarihi
FROM talep_guncelleme_loglari
WHERE talep_id = $1
ORDER BY guncelleme_tarihi DESC`
	logs := []models.TalepLog{}
	if err := r.db.SelectContext(ctx, &logs, query, id); err != nil {
		return nil, fmt.Errorf("list talep logs: %w", err)
	}
	return logs, nil
}

// NewBetween returns records created within the inclusive date range.
func (r *TalepRepository) NewBetween(ctx context.Context, start, end string) ([]models.RaporTalep, error) {
	query := fmt.Sprintf(`SELECT 'Yeni Talep' AS kategori,
	%s,
	TO_CHAR(olusturma_tarihi, 'DD.MM.YYYY') AS olusturma_tarihi
FROM talepler
WHERE DATE(olusturma_tarihi) BETWEEN $1 AND $2
ORDER BY olusturma_tarihi DESC`, talepProjection)
	talepler := []models.RaporTalep{}
	if err := r.db.SelectContext(ctx, &talepler, query, start, end); err != nil {
		return nil, fmt.Errorf("report new talepler: %w", err)
	}
	return talepler, nil
}

// DurumDegisiklikleriBetween returns status-change audit entries within the
// inclusive date range, joined to the parent record's current fields.
func (r *TalepRepository) DurumDegisiklikleriBetween(ctx context.Context, start, end string) ([]models.DurumDegisikligi, error) {
	const query = `SELECT 'Durum Değişikliği' AS kategori,
	t.id::text AS id,
	t.talep_sahibi,
	t.talep_sahibi_aciklamasi,
	t.talep_sahibi_diger_aciklama,
	t.talep_ilcesi,
	t.bolge,
	t.hat_no,
	t.isletici,
	t.talep_ozeti,
	t.talep_iletim_sekli,
	t.evrak_tarihi,
	t.evrak_sayisi,
	t.yapilan_is,
	t.talep_durumu,
	TO_CHAR(t.olusturma_tarihi, 'DD.MM.YYYY') AS olusturma_tarihi,
	TO_CHAR(t.guncelleme_tarihi, 'DD.MM.YYYY') AS guncelleme_tarihi,
	COALESCE(l.eski_deger, '') AS eski_durum,
	COALESCE(l.yeni_deger, '') AS yeni_durum,
	TO_CHAR(l.guncelleme_tarihi, 'DD.MM.YYYY HH24:MI') AS durum_degisiklik_tarihi
FROM talepler t
INNER JOIN talep_guncelleme_loglari l ON t.id = l.talep_id
WHERE l.degisen_alan = $1
  AND DATE(l.guncelleme_tarihi) BETWEEN $2 AND $3
ORDER BY l.guncelleme_tarihi DESC`
	changes := []models.DurumDegisikligi{}
	if err := r.db.SelectContext(ctx, &changes, query, models.AuditFieldName, start, end); err != nil {
		return nil, fmt.Errorf("report durum degisiklikleri: %w", err)
	}
	return changes, nil
}

// Ozet computes the dashboard aggregation in four grouped counts.
func (r *TalepRepository) Ozet(ctx context.Context) (*models.DashboardOzeti, error) {
	ozet := &models.DashboardOzeti{}

	if err := r.db.GetContext(ctx, &ozet.ToplamTalep, `SELECT COUNT(*) FROM talepler`); err != nil {
		return nil, fmt.Errorf("count talepler: %w", err)
	}

	groups := []struct {
		column string
		dest   *[]models.SayimSatiri
	}{
		{"talep_durumu", &ozet.DurumDagilimi},
		{"isletici", &ozet.IsleticiDagilimi},
		{"bolge::text", &ozet.BolgeDagilimi},
		{"talep_ilcesi", &ozet.IlceDagilimi},
	}
	for _, g := range groups {
		query := fmt.Sprintf(`SELECT %s AS ad, COUNT(*) AS adet FROM talepler GROUP BY %s ORDER BY adet DESC, ad ASC`, g.column, g.column)
		rows := []models.SayimSatiri{}
		if err := r.db.SelectContext(ctx, &rows, query); err != nil {
			return nil, fmt.Errorf("group talepler by %s: %w", g.column, err)
		}
		*g.dest = rows
	}

	return ozet, nil
}

func nullIfEmpty(p *string) interface{} {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}
