package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema bootstrap runs once at process startup. The legacy app created
// tables lazily behind module-level flags on the request path; here every
// statement is idempotent and executed before the server accepts traffic.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kullanicilar (
		id SERIAL PRIMARY KEY,
		kullanici_adi VARCHAR(50) UNIQUE NOT NULL,
		sifre VARCHAR(255) NOT NULL,
		rol VARCHAR(20) DEFAULT 'user',
		aktif BOOLEAN DEFAULT true,
		olusturma_tarihi TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		guncelleme_tarihi TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS talepler (
		id SERIAL PRIMARY KEY,
		talep_sahibi VARCHAR(50) NOT NULL,
		talep_sahibi_aciklamasi VARCHAR(255) NOT NULL,
		talep_sahibi_diger_aciklama TEXT,
		talep_ilcesi VARCHAR(100) NOT NULL,
		bolge INTEGER NOT NULL,
		hat_no VARCHAR(50) NOT NULL,
		isletici VARCHAR(50) NOT NULL,
		talep_ozeti TEXT NOT NULL,
		talep_iletim_sekli VARCHAR(100) NOT NULL,
		evrak_tarihi VARCHAR(50),
		evrak_sayisi VARCHAR(100),
		yapilan_is TEXT NOT NULL,
		talep_durumu VARCHAR(50) NOT NULL,
		olusturma_tarihi TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		guncelleme_tarihi TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS talep_guncelleme_loglari (
		id SERIAL PRIMARY KEY,
		talep_id INTEGER REFERENCES talepler(id) ON DELETE CASCADE,
		degisen_alan VARCHAR(100) NOT NULL,
		eski_deger TEXT,
		yeni_deger TEXT,
		guncelleme_tarihi TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Migrate applies the idempotent schema statements in order.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
