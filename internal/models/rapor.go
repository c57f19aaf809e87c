package models

// Rapor kategorileri.
const (
	KategoriYeniTalep        = "Yeni Talep"
	KategoriDurumDegisikligi = "Durum Değişikliği"
)

// RaporIstek bounds the report to inclusive calendar days.
type RaporIstek struct {
	BaslangicTarihi string `json:"baslangicTarihi" validate:"required"`
	BitisTarihi     string `json:"bitisTarihi" validate:"required"`
}

// RaporTalep is a talep row tagged with its report category.
type RaporTalep struct {
	Kategori string `db:"kategori" json:"kategori"`
	Talep
}

// DurumDegisikligi joins a status-change audit entry back to its parent
// record's current field set.
type DurumDegisikligi struct {
	Kategori string `db:"kategori" json:"kategori"`
	Talep
	EskiDurum             string `db:"eski_durum" json:"eskiDurum"`
	YeniDurum             string `db:"yeni_durum" json:"yeniDurum"`
	DurumDegisiklikTarihi string `db:"durum_degisiklik_tarihi" json:"durumDegisiklikTarihi"`
}

// RaporSonucu is the full report payload; totals equal the set lengths.
type RaporSonucu struct {
	YeniTalepler           []RaporTalep       `json:"yeniTalepler"`
	DurumDegisiklikleri    []DurumDegisikligi `json:"durumDegisiklikleri"`
	ToplamYeni             int                `json:"toplamYeni"`
	ToplamDurumDegisikligi int                `json:"toplamDurumDegisikligi"`
}
