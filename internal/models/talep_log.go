package models

// TalepLog is one append-only audit entry, created as a side effect of a
// record update and removed only by cascade with its parent.
type TalepLog struct {
	ID               int64  `db:"id" json:"id"`
	DegisenAlan      string `db:"degisen_alan" json:"degisenAlan"`
	EskiDeger        string `db:"eski_deger" json:"eskiDeger"`
	YeniDeger        string `db:"yeni_deger" json:"yeniDeger"`
	GuncellemeTarihi string `db:"guncelleme_tarihi" json:"guncellemeTarihi"`
}
