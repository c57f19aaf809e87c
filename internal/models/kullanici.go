package models

// Rol values for the binary role flag.
const (
	RolAdmin = "admin"
	RolUser  = "user"
)

// Kullanici represents an application user stored in the kullanicilar table.
// Sifre holds a bcrypt hash and never leaves the server.
type Kullanici struct {
	ID               string `db:"id" json:"id"`
	KullaniciAdi     string `db:"kullanici_adi" json:"kullaniciAdi"`
	Sifre            string `db:"sifre" json:"-"`
	Rol              string `db:"rol" json:"rol"`
	Aktif            bool   `db:"aktif" json:"aktif"`
	OlusturmaTarihi  string `db:"olusturma_tarihi" json:"olusturmaTarihi"`
	GuncellemeTarihi string `db:"guncelleme_tarihi" json:"guncellemeTarihi"`
}

// AuthUser is the minimal descriptor returned by a successful login and
// persisted by the browser.
type AuthUser struct {
	ID           string `db:"id" json:"id"`
	KullaniciAdi string `db:"kullanici_adi" json:"kullaniciAdi"`
	Rol          string `db:"rol" json:"rol"`
}

// KullaniciUpdate carries a partial update; nil means the field was omitted.
type KullaniciUpdate struct {
	KullaniciAdi *string `json:"kullaniciAdi"`
	Sifre        *string `json:"sifre"`
	Rol          *string `json:"rol"`
	Aktif        *bool   `json:"aktif"`
}

// Empty reports whether no field was provided at all.
func (u KullaniciUpdate) Empty() bool {
	return u.KullaniciAdi == nil && u.Sifre == nil && u.Rol == nil && u.Aktif == nil
}
