package models

import "strconv"

// Talep durumları.
const (
	DurumIletildi          = "İletildi"
	DurumDegerlendirilecek = "Değerlendirilecek"
	DurumOlumlu            = "Olumlu"
	DurumOlumsuz           = "Olumsuz"
)

// Talep sahibi kategorileri.
const (
	PaydasIc  = "İç Paydaş"
	PaydasDis = "Dış Paydaş"
)

// İletim şekilleri. Only EBYS carries evrak tarihi/sayısı.
const (
	IletimSifahi   = "Şifahi"
	IletimToplanti = "Toplantı"
	IletimEposta   = "E-posta"
	IletimEBYS     = "Elektronik Belge Yönetim Sistemi (EBYS)"
)

// İşleticiler.
const (
	IsleticiEshot   = "Eshot"
	IsleticiIzTasit = "İzTaşıt"
)

// IcPaydasSecenekleri and DisPaydasSecenekleri condition the açıklama field
// on the requester category; "Diğer" unlocks the free-text override.
var (
	IcPaydasSecenekleri  = []string{"Otobüs İşletme Dairesi Başkanlığı", "Ulaşım Planlama Dairesi Başkanlığı"}
	DisPaydasSecenekleri = []string{"İlçe Belediyesi", "Muhtarlık", "Meclis Üyesi", "İzulaş", "Diğer"}
)

// IzmirIlceleri lists the known municipal districts.
var IzmirIlceleri = []string{
	"Aliağa", "Balçova", "Bayındır", "Bayraklı", "Bergama", "Beydağ",
	"Bornova", "Buca", "Çeşme", "Çiğli", "Dikili", "Foça", "Gaziemir",
	"Güzelbahçe", "Karabağlar", "Karaburun", "Karşıyaka", "Kemalpaşa",
	"Kınık", "Kiraz", "Konak", "Menderes", "Menemen", "Narlıdere",
	"Ödemiş", "Seferihisar", "Selçuk", "Tire", "Torbalı", "Urla",
}

// Talep is the request record. Timestamps are display-formatted in SQL
// (DD.MM.YYYY), matching what the browser client renders verbatim.
// The yapılanIs JSON key keeps the legacy wire spelling.
type Talep struct {
	ID                       string  `db:"id" json:"id"`
	TalepSahibi              string  `db:"talep_sahibi" json:"talepSahibi"`
	TalepSahibiAciklamasi    string  `db:"talep_sahibi_aciklamasi" json:"talepSahibiAciklamasi"`
	TalepSahibiDigerAciklama *string `db:"talep_sahibi_diger_aciklama" json:"talepSahibiDigerAciklama"`
	TalepIlcesi              string  `db:"talep_ilcesi" json:"talepIlcesi"`
	Bolge                    int     `db:"bolge" json:"bolge"`
	HatNo                    string  `db:"hat_no" json:"hatNo"`
	Isletici                 string  `db:"isletici" json:"isletici"`
	TalepOzeti               string  `db:"talep_ozeti" json:"talepOzeti"`
	TalepIletimSekli         string  `db:"talep_iletim_sekli" json:"talepIletimSekli"`
	EvrakTarihi              *string `db:"evrak_tarihi" json:"evrakTarihi"`
	EvrakSayisi              *string `db:"evrak_sayisi" json:"evrakSayisi"`
	YapilanIs                string  `db:"yapilan_is" json:"yapılanIs"`
	TalepDurumu              string  `db:"talep_durumu" json:"talepDurumu"`
	OlusturmaTarihi          string  `db:"olusturma_tarihi" json:"olusturmaTarihi,omitempty"`
	GuncellemeTarihi         string  `db:"guncelleme_tarihi" json:"guncellemeTarihi"`
}

// TalepCreate is the payload for creating a request record.
type TalepCreate struct {
	TalepSahibi              string  `json:"talepSahibi" validate:"required"`
	TalepSahibiAciklamasi    string  `json:"talepSahibiAciklamasi" validate:"required"`
	TalepSahibiDigerAciklama *string `json:"talepSahibiDigerAciklama"`
	TalepIlcesi              string  `json:"talepIlcesi" validate:"required"`
	Bolge                    int     `json:"bolge" validate:"required,min=1,max=5"`
	HatNo                    string  `json:"hatNo" validate:"required"`
	Isletici                 string  `json:"isletici" validate:"required"`
	TalepOzeti               string  `json:"talepOzeti" validate:"required"`
	TalepIletimSekli         string  `json:"talepIletimSekli" validate:"required"`
	EvrakTarihi              *string `json:"evrakTarihi"`
	EvrakSayisi              *string `json:"evrakSayisi"`
	YapilanIs                string  `json:"yapılanIs"`
	TalepDurumu              string  `json:"talepDurumu" validate:"required"`
}

// TalepUpdate carries a partial update. A nil field was omitted from the
// request and is never compared; a pointer to "" is an explicit clear.
type TalepUpdate struct {
	TalepSahibi              *string `json:"talepSahibi"`
	TalepSahibiAciklamasi    *string `json:"talepSahibiAciklamasi"`
	TalepSahibiDigerAciklama *string `json:"talepSahibiDigerAciklama"`
	TalepIlcesi              *string `json:"talepIlcesi"`
	Bolge                    *int    `json:"bolge"`
	HatNo                    *string `json:"hatNo"`
	Isletici                 *string `json:"isletici"`
	TalepOzeti               *string `json:"talepOzeti"`
	TalepIletimSekli         *string `json:"talepIletimSekli"`
	EvrakTarihi              *string `json:"evrakTarihi"`
	EvrakSayisi              *string `json:"evrakSayisi"`
	YapilanIs                *string `json:"yapılanIs"`
	TalepDurumu              *string `json:"talepDurumu"`
}

// FieldChange is one staged column assignment plus its audit row content.
type FieldChange struct {
	Field  string // external field name, recorded as degisen_alan
	Column string
	Old    string
	New    string
}

// talepField describes one mutable field: the external name the audit log
// records, the storage column, and accessors for both sides of the diff.
// The update builder and the audit differ consume this same table, so the
// two cannot drift apart. Both accessors return (value, present): a stored
// NULL reports present=false so it never compares equal to a provided
// value, not even the empty string.
type talepField struct {
	name     string
	column   string
	current  func(*Talep) (string, bool)
	proposed func(*TalepUpdate) (string, bool)
}

func strField(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

var talepFields = []talepField{
	{"talepSahibi", "talep_sahibi",
		func(t *Talep) (string, bool) { return t.TalepSahibi, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.TalepSahibi) }},
	{"talepSahibiAciklamasi", "talep_sahibi_aciklamasi",
		func(t *Talep) (string, bool) { return t.TalepSahibiAciklamasi, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.TalepSahibiAciklamasi) }},
	{"talepSahibiDigerAciklama", "talep_sahibi_diger_aciklama",
		func(t *Talep) (string, bool) { return strField(t.TalepSahibiDigerAciklama) },
		func(u *TalepUpdate) (string, bool) { return strField(u.TalepSahibiDigerAciklama) }},
	{"talepIlcesi", "talep_ilcesi",
		func(t *Talep) (string, bool) { return t.TalepIlcesi, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.TalepIlcesi) }},
	{"bolge", "bolge",
		func(t *Talep) (string, bool) { return strconv.Itoa(t.Bolge), true },
		func(u *TalepUpdate) (string, bool) {
			if u.Bolge == nil {
				return "", false
			}
			return strconv.Itoa(*u.Bolge), true
		}},
	{"hatNo", "hat_no",
		func(t *Talep) (string, bool) { return t.HatNo, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.HatNo) }},
	{"isletici", "isletici",
		func(t *Talep) (string, bool) { return t.Isletici, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.Isletici) }},
	{"talepOzeti", "talep_ozeti",
		func(t *Talep) (string, bool) { return t.TalepOzeti, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.TalepOzeti) }},
	{"talepIletimSekli", "talep_iletim_sekli",
		func(t *Talep) (string, bool) { return t.TalepIletimSekli, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.TalepIletimSekli) }},
	{"evrakTarihi", "evrak_tarihi",
		func(t *Talep) (string, bool) { return strField(t.EvrakTarihi) },
		func(u *TalepUpdate) (string, bool) { return strField(u.EvrakTarihi) }},
	{"evrakSayisi", "evrak_sayisi",
		func(t *Talep) (string, bool) { return strField(t.EvrakSayisi) },
		func(u *TalepUpdate) (string, bool) { return strField(u.EvrakSayisi) }},
	{"yapılanIs", "yapilan_is",
		func(t *Talep) (string, bool) { return t.YapilanIs, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.YapilanIs) }},
	{"talepDurumu", "talep_durumu",
		func(t *Talep) (string, bool) { return t.TalepDurumu, true },
		func(u *TalepUpdate) (string, bool) { return strField(u.TalepDurumu) }},
}

// AuditFieldName is the degisen_alan value recorded for status changes;
// the report join filters on it.
const AuditFieldName = "talepDurumu"

// AlanIsimleri maps external field names to their display labels, used for
// spreadsheet and PDF export headers.
var AlanIsimleri = map[string]string{
	"talepSahibi":              "Talep Sahibi",
	"talepSahibiAciklamasi":    "Talep Sahibi Açıklaması",
	"talepSahibiDigerAciklama": "Diğer Açıklama",
	"talepIlcesi":              "Talep İlçesi",
	"bolge":                    "Bölge",
	"hatNo":                    "Hat No",
	"isletici":                 "İşletici",
	"talepOzeti":               "Talep Özeti",
	"talepIletimSekli":         "Talep İletim Şekli",
	"evrakTarihi":              "Evrak Tarihi",
	"evrakSayisi":              "Evrak Sayısı",
	"yapılanIs":                "Yapılan İş",
	"talepDurumu":              "Talep Durumu",
}

// Diff compares the proposed update against the current record and returns
// one FieldChange per provided field whose value actually differs. Omitted
// fields are never compared. A stored NULL is distinct from every provided
// value, including "": clearing a never-set field is a real change, and the
// audit row shows "" for the old side.
func (u *TalepUpdate) Diff(current *Talep) []FieldChange {
	var changes []FieldChange
	for _, f := range talepFields {
		proposed, ok := f.proposed(u)
		if !ok {
			continue
		}
		old, present := f.current(current)
		if present && old == proposed {
			continue
		}
		changes = append(changes, FieldChange{
			Field:  f.name,
			Column: f.column,
			Old:    old,
			New:    proposed,
		})
	}
	return changes
}
