package models

// SayimSatiri is a grouped count row.
type SayimSatiri struct {
	Ad   string `db:"ad" json:"ad"`
	Adet int    `db:"adet" json:"adet"`
}

// DashboardOzeti aggregates the talep table for the overview screen.
type DashboardOzeti struct {
	ToplamTalep      int           `json:"toplamTalep"`
	DurumDagilimi    []SayimSatiri `json:"durumDagilimi"`
	IsleticiDagilimi []SayimSatiri `json:"isleticiDagilimi"`
	BolgeDagilimi    []SayimSatiri `json:"bolgeDagilimi"`
	IlceDagilimi     []SayimSatiri `json:"ilceDagilimi"`
}
