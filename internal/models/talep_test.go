package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sampleTalep() *Talep {
	return &Talep{
		ID:                    "1",
		TalepSahibi:           PaydasDis,
		TalepSahibiAciklamasi: "Muhtarlık",
		TalepIlcesi:           "Konak",
		Bolge:                 2,
		HatNo:                 "169",
		Isletici:              IsleticiEshot,
		TalepOzeti:            "Sefer sıklığı artırılsın",
		TalepIletimSekli:      IletimEposta,
		YapilanIs:             "",
		TalepDurumu:           DurumIletildi,
	}
}

func TestDiffNoFieldsProvided(t *testing.T) {
	update := TalepUpdate{}
	assert.Empty(t, update.Diff(sampleTalep()))
}

func TestDiffIdenticalValues(t *testing.T) {
	current := sampleTalep()
	update := TalepUpdate{
		TalepIlcesi: strPtr("Konak"),
		Bolge:       intPtr(2),
		TalepDurumu: strPtr(DurumIletildi),
	}
	assert.Empty(t, update.Diff(current))
}

func TestDiffChangedFields(t *testing.T) {
	current := sampleTalep()
	update := TalepUpdate{
		TalepDurumu: strPtr(DurumOlumlu),
		Bolge:       intPtr(4),
		HatNo:       strPtr("169"), // unchanged
	}

	changes := update.Diff(current)
	require.Len(t, changes, 2)

	byField := map[string]FieldChange{}
	for _, c := range changes {
		byField[c.Field] = c
	}

	durum := byField["talepDurumu"]
	assert.Equal(t, "talep_durumu", durum.Column)
	assert.Equal(t, DurumIletildi, durum.Old)
	assert.Equal(t, DurumOlumlu, durum.New)

	bolge := byField["bolge"]
	assert.Equal(t, "2", bolge.Old)
	assert.Equal(t, "4", bolge.New)
}

func TestDiffNullRendersEmpty(t *testing.T) {
	current := sampleTalep()
	current.EvrakTarihi = nil

	update := TalepUpdate{EvrakTarihi: strPtr("01.02.2025")}
	changes := update.Diff(current)
	require.Len(t, changes, 1)
	assert.Equal(t, "", changes[0].Old)
	assert.Equal(t, "01.02.2025", changes[0].New)
}

func TestDiffEmptyAgainstNullIsAChange(t *testing.T) {
	current := sampleTalep()
	current.EvrakTarihi = nil

	update := TalepUpdate{EvrakTarihi: strPtr("")}
	changes := update.Diff(current)
	require.Len(t, changes, 1, "a stored NULL never equals a provided value")
	assert.Equal(t, "evrakTarihi", changes[0].Field)
	assert.Equal(t, "", changes[0].Old)
	assert.Equal(t, "", changes[0].New)
}

func TestDiffExplicitClear(t *testing.T) {
	current := sampleTalep()
	current.EvrakSayisi = strPtr("E-2025/17")

	update := TalepUpdate{EvrakSayisi: strPtr("")}
	changes := update.Diff(current)
	require.Len(t, changes, 1)
	assert.Equal(t, "E-2025/17", changes[0].Old)
	assert.Equal(t, "", changes[0].New)
}
