package services

import (
	"testing"
	"time"

	"warga-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransaksi(t *testing.T) {
	valid := &models.Transaksi{
		Jenis:   models.JenisPemasukan,
		Nominal: 150000,
		Tanggal: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, validateTransaksi(valid))

	badJenis := &models.Transaksi{Jenis: "transfer", Nominal: 1000, Tanggal: valid.Tanggal}
	assert.Error(t, validateTransaksi(badJenis))

	zeroNominal := &models.Transaksi{Jenis: models.JenisPengeluaran, Nominal: 0, Tanggal: valid.Tanggal}
	assert.Error(t, validateTransaksi(zeroNominal))

	negNominal := &models.Transaksi{Jenis: models.JenisPengeluaran, Nominal: -500, Tanggal: valid.Tanggal}
	assert.Error(t, validateTransaksi(negNominal))

	noTanggal := &models.Transaksi{Jenis: models.JenisPemasukan, Nominal: 1000}
	assert.Error(t, validateTransaksi(noTanggal))
}

func TestPctChange(t *testing.T) {
	// No baseline month means no percentage, not a division by zero.
	assert.Nil(t, pctChange(100000, 0))

	up := pctChange(150000, 100000)
	assert.NotNil(t, up)
	assert.InDelta(t, 50.0, *up, 1e-9)

	down := pctChange(50000, 100000)
	assert.NotNil(t, down)
	assert.InDelta(t, -50.0, *down, 1e-9)

	flat := pctChange(100000, 100000)
	assert.NotNil(t, flat)
	assert.InDelta(t, 0.0, *flat, 1e-9)
}

func TestTransaksiSigned(t *testing.T) {
	in := models.Transaksi{Jenis: models.JenisPemasukan, Nominal: 1000}
	out := models.Transaksi{Jenis: models.JenisPengeluaran, Nominal: 1000}
	assert.Equal(t, int64(1000), in.Signed())
	assert.Equal(t, int64(-1000), out.Signed())
}
