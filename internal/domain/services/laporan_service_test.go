package services

import (
	"testing"
	"time"

	"warga-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRowsProjection(t *testing.T) {
	// Input comes newest first, the way listings are served.
	txns := []models.Transaksi{
		{
			Jenis:      models.JenisPengeluaran,
			Nominal:    50000,
			Keterangan: "Perbaikan pos ronda",
			Tanggal:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Jenis:      models.JenisPemasukan,
			Nominal:    150000,
			Keterangan: "Iuran bulanan RT",
			Tanggal:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	laporan := BuildRows(txns)
	require.Len(t, laporan.Rows, 2)

	// Rows come out oldest first, numbered from one.
	first := laporan.Rows[0]
	assert.Equal(t, 1, first.No)
	assert.Equal(t, "1 Maret 2024", first.Tanggal)
	assert.Equal(t, models.JenisPemasukan, first.Jenis)
	assert.Equal(t, "Iuran bulanan RT", first.Keterangan)
	assert.Equal(t, "Rp 150.000", first.Nominal)

	second := laporan.Rows[1]
	assert.Equal(t, 2, second.No)
	assert.Equal(t, "10 Maret 2024", second.Tanggal)
	assert.Equal(t, "-Rp 50.000", second.Nominal)

	assert.Equal(t, "Rp 100.000", laporan.SisaSaldo)
}

func TestBuildRowsEmptyKeterangan(t *testing.T) {
	txns := []models.Transaksi{
		{
			Jenis:   models.JenisPemasukan,
			Nominal: 25000,
			Tanggal: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	laporan := BuildRows(txns)
	require.Len(t, laporan.Rows, 1)
	assert.Equal(t, "-", laporan.Rows[0].Keterangan)
}

func TestBuildRowsNegativeClosingBalance(t *testing.T) {
	txns := []models.Transaksi{
		{
			Jenis:   models.JenisPengeluaran,
			Nominal: 75000,
			Tanggal: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	laporan := BuildRows(txns)
	assert.Equal(t, "-Rp 75.000", laporan.SisaSaldo)
}

func TestExportFileName(t *testing.T) {
	name := exportFileName("xlsx")
	assert.Contains(t, name, "laporan-keuangan-")
	assert.Contains(t, name, ".xlsx")
	// Two calls never collide.
	assert.NotEqual(t, name, exportFileName("xlsx"))
}
