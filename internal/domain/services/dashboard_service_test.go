package services

import (
	"testing"
	"time"

	"warga-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func txn(jenis string, nominal int64, tanggal time.Time) models.Transaksi {
	return models.Transaksi{Jenis: jenis, Nominal: nominal, Tanggal: tanggal}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, jakarta)
}

func TestBuildSerieSaldoDenseWindow(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, jakarta)

	serie, err := BuildSerieSaldo(nil, Window7, now, jakarta)
	require.NoError(t, err)

	require.Len(t, serie.Candles, 7)
	require.Len(t, serie.EMA, 7)
	assert.Equal(t, "2024-03-14", serie.Candles[0].Tanggal)
	assert.Equal(t, "2024-03-20", serie.Candles[6].Tanggal)

	// No transactions: every candle is flat at zero.
	for _, c := range serie.Candles {
		assert.Zero(t, c.Open)
		assert.Zero(t, c.Close)
		assert.Zero(t, c.High)
		assert.Zero(t, c.Low)
	}
	assert.Zero(t, serie.SaldoAwal)
	assert.Zero(t, serie.SaldoAkhir)
	assert.Empty(t, serie.Markers)
}

func TestBuildSerieSaldoOpeningBalance(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, jakarta)
	txns := []models.Transaksi{
		// Strictly before the 7-day window, feeds the opening balance.
		txn(models.JenisPemasukan, 500000, day(2024, 3, 1)),
		txn(models.JenisPengeluaran, 100000, day(2024, 3, 10)),
		// Inside the window.
		txn(models.JenisPemasukan, 100000, day(2024, 3, 14)),
		txn(models.JenisPengeluaran, 40000, day(2024, 3, 17)),
	}

	serie, err := BuildSerieSaldo(txns, Window7, now, jakarta)
	require.NoError(t, err)

	assert.Equal(t, int64(400000), serie.SaldoAwal)
	assert.Equal(t, int64(400000), serie.Candles[0].Open)
	assert.Equal(t, int64(500000), serie.Candles[0].Close)

	// Days without transactions carry the balance forward.
	assert.Equal(t, int64(500000), serie.Candles[1].Open)
	assert.Equal(t, int64(500000), serie.Candles[1].Close)

	// The closing balance equals opening plus everything in the window.
	assert.Equal(t, int64(460000), serie.SaldoAkhir)
	assert.Equal(t, serie.Candles[6].Close, serie.SaldoAkhir)
}

func TestBuildSerieSaldoCandleShape(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, jakarta)
	txns := []models.Transaksi{
		txn(models.JenisPemasukan, 100000, day(2024, 3, 14)),
		txn(models.JenisPengeluaran, 60000, day(2024, 3, 15)),
	}

	serie, err := BuildSerieSaldo(txns, Window7, now, jakarta)
	require.NoError(t, err)

	up := serie.Candles[0]
	assert.Equal(t, up.Close, up.High)
	assert.Equal(t, up.Open, up.Low)

	down := serie.Candles[1]
	assert.Equal(t, int64(100000), down.Open)
	assert.Equal(t, int64(40000), down.Close)
	assert.Equal(t, down.Open, down.High)
	assert.Equal(t, down.Close, down.Low)
}

func TestBuildSerieSaldoEMA(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, jakarta)
	txns := []models.Transaksi{
		txn(models.JenisPemasukan, 100000, day(2024, 3, 14)),
		txn(models.JenisPengeluaran, 60000, day(2024, 3, 15)),
	}

	serie, err := BuildSerieSaldo(txns, Window7, now, jakarta)
	require.NoError(t, err)

	// period = max(3, round(7/2)) = 4, k = 2/5.
	assert.Equal(t, 4, serie.PeriodeEMA)

	// The EMA is seeded with the first close.
	assert.InDelta(t, float64(serie.Candles[0].Close), serie.EMA[0].Nilai, 1e-9)

	k := 2.0 / 5.0
	want := serie.EMA[0].Nilai
	for i := 1; i < len(serie.Candles); i++ {
		want = float64(serie.Candles[i].Close)*k + want*(1-k)
		assert.InDelta(t, want, serie.EMA[i].Nilai, 1e-9, "day %s", serie.EMA[i].Tanggal)
	}
}

func TestBuildSerieSaldoBullishMarker(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, jakarta)
	txns := []models.Transaksi{
		// Flat at zero, then a jump: the close crosses above the EMA.
		txn(models.JenisPemasukan, 1000000, day(2024, 3, 18)),
	}

	serie, err := BuildSerieSaldo(txns, Window7, now, jakarta)
	require.NoError(t, err)
	assert.Contains(t, serie.Markers, "2024-03-18")
}

func TestBuildSerieSaldoBulanWindow(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, jakarta)

	serie, err := BuildSerieSaldo(nil, WindowBulan, now, jakarta)
	require.NoError(t, err)

	require.Len(t, serie.Candles, 20)
	assert.Equal(t, "2024-03-01", serie.Candles[0].Tanggal)
	assert.Equal(t, "2024-03-20", serie.Candles[19].Tanggal)
}

func TestBuildSerieSaldoUnknownWindow(t *testing.T) {
	now := time.Date(2024, 3, 20, 15, 0, 0, 0, jakarta)
	_, err := BuildSerieSaldo(nil, "90", now, jakarta)
	assert.Error(t, err)
}

func TestEmaPeriod(t *testing.T) {
	assert.Equal(t, 4, emaPeriod(7))
	assert.Equal(t, 7, emaPeriod(14))
	assert.Equal(t, 15, emaPeriod(30))
	// Short windows never drop below the floor.
	assert.Equal(t, 3, emaPeriod(1))
	assert.Equal(t, 3, emaPeriod(5))
}

func TestDayKeyUsesLocation(t *testing.T) {
	// 23:30 UTC is already the next civil day in Jakarta.
	utc := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15", DayKey(utc, jakarta))
	assert.Equal(t, "2024-03-14", DayKey(utc, time.UTC))
}
