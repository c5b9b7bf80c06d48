package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatIDR(0))
	assert.Equal(t, "Rp 2.500", FormatIDR(2500))
	assert.Equal(t, "Rp 1.500.000", FormatIDR(1500000))
	assert.Equal(t, "-Rp 50.000", FormatIDR(-50000))
}

func TestFormatIDRSingkat(t *testing.T) {
	cases := map[int64]string{
		0:                 "Rp 0",
		950:               "Rp 950",
		1000:              "Rp 1rb",
		25000:             "Rp 25rb",
		999999:            "Rp 1000rb",
		1500000:           "Rp 1.5jt",
		2000000:           "Rp 2jt",
		10000000:          "Rp 10jt",
		2000000000:        "Rp 2M",
		1500000000000:     "Rp 1.5T",
		3000000000000000:  "Rp 3P",
		-1500000:          "-Rp 1.5jt",
	}
	for n, want := range cases {
		assert.Equal(t, want, FormatIDRSingkat(n), "nominal %d", n)
	}
}

func TestFormatTanggalPanjang(t *testing.T) {
	assert.Equal(t, "2 Januari 2024", FormatTanggalPanjang("2024-01-02"))
	assert.Equal(t, "17 Agustus 1945", FormatTanggalPanjang("1945-08-17"))

	// Malformed input passes through unchanged.
	assert.Equal(t, "bukan-tanggal", FormatTanggalPanjang("bukan-tanggal"))
}

func TestFormatTanggalSingkat(t *testing.T) {
	assert.Equal(t, "02 Jan 2024", FormatTanggalSingkat("2024-01-02"))
	assert.Equal(t, "17 Agu 1945", FormatTanggalSingkat("1945-08-17"))
}
