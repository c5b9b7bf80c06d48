package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTanggal(t *testing.T) {
	parsed, ok := ParseTanggal("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 29, parsed.Day())

	// Non-existent calendar dates are rejected, never normalized forward.
	for _, s := range []string{"2023-02-30", "2023-02-29", "2024-04-31", "2024-13-01", "2024-00-10", "2024-01-00"} {
		_, ok := ParseTanggal(s)
		assert.False(t, ok, "expected %q to be rejected", s)
	}

	for _, s := range []string{"", "2024-1-02", "02-01-2024", "2024/01/02", "2024-01-02T00:00:00Z", "kemarin"} {
		_, ok := ParseTanggal(s)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

func TestUmurBirthdayBoundary(t *testing.T) {
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	dayBefore := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)
	onBirthday := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	dayAfter := time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 33, Umur(birth, dayBefore))
	assert.Equal(t, 34, Umur(birth, onBirthday))
	assert.Equal(t, 34, Umur(birth, dayAfter))
}

func TestUmurNeverNegative(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Umur(future, now))
}

func TestUmurDariMalformed(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, UmurDari("bukan-tanggal", now))
	assert.Equal(t, 34, UmurDari("1990-01-01", now))
}

func TestKategoriUmurBoundaries(t *testing.T) {
	cases := map[int]string{
		0:   KategoriBalita,
		5:   KategoriBalita,
		6:   KategoriAnak,
		12:  KategoriAnak,
		13:  KategoriRemaja,
		17:  KategoriRemaja,
		18:  KategoriDewasa,
		59:  KategoriDewasa,
		60:  KategoriLansia,
		95:  KategoriLansia,
		120: KategoriLansia,
	}
	for umur, want := range cases {
		assert.Equal(t, want, KategoriUmur(umur), "umur %d", umur)
	}
}

func TestValidNIK(t *testing.T) {
	assert.True(t, ValidNIK("3201234567890001"))
	assert.False(t, ValidNIK("320123456789000"))   // 15 digits
	assert.False(t, ValidNIK("32012345678900011")) // 17 digits
	assert.False(t, ValidNIK("3201a34567890001"))
	assert.False(t, ValidNIK(""))
	assert.False(t, ValidNIK("3201 234567890001"))
}

func TestValidNoKK(t *testing.T) {
	assert.True(t, ValidNoKK("3201234567890002"))
	assert.False(t, ValidNoKK("12345"))
}

func TestValidTanggal(t *testing.T) {
	assert.True(t, ValidTanggal("2000-12-31"))
	assert.False(t, ValidTanggal("2000-02-30"))
}
