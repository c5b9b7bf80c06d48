package utils

import (
	"regexp"
	"time"
)

// Age category labels.
const (
	KategoriBalita = "Balita"    // 0-5
	KategoriAnak   = "Anak-anak" // 6-12
	KategoriRemaja = "Remaja"    // 13-17
	KategoriDewasa = "Dewasa"    // 18-59
	KategoriLansia = "Lansia"    // 60+
)

var (
	tanggalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nikPattern     = regexp.MustCompile(`^\d{16}$`)
)

// ParseTanggal parses a strict YYYY-MM-DD calendar date. Dates that do not
// exist on the calendar (e.g. 2023-02-30) are rejected, not normalized.
func ParseTanggal(s string) (time.Time, bool) {
	if !tanggalPattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	if t.Year() == 0 {
		return time.Time{}, false
	}
	return t, true
}

// Umur returns whole years elapsed between birth and now, minus one when the
// birthday has not yet occurred this year. Never negative.
func Umur(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	beforeBirthday := now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day())
	if beforeBirthday {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// UmurDari computes the age for a YYYY-MM-DD birth date string. Malformed
// input counts as age 0.
func UmurDari(tglLahir string, now time.Time) int {
	birth, ok := ParseTanggal(tglLahir)
	if !ok {
		return 0
	}
	return Umur(birth, now)
}

// KategoriUmur buckets an age into one of the five categories. Boundaries are
// inclusive and evaluated in ascending order.
func KategoriUmur(umur int) string {
	switch {
	case umur <= 5:
		return KategoriBalita
	case umur <= 12:
		return KategoriAnak
	case umur <= 17:
		return KategoriRemaja
	case umur <= 59:
		return KategoriDewasa
	default:
		return KategoriLansia
	}
}

// ValidNIK reports whether s is exactly 16 ASCII digits.
func ValidNIK(s string) bool {
	return nikPattern.MatchString(s)
}

// ValidNoKK reports whether s is exactly 16 ASCII digits. Same rule as NIK,
// kept separate so call sites read as what they check.
func ValidNoKK(s string) bool {
	return nikPattern.MatchString(s)
}

// ValidTanggal reports whether s is a well-formed, existing calendar date.
func ValidTanggal(s string) bool {
	_, ok := ParseTanggal(s)
	return ok
}
