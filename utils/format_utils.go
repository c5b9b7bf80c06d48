package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatIDR renders a rupiah amount in full, id-ID digit grouping, no
// fractional digits: 1500000 -> "Rp 1.500.000". Display only; amounts are
// always summed as raw int64 before formatting.
func FormatIDR(n int64) string {
	if n < 0 {
		return idPrinter.Sprintf("-Rp %d", -n)
	}
	return idPrinter.Sprintf("Rp %d", n)
}

// formatSingkat renders |v| scaled by one magnitude step: one decimal below
// ten units, whole numbers from ten up, trailing ".0" stripped.
func formatSingkat(v float64, suffix string) string {
	if v >= 10 {
		return fmt.Sprintf("%d%s", int64(math.Round(v)), suffix)
	}
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s + suffix
}

// FormatIDRSingkat abbreviates a rupiah amount with the rb/jt/M/T/P/E ladder,
// preserving sign: 1500000 -> "Rp 1.5jt".
func FormatIDRSingkat(n int64) string {
	a := math.Abs(float64(n))
	sign := ""
	if n < 0 {
		sign = "-"
	}
	switch {
	case a >= 1e18:
		return sign + "Rp " + formatSingkat(a/1e18, "E")
	case a >= 1e15:
		return sign + "Rp " + formatSingkat(a/1e15, "P")
	case a >= 1e12:
		return sign + "Rp " + formatSingkat(a/1e12, "T")
	case a >= 1e9:
		return sign + "Rp " + formatSingkat(a/1e9, "M")
	case a >= 1e6:
		return sign + "Rp " + formatSingkat(a/1e6, "jt")
	case a >= 1e3:
		return fmt.Sprintf("%sRp %drb", sign, int64(math.Round(a/1e3)))
	default:
		return fmt.Sprintf("%sRp %d", sign, int64(a))
	}
}

// parseDisplayDate accepts either a bare calendar date or a full timestamp.
func parseDisplayDate(iso string) (time.Time, bool) {
	if t, ok := ParseTanggal(iso); ok {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatTanggalPanjang renders an ISO date in long Indonesian form:
// "2024-01-02" -> "2 Januari 2024". Malformed input is returned as-is.
func FormatTanggalPanjang(iso string) string {
	t, ok := parseDisplayDate(iso)
	if !ok {
		return iso
	}
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

// FormatTanggalSingkat renders an ISO date in short Indonesian form:
// "2024-01-02" -> "02 Jan 2024".
func FormatTanggalSingkat(iso string) string {
	t, ok := parseDisplayDate(iso)
	if !ok {
		return iso
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), namaBulan[t.Month()-1][:3], t.Year())
}
