package utils

import (
	"fmt"
	"strings"
)

// Pad2 keeps only digits, truncates to two, and left-pads with zero:
// "2" -> "02", "19" -> "19".
func Pad2(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if len(clean) > 2 {
		clean = clean[:2]
	}
	for len(clean) < 2 {
		clean = "0" + clean
	}
	return clean
}

// FormatAlamatLengkap renders the full address line used on detail views and
// exports, e.g. "Kp. Cikadu, RT. 02 RW. 19 Desa Dayeuh Kecamatan Cileungsi
// Kab. Bogor".
func FormatAlamatLengkap(alamat, rt, rw string) string {
	return fmt.Sprintf("%s, RT. %s RW. %s Desa Dayeuh Kecamatan Cileungsi Kab. Bogor",
		alamat, Pad2(rt), Pad2(rw))
}
