package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad2(t *testing.T) {
	assert.Equal(t, "02", Pad2("2"))
	assert.Equal(t, "19", Pad2("19"))
	assert.Equal(t, "00", Pad2(""))
	assert.Equal(t, "03", Pad2("RT 3"))
	assert.Equal(t, "12", Pad2("123"))
}

func TestFormatAlamatLengkap(t *testing.T) {
	got := FormatAlamatLengkap("Kp. Cikadu", "2", "19")
	assert.Equal(t, "Kp. Cikadu, RT. 02 RW. 19 Desa Dayeuh Kecamatan Cileungsi Kab. Bogor", got)
}
