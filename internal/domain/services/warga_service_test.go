package services

import (
	"testing"

	"warga-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateWarga(t *testing.T) {
	valid := &models.Warga{
		Nama:     "Budi Santoso",
		NIK:      "3201234567890001",
		NoKK:     "3201234567890002",
		TglLahir: "1990-05-17",
	}
	assert.NoError(t, validateWarga(valid))

	noName := &models.Warga{Nama: "  ", NIK: valid.NIK, NoKK: valid.NoKK, TglLahir: valid.TglLahir}
	assert.Error(t, validateWarga(noName))

	shortNIK := &models.Warga{Nama: "Budi", NIK: "12345", NoKK: valid.NoKK, TglLahir: valid.TglLahir}
	assert.Error(t, validateWarga(shortNIK))

	badNoKK := &models.Warga{Nama: "Budi", NIK: valid.NIK, NoKK: "32012345678900ab", TglLahir: valid.TglLahir}
	assert.Error(t, validateWarga(badNoKK))

	badDate := &models.Warga{Nama: "Budi", NIK: valid.NIK, NoKK: valid.NoKK, TglLahir: "1990-02-30"}
	assert.Error(t, validateWarga(badDate))

	futureDate := &models.Warga{Nama: "Budi", NIK: valid.NIK, NoKK: valid.NoKK, TglLahir: "2099-01-01"}
	assert.Error(t, validateWarga(futureDate))
}
