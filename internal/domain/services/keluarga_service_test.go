package services

import (
	"sort"
	"testing"

	"warga-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warga(nama, nik, noKK, peran string) models.Warga {
	return models.Warga{
		Nama:     nama,
		NIK:      nik,
		NoKK:     noKK,
		TglLahir: "1990-01-01",
		Peran:    peran,
	}
}

func TestGroupByNoKKBasic(t *testing.T) {
	rows := []models.Warga{
		warga("Budi", "3201000000000001", "3201000000000100", models.PeranKepalaKeluarga),
		warga("Siti", "3201000000000002", "3201000000000100", models.PeranIstri),
		warga("Andi", "3201000000000003", "3201000000000100", models.PeranAnak),
		warga("Nenek Ijah", "3201000000000004", "3201000000000100", "Orang Tua"),
		warga("Joko", "3201000000000005", "3201000000000200", models.PeranKepalaKeluarga),
	}

	groups := GroupByNoKK(rows, GroupOptions{})
	require.Len(t, groups, 2)

	k := groups["3201000000000100"]
	require.NotNil(t, k)
	require.NotNil(t, k.Kepala)
	assert.Equal(t, "Budi", k.Kepala.Nama)
	require.NotNil(t, k.Istri)
	assert.Equal(t, "Siti", k.Istri.Nama)
	require.Len(t, k.Anak, 1)
	assert.Equal(t, "Andi", k.Anak[0].Nama)
	// The member list keeps everyone, role slots included.
	require.Len(t, k.Anggota, 4)

	komposisi := Komposisi(k)
	assert.Equal(t, 1, komposisi.Kepala)
	assert.Equal(t, 1, komposisi.Istri)
	assert.Equal(t, 1, komposisi.Anak)
	assert.Equal(t, 1, komposisi.Anggota)
	assert.Equal(t, 4, komposisi.Total)

	lain := groups["3201000000000200"]
	require.NotNil(t, lain)
	assert.Nil(t, lain.Istri)
	assert.Empty(t, lain.Anak)
	assert.Equal(t, 1, Komposisi(lain).Total)
}

func TestGroupByNoKKLastHeadWins(t *testing.T) {
	rows := []models.Warga{
		warga("Kepala Lama", "3201000000000001", "3201000000000100", models.PeranKepalaKeluarga),
		warga("Kepala Baru", "3201000000000002", "3201000000000100", models.PeranKepalaKeluarga),
	}

	k := GroupByNoKK(rows, GroupOptions{})["3201000000000100"]
	require.NotNil(t, k.Kepala)
	assert.Equal(t, "Kepala Baru", k.Kepala.Nama)

	k = GroupByNoKK(rows, GroupOptions{FirstHeadWins: true})["3201000000000100"]
	require.NotNil(t, k.Kepala)
	assert.Equal(t, "Kepala Lama", k.Kepala.Nama)
}

func TestGroupByNoKKDuplicateHeadKeepsMembership(t *testing.T) {
	rows := []models.Warga{
		warga("Kepala Lama", "3201000000000001", "3201000000000100", models.PeranKepalaKeluarga),
		warga("Kepala Baru", "3201000000000002", "3201000000000100", models.PeranKepalaKeluarga),
		warga("Andi", "3201000000000003", "3201000000000100", models.PeranAnak),
	}

	k := GroupByNoKK(rows, GroupOptions{})["3201000000000100"]
	require.NotNil(t, k)
	assert.Equal(t, "Kepala Baru", k.Kepala.Nama)

	// The head that lost the slot must still be a member of the card.
	niks := memberNIKs(k)
	require.Len(t, niks, 3)
	assert.Contains(t, niks, "3201000000000001")

	komposisi := Komposisi(k)
	assert.Equal(t, 1, komposisi.Kepala)
	assert.Equal(t, 1, komposisi.Anak)
	assert.Equal(t, 1, komposisi.Anggota)
	assert.Equal(t, 3, komposisi.Total)
}

func TestGroupByNoKKSkipsEmptyNoKK(t *testing.T) {
	rows := []models.Warga{
		warga("Tanpa KK", "3201000000000001", "", models.PeranKepalaKeluarga),
	}
	assert.Empty(t, GroupByNoKK(rows, GroupOptions{}))
}

func memberNIKs(k *Keluarga) []string {
	members := AllMembers(k)
	niks := make([]string, 0, len(members))
	for _, m := range members {
		niks = append(niks, m.NIK)
	}
	sort.Strings(niks)
	return niks
}

func TestGroupByNoKKOrderIndependentMembership(t *testing.T) {
	rows := []models.Warga{
		warga("Budi", "3201000000000001", "3201000000000100", models.PeranKepalaKeluarga),
		warga("Siti", "3201000000000002", "3201000000000100", models.PeranIstri),
		warga("Andi", "3201000000000003", "3201000000000100", models.PeranAnak),
		warga("Rina", "3201000000000004", "3201000000000100", models.PeranAnak),
	}

	reversed := make([]models.Warga, len(rows))
	for i := range rows {
		reversed[len(rows)-1-i] = rows[i]
	}

	forward := GroupByNoKK(rows, GroupOptions{})["3201000000000100"]
	backward := GroupByNoKK(reversed, GroupOptions{})["3201000000000100"]

	// The member set is input-order independent, only head selection depends
	// on ordering when duplicates exist.
	assert.Equal(t, memberNIKs(forward), memberNIKs(backward))
	assert.Equal(t, Komposisi(forward), Komposisi(backward))
}

func TestGroupByNoKKIdempotent(t *testing.T) {
	rows := []models.Warga{
		warga("Budi", "3201000000000001", "3201000000000100", models.PeranKepalaKeluarga),
		warga("Andi", "3201000000000003", "3201000000000100", models.PeranAnak),
	}

	first := GroupByNoKK(rows, GroupOptions{})
	second := GroupByNoKK(rows, GroupOptions{})
	assert.Equal(t, memberNIKs(first["3201000000000100"]), memberNIKs(second["3201000000000100"]))
}
