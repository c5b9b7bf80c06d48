package services

import (
	"errors"
	"sort"
	"strings"

	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/infrastructure/config"
	"warga-http-service/utils"

	"gorm.io/gorm"
)

// Keluarga is one family card. Anggota holds every record sharing the NoKK;
// Kepala, Istri and Anak are role views into that list.
type Keluarga struct {
	NoKK    string          `json:"no_kk"`
	Kepala  *models.Warga   `json:"kepala"`
	Istri   *models.Warga   `json:"istri"`
	Anak    []models.Warga  `json:"anak"`
	Anggota []models.Warga  `json:"anggota"`
}

// KomposisiKeluarga counts the members of one family card by role. Anggota
// counts the records outside the named roles; Total covers every member.
type KomposisiKeluarga struct {
	Kepala  int `json:"kepala"`
	Istri   int `json:"istri"`
	Anak    int `json:"anak"`
	Anggota int `json:"anggota"`
	Total   int `json:"total"`
}

// GroupOptions tunes household grouping. With FirstHeadWins false, a later
// record marked head replaces an earlier one, matching how corrections are
// entered in the field: the newest head record is the current one.
type GroupOptions struct {
	FirstHeadWins bool
}

// InterfaceKeluargaService defines the family card service interface
type InterfaceKeluargaService interface {
	GetAllKeluarga(page int, pageSize int) ([]Keluarga, int64, error)
	GetKeluargaByNoKK(noKK string) (*Keluarga, error)
	CreateKeluarga(kepala *models.Warga, istri *models.Warga, anak []models.Warga) (*Keluarga, error)
	TambahAnak(noKK string, anak *models.Warga) (*Keluarga, error)
}

// KeluargaService groups the registry into family cards.
type KeluargaService struct {
	DB      *gorm.DB
	Config  *config.Config
	Options GroupOptions
}

// NewKeluargaService creates a new family card service.
func NewKeluargaService(db *gorm.DB, cfg *config.Config) InterfaceKeluargaService {
	return &KeluargaService{
		DB:     db,
		Config: cfg,
		Options: GroupOptions{
			FirstHeadWins: false,
		},
	}
}

// GroupByNoKK partitions residents into family cards in one pass. Records with
// an empty NoKK are skipped. Slice order within each role follows input order.
func GroupByNoKK(warga []models.Warga, opts GroupOptions) map[string]*Keluarga {
	groups := make(map[string]*Keluarga)
	for i := range warga {
		w := warga[i]
		if w.NoKK == "" {
			continue
		}
		k, ok := groups[w.NoKK]
		if !ok {
			k = &Keluarga{NoKK: w.NoKK, Anak: []models.Warga{}, Anggota: []models.Warga{}}
			groups[w.NoKK] = k
		}
		// Every record joins the member list, so a duplicate head that
		// loses its role slot is still part of the card.
		k.Anggota = append(k.Anggota, w)
		switch w.Peran {
		case models.PeranKepalaKeluarga:
			if k.Kepala == nil || !opts.FirstHeadWins {
				k.Kepala = &w
			}
		case models.PeranIstri:
			if k.Istri == nil || !opts.FirstHeadWins {
				k.Istri = &w
			}
		case models.PeranAnak:
			k.Anak = append(k.Anak, w)
		}
	}
	return groups
}

// Komposisi counts a family card's members by role.
func Komposisi(k *Keluarga) KomposisiKeluarga {
	c := KomposisiKeluarga{
		Anak:  len(k.Anak),
		Total: len(k.Anggota),
	}
	if k.Kepala != nil {
		c.Kepala = 1
	}
	if k.Istri != nil {
		c.Istri = 1
	}
	c.Anggota = c.Total - c.Kepala - c.Istri - c.Anak
	return c
}

// AllMembers returns a copy of the family card's full member list.
func AllMembers(k *Keluarga) []models.Warga {
	members := make([]models.Warga, len(k.Anggota))
	copy(members, k.Anggota)
	return members
}

// 1 GetAllKeluarga lists family cards sorted by NoKK with pagination
func (s *KeluargaService) GetAllKeluarga(page int, pageSize int) ([]Keluarga, int64, error) {
	var rows []models.Warga
	if err := s.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	groups := GroupByNoKK(rows, s.Options)

	keys := make([]string, 0, len(groups))
	for noKK := range groups {
		keys = append(keys, noKK)
	}
	sort.Strings(keys)

	total := int64(len(keys))
	start := (page - 1) * pageSize
	if start >= len(keys) {
		return []Keluarga{}, total, nil
	}
	end := start + pageSize
	if end > len(keys) {
		end = len(keys)
	}

	result := make([]Keluarga, 0, end-start)
	for _, noKK := range keys[start:end] {
		result = append(result, *groups[noKK])
	}
	return result, total, nil
}

// 2 GetKeluargaByNoKK fetches one family card
func (s *KeluargaService) GetKeluargaByNoKK(noKK string) (*Keluarga, error) {
	if !utils.ValidNoKK(noKK) {
		return nil, errors.New("No KK harus 16 digit angka")
	}

	var rows []models.Warga
	if err := s.DB.Where("no_kk = ?", noKK).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("data keluarga tidak ditemukan")
	}

	return GroupByNoKK(rows, s.Options)[noKK], nil
}

// 3 CreateKeluarga registers a head, optional spouse and children atomically
func (s *KeluargaService) CreateKeluarga(kepala *models.Warga, istri *models.Warga, anak []models.Warga) (*Keluarga, error) {
	if kepala == nil {
		return nil, errors.New("kepala keluarga wajib diisi")
	}

	kepala.Peran = models.PeranKepalaKeluarga
	kepala.Status = models.StatusMenikah
	if err := validateWarga(kepala); err != nil {
		return nil, err
	}

	members := []*models.Warga{kepala}
	if istri != nil {
		istri.Peran = models.PeranIstri
		istri.Status = models.StatusMenikah
		istri.NoKK = kepala.NoKK
		if err := validateWarga(istri); err != nil {
			return nil, err
		}
		members = append(members, istri)
	}
	for i := range anak {
		anak[i].Peran = models.PeranAnak
		anak[i].Status = models.StatusLajang
		anak[i].NoKK = kepala.NoKK
		if err := validateWarga(&anak[i]); err != nil {
			return nil, err
		}
		members = append(members, &anak[i])
	}

	niks := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, dup := niks[m.NIK]; dup {
			return nil, errors.New("NIK anggota keluarga tidak boleh sama")
		}
		niks[m.NIK] = struct{}{}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range members {
			var count int64
			if err := tx.Model(&models.Warga{}).Where("nik = ?", m.NIK).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errors.New("NIK sudah terdaftar")
			}
			m.Nama = strings.TrimSpace(m.Nama)
			m.RT = utils.Pad2(m.RT)
			m.RW = utils.Pad2(m.RW)
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetKeluargaByNoKK(kepala.NoKK)
}

// 4 TambahAnak adds a child to an existing family card
func (s *KeluargaService) TambahAnak(noKK string, anak *models.Warga) (*Keluarga, error) {
	keluarga, err := s.GetKeluargaByNoKK(noKK)
	if err != nil {
		return nil, err
	}

	anak.NoKK = noKK
	anak.Peran = models.PeranAnak
	anak.Status = models.StatusLajang
	if err := validateWarga(anak); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Warga{}).Where("nik = ?", anak.NIK).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("NIK sudah terdaftar")
	}

	anak.Nama = strings.TrimSpace(anak.Nama)
	anak.RT = utils.Pad2(anak.RT)
	anak.RW = utils.Pad2(anak.RW)
	if err := s.DB.Create(anak).Error; err != nil {
		return nil, err
	}

	return s.GetKeluargaByNoKK(keluarga.NoKK)
}
