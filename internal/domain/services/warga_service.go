package services

import (
	"errors"
	"strings"
	"time"

	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/infrastructure/config"
	"warga-http-service/utils"

	"gorm.io/gorm"
)

// WargaFilter narrows a registry listing. Kategori filters on the derived age
// bucket and is therefore applied in memory, after the database filters.
type WargaFilter struct {
	Query    string // substring of nama, NIK or NoKK
	Status   string // marital status, empty means all
	Kategori string // age category, empty means all
}

// WargaSummary tallies the filtered set for the proportional bars on the
// registry page.
type WargaSummary struct {
	Total    int            `json:"total"`
	Status   map[string]int `json:"status"`
	Kategori map[string]int `json:"kategori"`
}

// InterfaceWargaService defines the warga registry service interface
type InterfaceWargaService interface {
	GetAllWarga(filter WargaFilter, page int, pageSize int) ([]models.Warga, int64, error)
	GetWargaByID(id uint) (*models.Warga, error)
	CreateWarga(warga *models.Warga) error
	UpdateWarga(id uint, updates map[string]interface{}) (*models.Warga, error)
	DeleteWarga(id uint) error
	Summary(filter WargaFilter) (*WargaSummary, error)
}

// WargaService manages the resident registry.
type WargaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewWargaService creates a new warga service.
func NewWargaService(db *gorm.DB, cfg *config.Config) InterfaceWargaService {
	return &WargaService{
		DB:     db,
		Config: cfg,
	}
}

// fetchFiltered loads the rows matching the database-side filters, ordered by
// name, and applies the derived age-category filter in memory.
func (s *WargaService) fetchFiltered(filter WargaFilter) ([]models.Warga, error) {
	tx := s.DB.Model(&models.Warga{}).Order("nama ASC")

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("nama LIKE ? OR nik LIKE ? OR no_kk LIKE ?", like, like, like)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}

	var rows []models.Warga
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	if filter.Kategori == "" {
		return rows, nil
	}

	now := time.Now()
	filtered := rows[:0]
	for _, w := range rows {
		if utils.KategoriUmur(utils.UmurDari(w.TglLahir, now)) == filter.Kategori {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}

// 1 GetAllWarga lists residents with filters and pagination
func (s *WargaService) GetAllWarga(filter WargaFilter, page int, pageSize int) ([]models.Warga, int64, error) {
	rows, err := s.fetchFiltered(filter)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(rows))
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []models.Warga{}, total, nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total, nil
}

// 2 GetWargaByID fetches one resident
func (s *WargaService) GetWargaByID(id uint) (*models.Warga, error) {
	var warga models.Warga
	if err := s.DB.First(&warga, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("data warga tidak ditemukan")
		}
		return nil, err
	}
	return &warga, nil
}

// validateWarga checks the identity fields shared by create and update.
func validateWarga(warga *models.Warga) error {
	if strings.TrimSpace(warga.Nama) == "" {
		return errors.New("nama wajib diisi")
	}
	if !utils.ValidNIK(warga.NIK) {
		return errors.New("NIK harus 16 digit angka")
	}
	if !utils.ValidNoKK(warga.NoKK) {
		return errors.New("No KK harus 16 digit angka")
	}
	if !utils.ValidTanggal(warga.TglLahir) {
		return errors.New("tanggal lahir tidak valid")
	}
	birth, _ := utils.ParseTanggal(warga.TglLahir)
	if birth.After(time.Now()) {
		return errors.New("tanggal lahir tidak boleh di masa depan")
	}
	return nil
}

// 3 CreateWarga creates a new resident record
func (s *WargaService) CreateWarga(warga *models.Warga) error {
	if err := validateWarga(warga); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Warga{}).Where("nik = ?", warga.NIK).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("NIK sudah terdaftar")
	}

	warga.Nama = strings.TrimSpace(warga.Nama)
	warga.RT = utils.Pad2(warga.RT)
	warga.RW = utils.Pad2(warga.RW)

	return s.DB.Create(warga).Error
}

// 4 UpdateWarga applies partial updates to a resident
func (s *WargaService) UpdateWarga(id uint, updates map[string]interface{}) (*models.Warga, error) {
	warga, err := s.GetWargaByID(id)
	if err != nil {
		return nil, err
	}

	if nik, ok := updates["nik"].(string); ok {
		if !utils.ValidNIK(nik) {
			return nil, errors.New("NIK harus 16 digit angka")
		}
		if nik != warga.NIK {
			var count int64
			if err := s.DB.Model(&models.Warga{}).Where("nik = ? AND id != ?", nik, id).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, errors.New("NIK sudah terdaftar")
			}
		}
	}
	if noKK, ok := updates["no_kk"].(string); ok && !utils.ValidNoKK(noKK) {
		return nil, errors.New("No KK harus 16 digit angka")
	}
	if tgl, ok := updates["tgl_lahir"].(string); ok {
		if !utils.ValidTanggal(tgl) {
			return nil, errors.New("tanggal lahir tidak valid")
		}
		birth, _ := utils.ParseTanggal(tgl)
		if birth.After(time.Now()) {
			return nil, errors.New("tanggal lahir tidak boleh di masa depan")
		}
	}
	if rt, ok := updates["rt"].(string); ok {
		updates["rt"] = utils.Pad2(rt)
	}
	if rw, ok := updates["rw"].(string); ok {
		updates["rw"] = utils.Pad2(rw)
	}

	if err := s.DB.Model(warga).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetWargaByID(id)
}

// 5 DeleteWarga removes a resident record
func (s *WargaService) DeleteWarga(id uint) error {
	warga, err := s.GetWargaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(warga).Error
}

// 6 Summary tallies marital status and age categories over the filtered set
func (s *WargaService) Summary(filter WargaFilter) (*WargaSummary, error) {
	rows, err := s.fetchFiltered(filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &WargaSummary{
		Total: len(rows),
		Status: map[string]int{
			models.StatusMenikah: 0,
			models.StatusCerai:   0,
			models.StatusLajang:  0,
		},
		Kategori: map[string]int{
			utils.KategoriBalita: 0,
			utils.KategoriAnak:   0,
			utils.KategoriRemaja: 0,
			utils.KategoriDewasa: 0,
			utils.KategoriLansia: 0,
		},
	}
	for _, w := range rows {
		summary.Status[w.Status]++
		summary.Kategori[utils.KategoriUmur(utils.UmurDari(w.TglLahir, now))]++
	}
	return summary, nil
}
