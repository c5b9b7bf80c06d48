package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/infrastructure/config"
	"warga-http-service/utils"

	"gorm.io/gorm"
)

// TransaksiFilter narrows a ledger listing.
type TransaksiFilter struct {
	Jenis     string // pemasukan, pengeluaran or empty for both
	DariTgl   string // YYYY-MM-DD inclusive lower bound
	SampaiTgl string // YYYY-MM-DD inclusive upper bound
	Query     string // substring of keterangan
}

// RingkasanTransaksi summarises the ledger for one calendar month against the
// month before it. Pct fields are nil when the previous month has no baseline.
type RingkasanTransaksi struct {
	Bulan            string   `json:"bulan"`
	TotalPemasukan   int64    `json:"total_pemasukan"`
	TotalPengeluaran int64    `json:"total_pengeluaran"`
	Saldo            int64    `json:"saldo"`
	PctPemasukan     *float64 `json:"pct_pemasukan"`
	PctPengeluaran   *float64 `json:"pct_pengeluaran"`
}

// InterfaceTransaksiService defines the community ledger service interface
type InterfaceTransaksiService interface {
	GetAllTransaksi(userID uint, filter TransaksiFilter, page int, pageSize int) ([]models.Transaksi, int64, error)
	GetTransaksiByID(userID uint, id uint) (*models.Transaksi, error)
	CreateTransaksi(userID uint, transaksi *models.Transaksi) error
	UpdateTransaksi(userID uint, id uint, updates map[string]interface{}) (*models.Transaksi, error)
	DeleteTransaksi(userID uint, id uint) (*models.Transaksi, error)
	Ringkasan(userID uint, now time.Time) (*RingkasanTransaksi, error)
}

// TransaksiService manages the income and expense ledger. Operators see and
// mutate the whole ledger; other accounts are scoped to their own rows.
type TransaksiService struct {
	DB     *gorm.DB
	Config *config.Config
	Policy AuthorizationPolicy
}

// NewTransaksiService creates a new ledger service.
func NewTransaksiService(db *gorm.DB, cfg *config.Config, policy AuthorizationPolicy) InterfaceTransaksiService {
	return &TransaksiService{
		DB:     db,
		Config: cfg,
		Policy: policy,
	}
}

// scoped returns a query limited to the rows the user may see.
func (s *TransaksiService) scoped(userID uint) *gorm.DB {
	tx := s.DB.Model(&models.Transaksi{})
	if !s.Policy.IsOperator(userID) {
		tx = tx.Where("user_id = ?", userID)
	}
	return tx
}

// validateTransaksi checks the fields shared by create and update.
func validateTransaksi(t *models.Transaksi) error {
	if t.Jenis != models.JenisPemasukan && t.Jenis != models.JenisPengeluaran {
		return fmt.Errorf("jenis harus %s atau %s", models.JenisPemasukan, models.JenisPengeluaran)
	}
	if t.Nominal <= 0 {
		return errors.New("nominal harus lebih dari nol")
	}
	if t.Tanggal.IsZero() {
		return errors.New("tanggal transaksi wajib diisi")
	}
	return nil
}

// 1 GetAllTransaksi lists ledger rows with filters and pagination
func (s *TransaksiService) GetAllTransaksi(userID uint, filter TransaksiFilter, page int, pageSize int) ([]models.Transaksi, int64, error) {
	tx := s.scoped(userID)

	if filter.Jenis != "" {
		tx = tx.Where("jenis = ?", filter.Jenis)
	}
	if filter.DariTgl != "" {
		dari, ok := utils.ParseTanggal(filter.DariTgl)
		if !ok {
			return nil, 0, errors.New("format tanggal awal tidak valid")
		}
		tx = tx.Where("tanggal >= ?", dari)
	}
	if filter.SampaiTgl != "" {
		sampai, ok := utils.ParseTanggal(filter.SampaiTgl)
		if !ok {
			return nil, 0, errors.New("format tanggal akhir tidak valid")
		}
		tx = tx.Where("tanggal < ?", sampai.AddDate(0, 0, 1))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		tx = tx.Where("keterangan LIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Transaksi
	if err := tx.Preload("User").
		Order("tanggal DESC, id DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// 2 GetTransaksiByID fetches one ledger row within the user's scope
func (s *TransaksiService) GetTransaksiByID(userID uint, id uint) (*models.Transaksi, error) {
	var transaksi models.Transaksi
	if err := s.scoped(userID).Preload("User").Where("id = ?", id).First(&transaksi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("transaksi tidak ditemukan")
		}
		return nil, err
	}
	return &transaksi, nil
}

// 3 CreateTransaksi records a ledger entry, operators only
func (s *TransaksiService) CreateTransaksi(userID uint, transaksi *models.Transaksi) error {
	if !s.Policy.IsOperator(userID) {
		return errors.New("hanya operator yang dapat mencatat transaksi")
	}
	if err := validateTransaksi(transaksi); err != nil {
		return err
	}
	transaksi.UserID = userID
	transaksi.Keterangan = strings.TrimSpace(transaksi.Keterangan)
	return s.DB.Create(transaksi).Error
}

// 4 UpdateTransaksi applies partial updates to a ledger entry, operators only
func (s *TransaksiService) UpdateTransaksi(userID uint, id uint, updates map[string]interface{}) (*models.Transaksi, error) {
	if !s.Policy.IsOperator(userID) {
		return nil, errors.New("hanya operator yang dapat mengubah transaksi")
	}

	transaksi, err := s.GetTransaksiByID(userID, id)
	if err != nil {
		return nil, err
	}

	if jenis, ok := updates["jenis"].(string); ok {
		if jenis != models.JenisPemasukan && jenis != models.JenisPengeluaran {
			return nil, fmt.Errorf("jenis harus %s atau %s", models.JenisPemasukan, models.JenisPengeluaran)
		}
	}
	if nominal, ok := updates["nominal"]; ok {
		switch v := nominal.(type) {
		case int64:
			if v <= 0 {
				return nil, errors.New("nominal harus lebih dari nol")
			}
		case float64:
			if v <= 0 {
				return nil, errors.New("nominal harus lebih dari nol")
			}
			updates["nominal"] = int64(v)
		}
	}
	if tgl, ok := updates["tanggal"].(string); ok {
		parsed, valid := utils.ParseTanggal(tgl)
		if !valid {
			return nil, errors.New("format tanggal tidak valid")
		}
		updates["tanggal"] = parsed
	}

	if err := s.DB.Model(transaksi).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetTransaksiByID(userID, id)
}

// 5 DeleteTransaksi removes a ledger entry and returns it, operators only.
// The returned row lets callers invalidate caches keyed by its owner.
func (s *TransaksiService) DeleteTransaksi(userID uint, id uint) (*models.Transaksi, error) {
	if !s.Policy.IsOperator(userID) {
		return nil, errors.New("hanya operator yang dapat menghapus transaksi")
	}
	transaksi, err := s.GetTransaksiByID(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(transaksi).Error; err != nil {
		return nil, err
	}
	return transaksi, nil
}

// sumBetween totals one jenis over [from, to) within the user's scope.
func (s *TransaksiService) sumBetween(userID uint, jenis string, from, to time.Time) (int64, error) {
	var total int64
	err := s.scoped(userID).
		Where("jenis = ? AND tanggal >= ? AND tanggal < ?", jenis, from, to).
		Select("COALESCE(SUM(nominal), 0)").
		Scan(&total).Error
	return total, err
}

// pctChange returns the relative change against prev, nil when prev is zero.
func pctChange(current, prev int64) *float64 {
	if prev == 0 {
		return nil
	}
	pct := float64(current-prev) / float64(prev) * 100
	return &pct
}

// 6 Ringkasan summarises the current month against the previous one
func (s *TransaksiService) Ringkasan(userID uint, now time.Time) (*RingkasanTransaksi, error) {
	loc, err := time.LoadLocation(s.Config.ReportTimezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	nextMonth := monthStart.AddDate(0, 1, 0)
	prevMonth := monthStart.AddDate(0, -1, 0)

	pemasukan, err := s.sumBetween(userID, models.JenisPemasukan, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	pengeluaran, err := s.sumBetween(userID, models.JenisPengeluaran, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	prevPemasukan, err := s.sumBetween(userID, models.JenisPemasukan, prevMonth, monthStart)
	if err != nil {
		return nil, err
	}
	prevPengeluaran, err := s.sumBetween(userID, models.JenisPengeluaran, prevMonth, monthStart)
	if err != nil {
		return nil, err
	}

	return &RingkasanTransaksi{
		Bulan:            monthStart.Format("2006-01"),
		TotalPemasukan:   pemasukan,
		TotalPengeluaran: pengeluaran,
		Saldo:            pemasukan - pengeluaran,
		PctPemasukan:     pctChange(pemasukan, prevPemasukan),
		PctPengeluaran:   pctChange(pengeluaran, prevPengeluaran),
	}, nil
}
