package services

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/infrastructure/config"
	"warga-http-service/utils"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BarisLaporan is one row of the financial report. Both the spreadsheet and
// the PDF renderer consume this projection unchanged.
type BarisLaporan struct {
	No         int    `json:"no"`
	Tanggal    string `json:"tanggal"`
	Jenis      string `json:"jenis"`
	Keterangan string `json:"keterangan"`
	Nominal    string `json:"nominal"`
}

// Laporan is the rendered report content: the rows plus the closing balance.
type Laporan struct {
	Rows      []BarisLaporan `json:"rows"`
	SisaSaldo string         `json:"sisa_saldo"`
}

// InterfaceLaporanService defines the financial report service interface
type InterfaceLaporanService interface {
	BuildLaporan(userID uint, filter TransaksiFilter) (*Laporan, error)
	ExportExcel(userID uint, filter TransaksiFilter) (string, []byte, error)
	ExportPDF(userID uint, filter TransaksiFilter) (string, []byte, error)
}

// LaporanService renders the ledger as downloadable reports.
type LaporanService struct {
	DB        *gorm.DB
	Config    *config.Config
	Transaksi InterfaceTransaksiService
}

// NewLaporanService creates a new report service.
func NewLaporanService(db *gorm.DB, cfg *config.Config, transaksi InterfaceTransaksiService) InterfaceLaporanService {
	return &LaporanService{
		DB:        db,
		Config:    cfg,
		Transaksi: transaksi,
	}
}

// BuildRows projects transactions into report rows, oldest first. Empty
// descriptions render as a dash, amounts carry their sign.
func BuildRows(txns []models.Transaksi) *Laporan {
	laporan := &Laporan{Rows: make([]BarisLaporan, 0, len(txns))}

	var saldo int64
	for i := len(txns) - 1; i >= 0; i-- {
		t := txns[i]
		keterangan := t.Keterangan
		if keterangan == "" {
			keterangan = "-"
		}
		saldo += t.Signed()
		laporan.Rows = append(laporan.Rows, BarisLaporan{
			No:         len(laporan.Rows) + 1,
			Tanggal:    utils.FormatTanggalPanjang(t.Tanggal.Format("2006-01-02")),
			Jenis:      t.Jenis,
			Keterangan: keterangan,
			Nominal:    utils.FormatIDR(t.Signed()),
		})
	}

	laporan.SisaSaldo = utils.FormatIDR(saldo)
	return laporan
}

// loadRows fetches the scoped, filtered ledger and projects it.
func (s *LaporanService) loadRows(userID uint, filter TransaksiFilter) (*Laporan, error) {
	// The listing is newest first; BuildRows reverses it for the report.
	txns, _, err := s.Transaksi.GetAllTransaksi(userID, filter, 1, 100000)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, errors.New("tidak ada transaksi untuk dilaporkan")
	}
	return BuildRows(txns), nil
}

// exportFileName builds a collision-free download name.
func exportFileName(ext string) string {
	return fmt.Sprintf("laporan-keuangan-%s-%s.%s",
		time.Now().Format("20060102"), uuid.New().String()[:8], ext)
}

// 1 BuildLaporan returns the report rows without rendering them
func (s *LaporanService) BuildLaporan(userID uint, filter TransaksiFilter) (*Laporan, error) {
	return s.loadRows(userID, filter)
}

// 2 ExportExcel renders the report as an xlsx workbook
func (s *LaporanService) ExportExcel(userID uint, filter TransaksiFilter) (string, []byte, error) {
	laporan, err := s.loadRows(userID, filter)
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan Keuangan"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", nil, err
	}

	headers := []string{"No", "Tanggal", "Jenis", "Keterangan", "Nominal"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "E1", headerStyle)

	for i, row := range laporan.Rows {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.No)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Tanggal)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.Jenis)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), row.Keterangan)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), row.Nominal)
	}

	footer := len(laporan.Rows) + 2
	f.MergeCell(sheet, fmt.Sprintf("A%d", footer), fmt.Sprintf("D%d", footer))
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footer), "Sisa Saldo")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", footer), laporan.SisaSaldo)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", footer), fmt.Sprintf("E%d", footer), headerStyle)

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "B", 24)
	f.SetColWidth(sheet, "C", "C", 14)
	f.SetColWidth(sheet, "D", "D", 36)
	f.SetColWidth(sheet, "E", "E", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}
	return exportFileName("xlsx"), buf.Bytes(), nil
}

// 3 ExportPDF renders the report as an A4 PDF
func (s *LaporanService) ExportPDF(userID uint, filter TransaksiFilter) (string, []byte, error) {
	laporan, err := s.loadRows(userID, filter)
	if err != nil {
		return "", nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Laporan Keuangan", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{10, 50, 30, 60, 40}
	headers := []string{"No", "Tanggal", "Jenis", "Keterangan", "Nominal"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range laporan.Rows {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", row.No), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.Tanggal, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.Jenis, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, row.Keterangan, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, row.Nominal, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 8, "Sisa Saldo", "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[4], 8, laporan.SisaSaldo, "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", nil, err
	}
	return exportFileName("pdf"), buf.Bytes(), nil
}
