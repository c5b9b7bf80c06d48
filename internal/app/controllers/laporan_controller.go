package controllers

import (
	"net/http"

	"warga-http-service/internal/app/middleware"
	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/domain/services/container"
	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceLaporanController defines the report controller interface
type InterfaceLaporanController interface {
	GetLaporan()
	ExportExcel()
	ExportPDF()
}

// LaporanController handles financial report requests.
type LaporanController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLaporanController creates a new report controller.
func NewLaporanController(ctx *gin.Context, container *container.ServiceContainer) *LaporanController {
	return &LaporanController{
		Ctx:       ctx,
		Container: container,
	}
}

// filterFromQuery reads the shared report filter parameters.
func (c *LaporanController) filterFromQuery() services.TransaksiFilter {
	return services.TransaksiFilter{
		Jenis:     c.Ctx.Query("jenis"),
		DariTgl:   c.Ctx.Query("dari"),
		SampaiTgl: c.Ctx.Query("sampai"),
	}
}

// failExport maps report errors onto the envelope.
func (c *LaporanController) failExport(err error) {
	if err.Error() == "tidak ada transaksi untuk dilaporkan" {
		response.FailWithMessage(c.Ctx, code.ErrLaporanEmpty, err.Error(), nil)
		return
	}
	response.FailWithMessage(c.Ctx, code.ErrLaporanRender, "gagal membuat laporan", nil)
}

// GetLaporan returns the report rows as JSON
// @Summary      Report rows
// @Description  The projected report rows and closing balance without rendering
// @Tags         Laporan
// @Accept       json
// @Produce      json
// @Param        jenis query string false "Pemasukan or Pengeluaran"
// @Param        dari query string false "Start date YYYY-MM-DD"
// @Param        sampai query string false "End date YYYY-MM-DD"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /laporan [get]
func (c *LaporanController) GetLaporan() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	laporanService := c.Container.GetService("laporan").(services.InterfaceLaporanService)
	laporan, err := laporanService.BuildLaporan(userID, c.filterFromQuery())
	if err != nil {
		c.failExport(err)
		return
	}

	response.Success(c.Ctx, laporan)
}

// ExportExcel downloads the report as a spreadsheet
// @Summary      Export xlsx
// @Description  Download the financial report as an xlsx workbook
// @Tags         Laporan
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        jenis query string false "Pemasukan or Pengeluaran"
// @Param        dari query string false "Start date YYYY-MM-DD"
// @Param        sampai query string false "End date YYYY-MM-DD"
// @Security     BearerAuth
// @Success      200  {file}  file
// @Failure      400  {object}  ErrorResponse
// @Router       /laporan/excel [get]
func (c *LaporanController) ExportExcel() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	laporanService := c.Container.GetService("laporan").(services.InterfaceLaporanService)
	filename, data, err := laporanService.ExportExcel(userID, c.filterFromQuery())
	if err != nil {
		c.failExport(err)
		return
	}

	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportPDF downloads the report as a PDF
// @Summary      Export PDF
// @Description  Download the financial report as an A4 PDF
// @Tags         Laporan
// @Produce      application/pdf
// @Param        jenis query string false "Pemasukan or Pengeluaran"
// @Param        dari query string false "Start date YYYY-MM-DD"
// @Param        sampai query string false "End date YYYY-MM-DD"
// @Security     BearerAuth
// @Success      200  {file}  file
// @Failure      400  {object}  ErrorResponse
// @Router       /laporan/pdf [get]
func (c *LaporanController) ExportPDF() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	laporanService := c.Container.GetService("laporan").(services.InterfaceLaporanService)
	filename, data, err := laporanService.ExportPDF(userID, c.filterFromQuery())
	if err != nil {
		c.failExport(err)
		return
	}

	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Data(http.StatusOK, "application/pdf", data)
}

// HandleLaporanFunc returns a gin handler dispatching to the named method.
func HandleLaporanFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLaporanController(ctx, container)

		switch method {
		case "getLaporan":
			controller.GetLaporan()
		case "exportExcel":
			controller.ExportExcel()
		case "exportPDF":
			controller.ExportPDF()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "metode tidak dikenal", nil)
		}
	}
}
