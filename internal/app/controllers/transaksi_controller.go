package controllers

import (
	"strconv"
	"time"

	"warga-http-service/internal/app/middleware"
	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/domain/services/container"
	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"
	"warga-http-service/pkg/logger"
	"warga-http-service/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceTransaksiController defines the ledger controller interface
type InterfaceTransaksiController interface {
	GetTransaksis()
	GetTransaksi()
	CreateTransaksi()
	UpdateTransaksi()
	DeleteTransaksi()
	GetRingkasan()
}

// TransaksiController handles community ledger requests.
type TransaksiController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTransaksiController creates a new ledger controller.
func NewTransaksiController(ctx *gin.Context, container *container.ServiceContainer) *TransaksiController {
	return &TransaksiController{
		Ctx:       ctx,
		Container: container,
	}
}

// TransaksiRequest is the create payload.
type TransaksiRequest struct {
	Jenis      string `json:"jenis" binding:"required" example:"Pemasukan"`
	Nominal    int64  `json:"nominal" binding:"required" example:"150000"`
	Keterangan string `json:"keterangan" example:"Iuran bulanan RT"`
	Tanggal    string `json:"tanggal" binding:"required" example:"2024-03-10"`
}

// UpdateTransaksiRequest is the partial update payload.
type UpdateTransaksiRequest struct {
	Jenis      string `json:"jenis" example:"Pengeluaran"`
	Nominal    int64  `json:"nominal" example:"75000"`
	Keterangan string `json:"keterangan" example:"Perbaikan pos ronda"`
	Tanggal    string `json:"tanggal" example:"2024-03-12"`
}

// currentUser resolves the authenticated account, failing the request when
// the token context is missing.
func (c *TransaksiController) currentUser() (uint, bool) {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return 0, false
	}
	return userID, true
}

// invalidationTargets lists the accounts whose cached balance series a
// mutation touches: the acting user plus the row owner, deduplicated. An
// operator editing someone else's row must not leave the owner's series stale.
func invalidationTargets(actor uint, owners ...uint) []uint {
	targets := []uint{actor}
	seen := map[uint]struct{}{actor: {}}
	for _, owner := range owners {
		if _, dup := seen[owner]; dup {
			continue
		}
		seen[owner] = struct{}{}
		targets = append(targets, owner)
	}
	return targets
}

// invalidateDerived drops the cached listings and balance series after a
// ledger mutation.
func (c *TransaksiController) invalidateDerived(actor uint, owners ...uint) {
	middleware.PurgeCache()
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	for _, id := range invalidationTargets(actor, owners...) {
		if err := redisService.InvalidateSerieSaldo(id); err != nil {
			logger.Warning("Failed to invalidate balance series cache for user %d: %v", id, err)
		}
	}
}

// GetTransaksis lists ledger entries
// @Summary      List transactions
// @Description  Paginated ledger listing, operators see every entry, others only their own
// @Tags         Transaksi
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Param        jenis query string false "Pemasukan or Pengeluaran"
// @Param        dari query string false "Start date YYYY-MM-DD"
// @Param        sampai query string false "End date YYYY-MM-DD"
// @Param        q query string false "Substring of description"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /transaksis [get]
func (c *TransaksiController) GetTransaksis() {
	userID, ok := c.currentUser()
	if !ok {
		return
	}

	var pq models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&pq); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}
	pq.Normalize()

	filter := services.TransaksiFilter{
		Jenis:     c.Ctx.Query("jenis"),
		DariTgl:   c.Ctx.Query("dari"),
		SampaiTgl: c.Ctx.Query("sampai"),
		Query:     c.Ctx.Query("q"),
	}

	transaksiService := c.Container.GetService("transaksi").(services.InterfaceTransaksiService)
	transaksis, total, err := transaksiService.GetAllTransaksi(userID, filter, pq.Page, pq.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTransaksiInvalid, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, pq.Page, pq.PageSize),
		"data":       transaksis,
	})
}

// GetTransaksi fetches one ledger entry
// @Summary      Transaction detail
// @Description  Fetch one ledger entry within the caller's scope
// @Tags         Transaksi
// @Accept       json
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /transaksis/{id} [get]
func (c *TransaksiController) GetTransaksi() {
	userID, ok := c.currentUser()
	if !ok {
		return
	}

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "ID transaksi tidak valid")
		return
	}

	transaksiService := c.Container.GetService("transaksi").(services.InterfaceTransaksiService)
	transaksi, err := transaksiService.GetTransaksiByID(userID, uint(idUint))
	if err != nil {
		if err.Error() == "transaksi tidak ditemukan" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal mengambil data transaksi", nil)
		return
	}

	response.Success(c.Ctx, transaksi)
}

// CreateTransaksi records a ledger entry
// @Summary      Create transaction
// @Description  Record an income or expense entry, operators only
// @Tags         Transaksi
// @Accept       json
// @Produce      json
// @Param        request body TransaksiRequest true "Transaction data"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /transaksis [post]
func (c *TransaksiController) CreateTransaksi() {
	userID, ok := c.currentUser()
	if !ok {
		return
	}

	var req TransaksiRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	tanggal, valid := utils.ParseTanggal(req.Tanggal)
	if !valid {
		response.ParamError(c.Ctx, "format tanggal tidak valid")
		return
	}

	transaksi := &models.Transaksi{
		Jenis:      req.Jenis,
		Nominal:    req.Nominal,
		Keterangan: req.Keterangan,
		Tanggal:    tanggal,
	}

	transaksiService := c.Container.GetService("transaksi").(services.InterfaceTransaksiService)
	if err := transaksiService.CreateTransaksi(userID, transaksi); err != nil {
		if err.Error() == "hanya operator yang dapat mencatat transaksi" {
			response.FailWithMessage(c.Ctx, code.ErrPermissionDenied, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrTransaksiInvalid, err.Error(), nil)
		return
	}

	c.invalidateDerived(userID)
	response.Created(c.Ctx, transaksi)
}

// UpdateTransaksi updates a ledger entry
// @Summary      Update transaction
// @Description  Apply partial updates to a ledger entry, operators only
// @Tags         Transaksi
// @Accept       json
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Param        request body UpdateTransaksiRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /transaksis/{id} [put]
func (c *TransaksiController) UpdateTransaksi() {
	userID, ok := c.currentUser()
	if !ok {
		return
	}

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "ID transaksi tidak valid")
		return
	}

	var req UpdateTransaksiRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Jenis != "" {
		updates["jenis"] = req.Jenis
	}
	if req.Nominal != 0 {
		updates["nominal"] = req.Nominal
	}
	if req.Keterangan != "" {
		updates["keterangan"] = req.Keterangan
	}
	if req.Tanggal != "" {
		updates["tanggal"] = req.Tanggal
	}

	transaksiService := c.Container.GetService("transaksi").(services.InterfaceTransaksiService)
	transaksi, err := transaksiService.UpdateTransaksi(userID, uint(idUint), updates)
	if err != nil {
		switch err.Error() {
		case "transaksi tidak ditemukan":
			response.NotFound(c.Ctx, err.Error())
		case "hanya operator yang dapat mengubah transaksi":
			response.FailWithMessage(c.Ctx, code.ErrPermissionDenied, err.Error(), nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrTransaksiInvalid, err.Error(), nil)
		}
		return
	}

	c.invalidateDerived(userID, transaksi.UserID)
	response.Success(c.Ctx, transaksi)
}

// DeleteTransaksi removes a ledger entry
// @Summary      Delete transaction
// @Description  Delete one ledger entry, operators only
// @Tags         Transaksi
// @Accept       json
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /transaksis/{id} [delete]
func (c *TransaksiController) DeleteTransaksi() {
	userID, ok := c.currentUser()
	if !ok {
		return
	}

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "ID transaksi tidak valid")
		return
	}

	transaksiService := c.Container.GetService("transaksi").(services.InterfaceTransaksiService)
	deleted, err := transaksiService.DeleteTransaksi(userID, uint(idUint))
	if err != nil {
		switch err.Error() {
		case "transaksi tidak ditemukan":
			response.NotFound(c.Ctx, err.Error())
		case "hanya operator yang dapat menghapus transaksi":
			response.FailWithMessage(c.Ctx, code.ErrPermissionDenied, err.Error(), nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal menghapus transaksi", nil)
		}
		return
	}

	c.invalidateDerived(userID, deleted.UserID)
	response.Success(c.Ctx, nil)
}

// GetRingkasan summarises the current month
// @Summary      Monthly summary
// @Description  Totals for the current month compared with the previous one
// @Tags         Transaksi
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /transaksis/ringkasan [get]
func (c *TransaksiController) GetRingkasan() {
	userID, ok := c.currentUser()
	if !ok {
		return
	}

	transaksiService := c.Container.GetService("transaksi").(services.InterfaceTransaksiService)
	ringkasan, err := transaksiService.Ringkasan(userID, time.Now())
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal mengambil ringkasan transaksi", nil)
		return
	}

	response.Success(c.Ctx, ringkasan)
}

// HandleTransaksiFunc returns a gin handler dispatching to the named method.
func HandleTransaksiFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTransaksiController(ctx, container)

		switch method {
		case "getTransaksis":
			controller.GetTransaksis()
		case "getTransaksi":
			controller.GetTransaksi()
		case "createTransaksi":
			controller.CreateTransaksi()
		case "updateTransaksi":
			controller.UpdateTransaksi()
		case "deleteTransaksi":
			controller.DeleteTransaksi()
		case "getRingkasan":
			controller.GetRingkasan()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "metode tidak dikenal", nil)
		}
	}
}
