package controllers

import (
	"strconv"

	"warga-http-service/internal/app/middleware"
	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/domain/services/container"
	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceWargaController defines the resident registry controller interface
type InterfaceWargaController interface {
	GetWargas()
	GetWarga()
	CreateWarga()
	UpdateWarga()
	DeleteWarga()
	GetSummary()
}

// WargaController handles resident registry requests.
type WargaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewWargaController creates a new resident registry controller.
func NewWargaController(ctx *gin.Context, container *container.ServiceContainer) *WargaController {
	return &WargaController{
		Ctx:       ctx,
		Container: container,
	}
}

// WargaRequest is the create payload.
type WargaRequest struct {
	Nama         string `json:"nama" binding:"required" example:"Budi Santoso"`
	NIK          string `json:"nik" binding:"required" example:"3201234567890001"`
	NoKK         string `json:"no_kk" binding:"required" example:"3201234567890002"`
	TglLahir     string `json:"tgl_lahir" binding:"required" example:"1990-05-17"`
	TempatLahir  string `json:"tempat_lahir" example:"Bogor"`
	JenisKelamin string `json:"jenis_kelamin" example:"Laki-laki"`
	Agama        string `json:"agama" example:"Islam"`
	Pendidikan   string `json:"pendidikan" example:"SMA"`
	Pekerjaan    string `json:"pekerjaan" example:"Wiraswasta"`
	Peran        string `json:"peran" example:"Kepala Keluarga"`
	Status       string `json:"status" example:"Menikah"`
	Alamat       string `json:"alamat" example:"Kp. Rawa Hingkik"`
	RT           string `json:"rt" example:"03"`
	RW           string `json:"rw" example:"06"`
}

// UpdateWargaRequest is the partial update payload.
type UpdateWargaRequest struct {
	Nama         string `json:"nama" example:"Budi Santoso"`
	NIK          string `json:"nik" example:"3201234567890001"`
	NoKK         string `json:"no_kk" example:"3201234567890002"`
	TglLahir     string `json:"tgl_lahir" example:"1990-05-17"`
	TempatLahir  string `json:"tempat_lahir" example:"Bogor"`
	JenisKelamin string `json:"jenis_kelamin" example:"Laki-laki"`
	Agama        string `json:"agama" example:"Islam"`
	Pendidikan   string `json:"pendidikan" example:"SMA"`
	Pekerjaan    string `json:"pekerjaan" example:"Wiraswasta"`
	Peran        string `json:"peran" example:"Kepala Keluarga"`
	Status       string `json:"status" example:"Menikah"`
	Alamat       string `json:"alamat" example:"Kp. Rawa Hingkik"`
	RT           string `json:"rt" example:"03"`
	RW           string `json:"rw" example:"06"`
}

// wargaFilterFromQuery reads the shared filter parameters.
func (c *WargaController) wargaFilterFromQuery() services.WargaFilter {
	return services.WargaFilter{
		Query:    c.Ctx.Query("q"),
		Status:   c.Ctx.Query("status"),
		Kategori: c.Ctx.Query("kategori"),
	}
}

// GetWargas lists residents
// @Summary      List residents
// @Description  Paginated resident listing with search, marital status and age category filters
// @Tags         Warga
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Param        q query string false "Substring of name, NIK or KK number"
// @Param        status query string false "Marital status filter"
// @Param        kategori query string false "Age category filter"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /wargas [get]
func (c *WargaController) GetWargas() {
	var pq models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&pq); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}
	pq.Normalize()

	wargaService := c.Container.GetService("warga").(services.InterfaceWargaService)
	wargas, total, err := wargaService.GetAllWarga(c.wargaFilterFromQuery(), pq.Page, pq.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal mengambil data warga", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, pq.Page, pq.PageSize),
		"data":       wargas,
	})
}

// GetWarga fetches one resident
// @Summary      Resident detail
// @Description  Fetch one resident by ID
// @Tags         Warga
// @Accept       json
// @Produce      json
// @Param        id path int true "Resident ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /wargas/{id} [get]
func (c *WargaController) GetWarga() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "ID warga tidak valid")
		return
	}

	wargaService := c.Container.GetService("warga").(services.InterfaceWargaService)
	warga, err := wargaService.GetWargaByID(uint(idUint))
	if err != nil {
		if err.Error() == "data warga tidak ditemukan" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal mengambil data warga", nil)
		return
	}

	response.Success(c.Ctx, warga)
}

// CreateWarga creates a resident
// @Summary      Create resident
// @Description  Register a new resident, NIK must be unique
// @Tags         Warga
// @Accept       json
// @Produce      json
// @Param        request body WargaRequest true "Resident data"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /wargas [post]
func (c *WargaController) CreateWarga() {
	var req WargaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	warga := &models.Warga{
		Nama:         req.Nama,
		NIK:          req.NIK,
		NoKK:         req.NoKK,
		TglLahir:     req.TglLahir,
		TempatLahir:  req.TempatLahir,
		JenisKelamin: req.JenisKelamin,
		Agama:        req.Agama,
		Pendidikan:   req.Pendidikan,
		Pekerjaan:    req.Pekerjaan,
		Peran:        req.Peran,
		Status:       req.Status,
		Alamat:       req.Alamat,
		RT:           req.RT,
		RW:           req.RW,
	}

	wargaService := c.Container.GetService("warga").(services.InterfaceWargaService)
	if err := wargaService.CreateWarga(warga); err != nil {
		if err.Error() == "NIK sudah terdaftar" {
			response.FailWithMessage(c.Ctx, code.ErrWargaNIKExists, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrWargaInvalid, err.Error(), nil)
		return
	}

	middleware.PurgeCache()
	response.Created(c.Ctx, warga)
}

// UpdateWarga updates a resident
// @Summary      Update resident
// @Description  Apply partial updates to a resident
// @Tags         Warga
// @Accept       json
// @Produce      json
// @Param        id path int true "Resident ID"
// @Param        request body UpdateWargaRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /wargas/{id} [put]
func (c *WargaController) UpdateWarga() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "ID warga tidak valid")
		return
	}

	var req UpdateWargaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Nama != "" {
		updates["nama"] = req.Nama
	}
	if req.NIK != "" {
		updates["nik"] = req.NIK
	}
	if req.NoKK != "" {
		updates["no_kk"] = req.NoKK
	}
	if req.TglLahir != "" {
		updates["tgl_lahir"] = req.TglLahir
	}
	if req.TempatLahir != "" {
		updates["tempat_lahir"] = req.TempatLahir
	}
	if req.JenisKelamin != "" {
		updates["jenis_kelamin"] = req.JenisKelamin
	}
	if req.Agama != "" {
		updates["agama"] = req.Agama
	}
	if req.Pendidikan != "" {
		updates["pendidikan"] = req.Pendidikan
	}
	if req.Pekerjaan != "" {
		updates["pekerjaan"] = req.Pekerjaan
	}
	if req.Peran != "" {
		updates["peran"] = req.Peran
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Alamat != "" {
		updates["alamat"] = req.Alamat
	}
	if req.RT != "" {
		updates["rt"] = req.RT
	}
	if req.RW != "" {
		updates["rw"] = req.RW
	}

	wargaService := c.Container.GetService("warga").(services.InterfaceWargaService)
	warga, err := wargaService.UpdateWarga(uint(idUint), updates)
	if err != nil {
		if err.Error() == "data warga tidak ditemukan" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		if err.Error() == "NIK sudah terdaftar" {
			response.FailWithMessage(c.Ctx, code.ErrWargaNIKExists, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrWargaInvalid, err.Error(), nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, warga)
}

// DeleteWarga removes a resident
// @Summary      Delete resident
// @Description  Delete one resident by ID
// @Tags         Warga
// @Accept       json
// @Produce      json
// @Param        id path int true "Resident ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /wargas/{id} [delete]
func (c *WargaController) DeleteWarga() {
	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "ID warga tidak valid")
		return
	}

	wargaService := c.Container.GetService("warga").(services.InterfaceWargaService)
	if err := wargaService.DeleteWarga(uint(idUint)); err != nil {
		if err.Error() == "data warga tidak ditemukan" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal menghapus data warga", nil)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, nil)
}

// GetSummary tallies residents by status and age category
// @Summary      Resident summary
// @Description  Totals per marital status and age category over the filtered set
// @Tags         Warga
// @Accept       json
// @Produce      json
// @Param        q query string false "Substring of name, NIK or KK number"
// @Param        status query string false "Marital status filter"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /wargas/summary [get]
func (c *WargaController) GetSummary() {
	wargaService := c.Container.GetService("warga").(services.InterfaceWargaService)
	summary, err := wargaService.Summary(c.wargaFilterFromQuery())
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal mengambil ringkasan warga", nil)
		return
	}

	response.Success(c.Ctx, summary)
}

// HandleWargaFunc returns a gin handler dispatching to the named method.
func HandleWargaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewWargaController(ctx, container)

		switch method {
		case "getWargas":
			controller.GetWargas()
		case "getWarga":
			controller.GetWarga()
		case "createWarga":
			controller.CreateWarga()
		case "updateWarga":
			controller.UpdateWarga()
		case "deleteWarga":
			controller.DeleteWarga()
		case "getSummary":
			controller.GetSummary()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "metode tidak dikenal", nil)
		}
	}
}
