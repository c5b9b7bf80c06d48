package controllers

import (
	"warga-http-service/internal/app/middleware"
	"warga-http-service/internal/domain/models"
	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/domain/services/container"
	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceKeluargaController defines the family card controller interface
type InterfaceKeluargaController interface {
	GetKeluargas()
	GetKeluarga()
	CreateKeluarga()
	TambahAnak()
}

// KeluargaController handles family card requests.
type KeluargaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewKeluargaController creates a new family card controller.
func NewKeluargaController(ctx *gin.Context, container *container.ServiceContainer) *KeluargaController {
	return &KeluargaController{
		Ctx:       ctx,
		Container: container,
	}
}

// AnggotaRequest is one member inside a family card payload.
type AnggotaRequest struct {
	Nama         string `json:"nama" binding:"required" example:"Siti Aminah"`
	NIK          string `json:"nik" binding:"required" example:"3201234567890003"`
	TglLahir     string `json:"tgl_lahir" binding:"required" example:"1992-11-03"`
	TempatLahir  string `json:"tempat_lahir" example:"Bogor"`
	JenisKelamin string `json:"jenis_kelamin" example:"Perempuan"`
	Agama        string `json:"agama" example:"Islam"`
	Pendidikan   string `json:"pendidikan" example:"SMA"`
	Pekerjaan    string `json:"pekerjaan" example:"Ibu Rumah Tangga"`
	Alamat       string `json:"alamat" example:"Kp. Rawa Hingkik"`
	RT           string `json:"rt" example:"03"`
	RW           string `json:"rw" example:"06"`
}

// KeluargaRequest is the create payload: the head carries the KK number, the
// spouse and children inherit it.
type KeluargaRequest struct {
	NoKK   string           `json:"no_kk" binding:"required" example:"3201234567890002"`
	Kepala AnggotaRequest   `json:"kepala" binding:"required"`
	Istri  *AnggotaRequest  `json:"istri"`
	Anak   []AnggotaRequest `json:"anak"`
}

// toWarga converts a member payload into a registry record.
func (r *AnggotaRequest) toWarga(noKK string) models.Warga {
	return models.Warga{
		Nama:         r.Nama,
		NIK:          r.NIK,
		NoKK:         noKK,
		TglLahir:     r.TglLahir,
		TempatLahir:  r.TempatLahir,
		JenisKelamin: r.JenisKelamin,
		Agama:        r.Agama,
		Pendidikan:   r.Pendidikan,
		Pekerjaan:    r.Pekerjaan,
		Alamat:       r.Alamat,
		RT:           r.RT,
		RW:           r.RW,
	}
}

// GetKeluargas lists family cards
// @Summary      List family cards
// @Description  Paginated family card listing grouped by KK number
// @Tags         Keluarga
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /keluargas [get]
func (c *KeluargaController) GetKeluargas() {
	var pq models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&pq); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}
	pq.Normalize()

	keluargaService := c.Container.GetService("keluarga").(services.InterfaceKeluargaService)
	keluargas, total, err := keluargaService.GetAllKeluarga(pq.Page, pq.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal mengambil data keluarga", nil)
		return
	}

	data := make([]gin.H, 0, len(keluargas))
	for i := range keluargas {
		k := keluargas[i]
		data = append(data, gin.H{
			"keluarga":  k,
			"komposisi": services.Komposisi(&k),
		})
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, pq.Page, pq.PageSize),
		"data":       data,
	})
}

// GetKeluarga fetches one family card
// @Summary      Family card detail
// @Description  Fetch the family card for one KK number
// @Tags         Keluarga
// @Accept       json
// @Produce      json
// @Param        no_kk path string true "KK number, 16 digits"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /keluargas/{no_kk} [get]
func (c *KeluargaController) GetKeluarga() {
	noKK := c.Ctx.Param("no_kk")

	keluargaService := c.Container.GetService("keluarga").(services.InterfaceKeluargaService)
	keluarga, err := keluargaService.GetKeluargaByNoKK(noKK)
	if err != nil {
		if err.Error() == "data keluarga tidak ditemukan" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrKeluargaInvalid, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"keluarga":  keluarga,
		"komposisi": services.Komposisi(keluarga),
	})
}

// CreateKeluarga registers a whole family card
// @Summary      Create family card
// @Description  Register head, optional spouse and children under one KK number atomically
// @Tags         Keluarga
// @Accept       json
// @Produce      json
// @Param        request body KeluargaRequest true "Family card members"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /keluargas [post]
func (c *KeluargaController) CreateKeluarga() {
	var req KeluargaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	kepala := req.Kepala.toWarga(req.NoKK)

	var istri *models.Warga
	if req.Istri != nil {
		w := req.Istri.toWarga(req.NoKK)
		istri = &w
	}

	anak := make([]models.Warga, 0, len(req.Anak))
	for i := range req.Anak {
		anak = append(anak, req.Anak[i].toWarga(req.NoKK))
	}

	keluargaService := c.Container.GetService("keluarga").(services.InterfaceKeluargaService)
	keluarga, err := keluargaService.CreateKeluarga(&kepala, istri, anak)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrKeluargaInvalid, err.Error(), nil)
		return
	}

	middleware.PurgeCache()
	response.Created(c.Ctx, keluarga)
}

// TambahAnak adds a child to a family card
// @Summary      Add child
// @Description  Register a child under an existing KK number
// @Tags         Keluarga
// @Accept       json
// @Produce      json
// @Param        no_kk path string true "KK number, 16 digits"
// @Param        request body AnggotaRequest true "Child data"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /keluargas/{no_kk}/anak [post]
func (c *KeluargaController) TambahAnak() {
	noKK := c.Ctx.Param("no_kk")

	var req AnggotaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parameter permintaan tidak valid", nil)
		return
	}

	anak := req.toWarga(noKK)

	keluargaService := c.Container.GetService("keluarga").(services.InterfaceKeluargaService)
	keluarga, err := keluargaService.TambahAnak(noKK, &anak)
	if err != nil {
		if err.Error() == "data keluarga tidak ditemukan" {
			response.NotFound(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrKeluargaInvalid, err.Error(), nil)
		return
	}

	middleware.PurgeCache()
	response.Created(c.Ctx, keluarga)
}

// HandleKeluargaFunc returns a gin handler dispatching to the named method.
func HandleKeluargaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewKeluargaController(ctx, container)

		switch method {
		case "getKeluargas":
			controller.GetKeluargas()
		case "getKeluarga":
			controller.GetKeluarga()
		case "createKeluarga":
			controller.CreateKeluarga()
		case "tambahAnak":
			controller.TambahAnak()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "metode tidak dikenal", nil)
		}
	}
}
