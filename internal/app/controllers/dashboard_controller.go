package controllers

import (
	"warga-http-service/internal/app/middleware"
	"warga-http-service/internal/domain/services"
	"warga-http-service/internal/domain/services/container"
	"warga-http-service/internal/error/code"
	"warga-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController defines the dashboard controller interface
type InterfaceDashboardController interface {
	GetSerieSaldo()
}

// DashboardController handles dashboard requests.
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a new dashboard controller.
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// GetSerieSaldo returns the balance candlestick series
// @Summary      Balance series
// @Description  Day-bucketed balance candles with EMA overlay for the requested window
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Param        range query string false "7, 14, 30 or BULAN, default 30"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard/saldo [get]
func (c *DashboardController) GetSerieSaldo() {
	userID, ok := middleware.CurrentUserID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	window := c.Ctx.DefaultQuery("range", services.Window30)

	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	serie, err := dashboardService.GetSerieSaldo(userID, window)
	if err != nil {
		if err.Error() == "rentang waktu tidak dikenal" {
			response.ParamError(c.Ctx, err.Error())
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "gagal mengambil serie saldo", nil)
		return
	}

	response.Success(c.Ctx, serie)
}

// HandleDashboardFunc returns a gin handler dispatching to the named method.
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getSerieSaldo":
			controller.GetSerieSaldo()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "metode tidak dikenal", nil)
		}
	}
}
