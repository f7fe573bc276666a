package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"barberbook/internal/middleware"
	"barberbook/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.POST("/services", h.CreateService)
	rg.GET("/barbers", h.ListBarbers)
	rg.POST("/barbers", h.CreateBarber)
	rg.PUT("/barbers/:id/working-hours", h.SetWorkingHours)
	rg.POST("/barbers/:id/blocked-times", h.CreateBlockedTime)
	rg.GET("/appointments", h.DayAppointments)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context(), middleware.ShopID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"services": services}})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), middleware.ShopID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"service": svc}})
}

func (h *Handler) ListBarbers(c *gin.Context) {
	barbers, err := h.service.ListBarbers(c.Request.Context(), middleware.ShopID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"barbers": barbers}})
}

func (h *Handler) CreateBarber(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.CreateBarber(c.Request.Context(), middleware.ShopID(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"barber": b}})
}

func (h *Handler) SetWorkingHours(c *gin.Context) {
	barberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid barber id")
		return
	}

	var req SetWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	hours, err := h.service.SetWorkingHours(c.Request.Context(), middleware.ShopID(c), barberID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"working_hours": hours}})
}

func (h *Handler) CreateBlockedTime(c *gin.Context) {
	barberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid barber id")
		return
	}

	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	bt, err := h.service.CreateBlockedTime(c.Request.Context(), middleware.ShopID(c), barberID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"blocked_time": bt}})
}

func (h *Handler) DayAppointments(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		badRequest(c, "date must be YYYY-MM-DD")
		return
	}

	var barberID int64
	if v := c.Query("barber_id"); v != "" {
		barberID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(c, "Invalid barber_id")
			return
		}
	}

	appts, err := h.service.DayAppointments(c.Request.Context(), middleware.ShopID(c), barberID, day)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"appointments": appts}})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": msg,
		},
	})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		badRequest(c, "Invalid working hours or interval")
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Resource not found",
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Unexpected error",
			},
		})
	}
}
