package http

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
	"github.com/Nazarious-ucu/weather-cli/internal/services/weather"
)

const timeoutDuration = 30 * time.Second

type weatherService interface {
	CurrentWeather(ctx context.Context, name string) (models.CurrentReport, error)
	HourlyWeather(ctx context.Context, name string) (models.HourlyReport, error)
}

type Handler struct {
	service weatherService
}

func NewHandler(svc weatherService) *Handler {
	return &Handler{service: svc}
}

type hourlyResponse struct {
	Location models.LocationCandidate `json:"location"`
	Points   []models.HourlyPoint     `json:"points"`
}

// Register mounts the weather endpoints on r.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api/weather")
	api.GET("/current", h.GetCurrent)
	api.GET("/hourly", h.GetHourly)
}

func (h *Handler) GetCurrent(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
		return
	}
	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	report, err := h.service.CurrentWeather(ctxWithTimeout, location)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) GetHourly(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
		return
	}

	skip := 1
	if raw := c.Query("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidStride.Error()})
			return
		}
		skip = n
	}

	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	report, err := h.service.HourlyWeather(ctxWithTimeout, location)
	if err != nil {
		writeError(c, err)
		return
	}

	points, err := weather.Sample(report.Series, skip)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := hourlyResponse{
		Location: report.Location,
		Points:   slices.Collect(points),
	}
	if resp.Points == nil {
		resp.Points = []models.HourlyPoint{}
	}
	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, err error) {
	var (
		netErr   *models.NetworkError
		parseErr *models.ParseError
	)
	switch {
	case errors.Is(err, models.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.Is(err, models.ErrInvalidStride):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &netErr), errors.As(err, &parseErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
