package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "kreyol-collector"
const serviceVersion = "0.1.0"

type HealthResponse struct {
	Ok          bool      `json:"ok" example:"true"`
	Service     string    `json:"service" example:"kreyol-collector"`
	Version     string    `json:"version" example:"0.1.0"`
	Uptime      float64   `json:"uptime" example:"12.5"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment" example:"development"`
}

// Healthz godoc
// @Summary      Health check
// @Description  Reports service liveness, uptime and environment.
// @Tags         Ops
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Ok:          true,
		Service:     serviceName,
		Version:     serviceVersion,
		Uptime:      time.Since(h.start).Seconds(),
		Timestamp:   time.Now().UTC(),
		Environment: h.cfg.Env,
	})
}
