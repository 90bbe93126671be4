package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"KreyolCollector/internal/storage"
)

type ListResponse struct {
	Ok    bool   `json:"ok" example:"true"`
	Count int    `json:"count" example:"2"`
	Kind  string `json:"kind" example:"all"`
	Items []any  `json:"items"`
}

// ListSamples godoc
// @Summary      List recent samples
// @Description  Returns up to 50 of the newest audio and/or pair records.
// @Description  Unrecognized kind values behave like "all".
// @Tags         Samples
// @Produce      json
// @Param        kind query string false "audio, pair or all" default(all)
// @Success      200 {object} handler.ListResponse
// @Failure      500 {object} handler.ErrorResponse "partition scan failure"
// @Router       /api/samples [get]
func (h *Handler) ListSamples(c *gin.Context) {
	kind := storage.ParseKind(c.DefaultQuery("kind", "all"))

	items, err := h.store.ListSamples(kind)
	if err != nil {
		log.Printf("ListSamples(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"error":   "storage_error",
			"message": "failed to scan sample partitions",
		})
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Ok:    true,
		Count: len(items),
		Kind:  string(kind),
		Items: items,
	})
}
