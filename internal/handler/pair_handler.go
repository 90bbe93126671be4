package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"KreyolCollector/internal/models"
)

// LinkRequest is the body of /api/samples/link.
type LinkRequest struct {
	Term      string `json:"term" example:"Diabetes"`
	Category  string `json:"category" example:"medical"`
	EnText    string `json:"enText" example:"Diabetes"`
	HtText    string `json:"htText" example:"Dyabèt"`
	EnAudioID string `json:"enAudioId"`
	HtAudioID string `json:"htAudioId"`
	Annotator string `json:"annotator" example:"anonymous"`
	Consent   bool   `json:"consent"`
}

type LinkResponse struct {
	Ok       bool              `json:"ok" example:"true"`
	SampleID string            `json:"sampleId"`
	Record   models.PairRecord `json:"record"`
}

// LinkPair godoc
// @Summary      Link an EN/HT pair
// @Description  Creates a pair record referencing two previously uploaded
// @Description  audio clips. The referenced ids are not checked for
// @Description  existence; a dangling reference is accepted.
// @Tags         Samples
// @Accept       json
// @Produce      json
// @Param        request body handler.LinkRequest true "pair payload"
// @Success      200 {object} handler.LinkResponse
// @Failure      400 {object} handler.ErrorResponse "missing fields or consent"
// @Failure      500 {object} handler.ErrorResponse "filesystem failure"
// @Router       /api/samples/link [post]
func (h *Handler) LinkPair(c *gin.Context) {
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"error":   "parse_error",
			"message": "invalid JSON body: " + err.Error(),
		})
		return
	}

	// Collect every missing field, not just the first.
	var missing []string
	if strings.TrimSpace(req.Term) == "" {
		missing = append(missing, "term")
	}
	if strings.TrimSpace(req.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(req.EnAudioID) == "" {
		missing = append(missing, "enAudioId")
	}
	if strings.TrimSpace(req.HtAudioID) == "" {
		missing = append(missing, "htAudioId")
	}
	if !req.Consent {
		missing = append(missing, "consent")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":            false,
			"error":         "validation_error",
			"message":       "missing required fields",
			"missingFields": missing,
		})
		return
	}

	enText := req.EnText
	if enText == "" {
		enText = req.Term
	}
	annotator := req.Annotator
	if annotator == "" {
		annotator = "anonymous"
	}

	record := models.PairRecord{
		SampleID:  uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Term:      req.Term,
		Category:  req.Category,
		Annotator: annotator,
		Consent:   req.Consent,
		EN:        models.PairSide{Text: enText, AudioRef: req.EnAudioID},
		HT:        models.PairSide{Text: req.HtText, AudioRef: req.HtAudioID},
	}

	if err := h.store.SavePair(&record); err != nil {
		log.Printf("LinkPair(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"error":   "storage_error",
			"message": "failed to persist pair",
		})
		return
	}

	c.JSON(http.StatusOK, LinkResponse{Ok: true, SampleID: record.SampleID, Record: record})
}
