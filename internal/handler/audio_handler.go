package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"KreyolCollector/internal/models"
	"KreyolCollector/internal/storage"
)

type UploadAudioResponse struct {
	Ok   bool   `json:"ok" example:"true"`
	Kind string `json:"kind" example:"audio"`
	models.AudioRecord
}

// UploadAudio godoc
// @Summary      Upload an audio clip
// @Description  Stores the raw request body as an audio blob in the language
// @Description  partition and writes a JSON sidecar with its metadata. The
// @Description  Content-Type header decides the stored extension and codec.
// @Tags         Samples
// @Accept       octet-stream
// @Produce      json
// @Param        lang path string true "Language partition (en or ht)"
// @Success      200 {object} handler.UploadAudioResponse
// @Failure      400 {object} handler.ErrorResponse "unsupported lang"
// @Failure      413 {object} handler.ErrorResponse "body exceeds MAX_FILE_SIZE"
// @Failure      500 {object} handler.ErrorResponse "filesystem failure"
// @Router       /api/asr/{lang} [post]
func (h *Handler) UploadAudio(c *gin.Context) {
	lang, ok := models.ParseLang(c.Param("lang"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"error":   "validation_error",
			"message": "lang must be \"en\" or \"ht\"",
		})
		return
	}

	// Fast-fail on the declared length before buffering anything.
	if c.Request.ContentLength > h.cfg.Server.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"ok":      false,
			"error":   "payload_too_large",
			"message": "audio body exceeds the configured maximum",
		})
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Server.MaxFileSize)
	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"ok":      false,
				"error":   "payload_too_large",
				"message": "audio body exceeds the configured maximum",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"error":   "validation_error",
			"message": "failed to read request body",
		})
		return
	}

	contentType := c.GetHeader("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	transcript, err := h.asr.Transcribe(c.Request.Context(), data, lang)
	if err != nil {
		log.Printf("UploadAudio(): transcriber failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "transcription_failed",
		})
		return
	}

	id := uuid.New().String()
	ext := storage.ExtensionForContentType(contentType)
	record := models.AudioRecord{
		ID:          id,
		Lang:        lang,
		CreatedAt:   time.Now().UTC(),
		ContentType: contentType,
		Bytes:       len(data),
		AudioFile:   id + ext,
		Transcript:  transcript,
		Codec:       storage.CodecForExtension(ext),
		Domain:      []string{},
	}

	if err := h.store.SaveAudio(&record, data); err != nil {
		log.Printf("UploadAudio(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"error":   "storage_error",
			"message": "failed to persist audio",
		})
		return
	}

	c.JSON(http.StatusOK, UploadAudioResponse{Ok: true, Kind: "audio", AudioRecord: record})
}
