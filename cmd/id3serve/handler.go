package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/simonhull/id3meta"
	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/config"
	"github.com/simonhull/id3meta/internal/types"
)

type tagHandler struct {
	log       zerolog.Logger
	opts      []id3meta.Option
	maxUpload int64
	tagLimit  uint32 // derived from maxUpload; 0 when max_tag_size is configured
}

func newTagHandler(cfg config.Config, log zerolog.Logger) *tagHandler {
	h := &tagHandler{
		log:       log,
		opts:      cfg.Options(),
		maxUpload: cfg.MaxUpload,
	}
	if cfg.MaxTagSize == 0 {
		// A tag can never be larger than the upload carrying it.
		h.tagLimit = uploadTagLimit(cfg.MaxUpload)
		h.opts = append(h.opts, id3meta.WithMaxTagSize(h.tagLimit))
	}
	return h
}

// uploadTagLimit is the largest tag size an upload of maxUpload bytes can hold.
func uploadTagLimit(maxUpload int64) uint32 {
	limit := maxUpload - types.HeaderSize
	if limit > binutil.MaxSynchsafe {
		limit = binutil.MaxSynchsafe
	}
	if limit < 1 {
		limit = 1
	}
	return uint32(limit)
}

// tagResponse is the body of every /tags reply.
type tagResponse struct {
	Tag   *id3meta.Tag `json:"tag"`
	Error string       `json:"error,omitempty"`
}

func (h *tagHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": id3meta.Version,
	})
}

// Decode reads the tag at the start of the upload. Only the tag bytes are
// read; the audio that follows is never buffered.
func (h *tagHandler) Decode(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	src, name, err := h.upload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, tagResponse{Error: err.Error()})
		return
	}
	defer src.Close()

	tag, err := id3meta.Parse(src, h.opts...)
	if err != nil {
		if tag != nil {
			h.log.Warn().Err(err).Str("file", name).Int("frames", tag.Len()).Msg("partial tag")
		}
		status := statusFor(err, tag)
		if tag != nil && h.tagLimit > 0 && tag.Header.Size > h.tagLimit {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, tagResponse{Tag: tag, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tagResponse{Tag: tag})
}

// upload returns the audio source: the "file" part of a multipart form, or
// the raw request body.
func (h *tagHandler) upload(c *gin.Context) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return c.Request.Body, "body", nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		return nil, "", errors.New("multipart field \"file\" is required")
	}
	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	return f, header.Filename, nil
}

// statusFor maps a decode failure to a status. A partial tag is 422 unless
// the upload limit cut it short.
func statusFor(err error, tag *id3meta.Tag) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case tag != nil:
		return http.StatusUnprocessableEntity
	case errors.Is(err, id3meta.ErrInvalidMagic), errors.Is(err, id3meta.ErrTruncatedInput):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}
