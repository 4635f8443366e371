package analysis

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/enhance"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/server/respond"
	"resume-ats/resume/model"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches pipeline routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.parse)
	rg.POST("/score", h.score)
	rg.POST("/enhance", h.enhance)
	rg.POST("/recommendations", h.recommendations)
	rg.POST("/resumes", h.upload)
	rg.GET("/history", h.history)
}

type parseRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	record := h.Svc.Parse(req.Text)
	respond.OK(c, gin.H{"resume": record})
}

type scoreRequest struct {
	Resume *model.ResumeRecord `json:"resume"`
	Text   string              `json:"text"`
	Label  string              `json:"label"`
}

// resolveRecord accepts either a structured record or raw text to parse.
// The structured record wins when both are present.
func (h *Handler) resolveRecord(req scoreRequest) (model.ResumeRecord, bool) {
	if req.Resume != nil {
		return *req.Resume, true
	}
	if strings.TrimSpace(req.Text) != "" {
		return h.Svc.Parse(req.Text), true
	}
	return model.ResumeRecord{}, false
}

func (h *Handler) score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	record, ok := h.resolveRecord(req)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume or text is required", nil)
		return
	}

	result := h.Svc.Score(c.Request.Context(), record, req.Label)
	respond.OK(c, result)
}

type enhanceRequest struct {
	Resume     *model.ResumeRecord `json:"resume"`
	Text       string              `json:"text"`
	TargetRole string              `json:"target_role"`
	Level      string              `json:"level"`
}

func (h *Handler) enhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	record, ok := h.resolveRecord(scoreRequest{Resume: req.Resume, Text: req.Text})
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume or text is required", nil)
		return
	}

	result := h.Svc.Enhance(c.Request.Context(), record, strings.TrimSpace(req.TargetRole), enhance.ParseLevel(req.Level))
	respond.OK(c, result)
}

type recommendRequest struct {
	Resume     *model.ResumeRecord `json:"resume"`
	Text       string              `json:"text"`
	Score      *scoring.Result     `json:"score"`
	TargetRole string              `json:"target_role"`
}

func (h *Handler) recommendations(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	record, ok := h.resolveRecord(scoreRequest{Resume: req.Resume, Text: req.Text})
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume or text is required", nil)
		return
	}

	report := h.Svc.Recommend(c.Request.Context(), record, req.Score, strings.TrimSpace(req.TargetRole))
	respond.OK(c, report)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	result, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, mimeType, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process document", nil)
		}
		return
	}

	respond.Created(c, result)
}

func (h *Handler) history(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	snapshots, err := h.Svc.HistoryList(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch history", nil)
		return
	}
	respond.OK(c, gin.H{"snapshots": snapshots})
}
