package api

import (
	"errors"
	"net/http"

	"github.com/wgomg/sumario/internal/config"
	"github.com/wgomg/sumario/internal/digest"
	"github.com/wgomg/sumario/internal/mailbody"
	"github.com/wgomg/sumario/internal/metrics"
	"github.com/wgomg/sumario/internal/processor"
	"github.com/wgomg/sumario/internal/utils"
	"github.com/wgomg/sumario/internal/utils/httputils"
)

type Handler struct {
	logger  *utils.Logger
	digest  *digest.Service
	metrics *metrics.Metrics
}

func NewHandler(
	logger *utils.Logger,
	digestService *digest.Service,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		logger:  logger,
		digest:  digestService,
		metrics: m,
	}
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var payload SummarizeRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if payload.Sentences < 0 {
		httputils.HandleError(w, httputils.BadRequest("sentences must be a positive integer"))
		return
	}

	h.logger.Info(&reqID, "Summarize request: text_bytes=%d, html_bytes=%d, sentences=%d, mode=%q",
		len(payload.Text), len(payload.HTML), payload.Sentences, payload.Mode)

	result, err := h.digest.Run(r.Context(), digest.Request{
		Text:      payload.Text,
		HTML:      payload.HTML,
		Sentences: payload.Sentences,
		Mode:      config.Mode(payload.Mode),
		Model:     payload.Model,
	}, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Summarize failed: %v", err)
		if errors.Is(err, digest.ErrInvalidMode) {
			err = httputils.BadRequest(err.Error())
		}
		httputils.HandleError(w, err)
		return
	}

	h.logger.Info(&reqID, "Summary created: mode=%s, items=%d, note=%q", result.Mode, len(result.Items), result.Note)

	response := SummarizeResponse{Result: *result, PlainText: result.PlainText()}
	if err := httputils.SuccessResponse(w, "Summary created", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleHighlight(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	var payload HighlightRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	container, err := mailbody.NewHTMLContainer(payload.HTML)
	if err != nil {
		h.logger.Error(&reqID, "Failed to parse body: %v", err)
		httputils.HandleError(w, httputils.BadRequest(err.Error()))
		return
	}

	items := payload.Items
	if items == nil {
		items = h.digest.Engine().ActionItems(container.Text())
		h.logger.Debug(&reqID, "Extracted %d action items for highlighting", len(items))
	}

	changed := container.Highlight(items)
	if h.metrics != nil {
		h.metrics.ObserveHighlight(changed)
	}

	response := HighlightResponse{
		HTML:    container.Content(),
		Changed: changed,
		Items:   nonNilItems(items),
	}
	if err := httputils.SuccessResponse(w, "Highlight applied", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func nonNilItems(items []processor.ActionItem) []processor.ActionItem {
	if items == nil {
		return []processor.ActionItem{}
	}
	return items
}
