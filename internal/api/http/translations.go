package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/brainsync/internal/api/domain"
	"github.com/aussiebroadwan/brainsync/internal/api/service"
	"github.com/aussiebroadwan/brainsync/pkg/brainsdk"
	"github.com/aussiebroadwan/brainsync/pkg/httpx"
)

// DefaultListLimit applies when GET /translations has no limit parameter.
const DefaultListLimit = 50

// TranslationsHandler handles the translation history endpoints.
type TranslationsHandler struct {
	TranslationService *service.TranslationService
}

// HandleCreate handles POST /translations
//
//	@Summary		Create Translation
//	@Description	Records a translation request. braille_output is always null on creation.
//	@Description	When a valid bearer token is sent the translation is owned by that user.
//	@Tags			Translations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		brainsdk.CreateTranslationRequest	true	"Translation"
//	@Success		200		{object}	brainsdk.Translation
//	@Failure		400		{object}	brainsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	brainsdk.ErrorResponse	"error, error_description"
//	@Router			/translations [post].
func (h *TranslationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req brainsdk.CreateTranslationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	owner := domain.PlaceholderUserID
	if id, ok := httpx.UserIDFromContext(ctx); ok {
		owner = id
	}

	tr, err := h.TranslationService.Create(ctx, service.CreateTranslationInput{
		UserID:          owner,
		SourceText:      req.SourceText,
		SourceLanguage:  req.SourceLanguage,
		TargetLanguage:  req.TargetLanguage,
		TranslatedText:  req.TranslatedText,
		TranslationType: req.TranslationType,
		AudioFileURL:    req.AudioFileURL,
		ImageFileURL:    req.ImageFileURL,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to create translation")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, translationView(tr))
}

// HandleList handles GET /translations
//
//	@Summary		List Translations
//	@Description	Returns translation history newest first.
//	@Tags			Translations
//	@Produce		json
//	@Param			limit	query		int		false	"Maximum results, 0 for all"	default(50)	minimum(0)
//	@Param			search	query		string	false	"Case-insensitive substring of source text or braille output"
//	@Success		200		{array}		brainsdk.Translation
//	@Failure		400		{object}	brainsdk.ErrorResponse	"invalid limit"
//	@Failure		500		{object}	brainsdk.ErrorResponse	"error, error_description"
//	@Router			/translations [get].
func (h *TranslationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit := DefaultListLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeInvalidRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	items, err := h.TranslationService.List(ctx, limit, q.Get("search"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list translations")
		return
	}

	out := make([]brainsdk.Translation, 0, len(items))
	for _, tr := range items {
		out = append(out, translationView(tr))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate handles PATCH /translations/{id}
//
//	@Summary		Update Translation
//	@Description	Sets the provided fields and bumps updated_at.
//	@Tags			Translations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Translation ID"
//	@Param			request	body		brainsdk.UpdateTranslationRequest	true	"Fields to change"
//	@Success		200		{object}	brainsdk.Translation
//	@Failure		400		{object}	brainsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	brainsdk.ErrorResponse	"translation not found"
//	@Router			/translations/{id} [patch].
func (h *TranslationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req brainsdk.UpdateTranslationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, brainsdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	tr, err := h.TranslationService.Update(ctx, id, service.UpdateTranslationInput{
		TranslatedText: req.TranslatedText,
		BrailleOutput:  req.BrailleOutput,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to update translation")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, translationView(tr))
}

// HandleDelete handles DELETE /translations/{id}
//
//	@Summary		Delete Translation
//	@Tags			Translations
//	@Param			id	path	string	true	"Translation ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	brainsdk.ErrorResponse	"translation not found"
//	@Router			/translations/{id} [delete].
func (h *TranslationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TranslationService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Failed to delete translation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleStats handles GET /translations/stats
//
//	@Summary		Translation Statistics
//	@Description	Total count plus a per-type breakdown. Known types are always present.
//	@Tags			Translations
//	@Produce		json
//	@Success		200	{object}	brainsdk.StatsResponse
//	@Failure		500	{object}	brainsdk.ErrorResponse	"error, error_description"
//	@Router			/translations/stats [get].
func (h *TranslationsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.TranslationService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to compute statistics")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, brainsdk.StatsResponse{
		Total:    stats.Total,
		ByMethod: stats.ByMethod,
	})
}

func translationView(t domain.Translation) brainsdk.Translation {
	return brainsdk.Translation{
		ID:              t.ID,
		SourceText:      t.SourceText,
		SourceLanguage:  t.SourceLanguage,
		TargetLanguage:  t.TargetLanguage,
		TranslatedText:  t.TranslatedText,
		BrailleOutput:   t.BrailleOutput,
		AudioFileURL:    t.AudioFileURL,
		ImageFileURL:    t.ImageFileURL,
		TranslationType: t.TranslationType,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
