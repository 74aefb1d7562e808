package handlers

import (
	"net/http"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/service"
	"dojo_path/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetTechnique は技ページの内容と既読状態を返します
func (h *ProgressHandler) GetTechnique(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	techniqueID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	view, err := h.service.GetTechnique(r.Context(), userID, techniqueID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// MarkSectionRead はセクションを開いたことを記録します
func (h *ProgressHandler) MarkSectionRead(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	techniqueID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	section := chi.URLParam(r, "section")

	read, err := h.service.MarkSectionRead(r.Context(), userID, techniqueID, section)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"sections_read": read,
	}, logger)
}

// CompleteTechnique は解放済みの技を完了にして経験値を加算します
func (h *ProgressHandler) CompleteTechnique(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	techniqueID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With("technique_id", techniqueID)

	unlocked, err := h.service.CheckUnlocked(r.Context(), userID, techniqueID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if !unlocked {
		logger.Warn("Completion attempted on locked technique")
		webutil.HandleError(w, logger, model.NewAppError("TECHNIQUE_LOCKED", "前の技を完了すると解放されます。", "", model.ErrLocked))
		return
	}

	result, err := h.service.CompleteTechnique(r.Context(), userID, techniqueID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if result.RankChanged {
		logger.Info("Rank up", "from", result.PreviousRank, "to", result.NewRank)
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *ProgressHandler) NextTechnique(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	techniqueID, err := webutil.URLParamUUID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	next, err := h.service.NextTechnique(r.Context(), userID, techniqueID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, next, logger)
}

// Dashboard はプロフィール・進捗の集計・次のおすすめをまとめて返します
func (h *ProgressHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, dashboard, logger)
}
