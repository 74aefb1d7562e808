package handlers

import (
	"net/http"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/service"
	"dojo_path/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CatalogHandler は種目・カテゴリの閲覧APIです。ログインは任意。
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) ListDisciplines(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	disciplines, err := h.service.ListDisciplines(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if disciplines == nil {
		disciplines = []*model.Discipline{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, disciplines, logger)
}

// GetDiscipline は {idOrSlug} がUUIDならID、それ以外はスラッグとして検索します
func (h *CatalogHandler) GetDiscipline(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	param := chi.URLParam(r, "idOrSlug")

	var (
		detail *model.DisciplineDetailResponse
		err    error
	)
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		detail, err = h.service.GetDiscipline(r.Context(), id)
	} else {
		detail, err = h.service.GetDisciplineBySlug(r.Context(), param)
	}
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// GetCategory はカテゴリと技一覧を返します。スラッグ指定のときは ?discipline=<slug> が必要。
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	param := chi.URLParam(r, "idOrSlug")

	var userID *uuid.UUID
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		userID = &id
	}

	var (
		detail *model.CategoryDetailResponse
		err    error
	)
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		detail, err = h.service.GetCategory(r.Context(), userID, id)
	} else {
		disciplineSlug := r.URL.Query().Get("discipline")
		if disciplineSlug == "" {
			webutil.HandleError(w, logger, model.NewAppError("DISCIPLINE_REQUIRED", "スラッグで検索する場合は種目の指定が必要です。", "discipline", model.ErrInvalidInput))
			return
		}
		detail, err = h.service.GetCategoryBySlug(r.Context(), userID, disciplineSlug, param)
	}
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}
