package handlers

import (
	"net/http"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/service"
	"dojo_path/internal/webutil"
)

// NavigationSessionHeader は未ログインの訪問者を識別するヘッダー
const NavigationSessionHeader = "X-Navigation-Session"

type NavigationHandler struct {
	service service.NavigationService
}

func NewNavigationHandler(s service.NavigationService) *NavigationHandler {
	return &NavigationHandler{service: s}
}

func (h *NavigationHandler) Current(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	key, _, err := navigationKey(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.Current(r.Context(), key)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	key, authenticated, err := navigationKey(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.NavigateRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.Navigate(r.Context(), key, authenticated, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

func (h *NavigationHandler) Back(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	key, authenticated, err := navigationKey(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.Back(r.Context(), key, authenticated)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

// navigationKey はログイン中ならユーザーID、未ログインならセッションヘッダーを状態のキーにします
func navigationKey(r *http.Request) (string, bool, error) {
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		return userID.String(), true, nil
	}
	session := r.Header.Get(NavigationSessionHeader)
	if session == "" || len(session) > 128 {
		return "", false, model.NewAppError("NAVIGATION_SESSION_REQUIRED", "X-Navigation-Session ヘッダーが必要です。", "", model.ErrInvalidInput)
	}
	return "anon:" + session, false, nil
}
