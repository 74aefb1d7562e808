package handlers

import (
	"errors"
	"io"
	"net/http"

	"dojo_path/internal/middleware"
	"dojo_path/internal/model"
	"dojo_path/internal/service"
	"dojo_path/internal/webutil"
)

// multipart のヘッダー分の余裕
const multipartOverhead = 1 << 20

type ProfileHandler struct {
	service        service.ProfileService
	maxUploadBytes int64
}

func NewProfileHandler(s service.ProfileService, maxUploadMB int64) *ProfileHandler {
	return &ProfileHandler{service: s, maxUploadBytes: maxUploadMB * 1024 * 1024}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// UpdateProfile は送られた項目だけを更新します
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid profile update request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// UploadAvatar は multipart の "file" フィールドを受け取りプロフィール画像にします
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			webutil.HandleError(w, logger, model.NewAppError("FILE_TOO_LARGE", "画像サイズが大きすぎます。", "file", model.ErrInvalidInput))
			return
		}
		logger.Warn("Failed to parse multipart form", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "multipart/form-data で画像を送信してください。", "file", model.ErrInvalidInput))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("FILE_REQUIRED", "画像ファイルを選択してください。", "file", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		// ヘッダーが無ければ先頭512バイトから判定する
		sniff := make([]byte, 512)
		n, _ := io.ReadFull(file, sniff)
		contentType = http.DetectContentType(sniff[:n])
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			webutil.HandleError(w, logger, model.NewAppError("UPLOAD_FAILED", "画像の読み込みに失敗しました。", "file", err))
			return
		}
	}

	profile, err := h.service.UploadAvatar(r.Context(), userID, contentType, header.Size, file)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}
