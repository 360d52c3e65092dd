package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"gobarber/config"
	"gobarber/internal/delivery/http/middleware"
	"gobarber/internal/delivery/http/response"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AvatarHandler holds dependencies for the avatar upload handler.
type AvatarHandler struct {
	uc     usecase.AvatarUsecase
	tmpDir string
	logger *slog.Logger
}

// NewAvatarHandler is the constructor for AvatarHandler, injected by Fx.
func NewAvatarHandler(uc usecase.AvatarUsecase, cfg *config.Config, logger *slog.Logger) *AvatarHandler {
	tmpDir := os.TempDir()
	if cfg.Storage != nil && cfg.Storage.TmpDir != "" {
		tmpDir = cfg.Storage.TmpDir
	}

	return &AvatarHandler{
		uc:     uc,
		tmpDir: tmpDir,
		logger: logger,
	}
}

// Update replaces the authenticated user's avatar with the uploaded file.
func (h *AvatarHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Avatar file is required")
	}

	tempPath, err := h.stageUpload(fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Update(c.Request().Context(), userID, tempPath)
	if err != nil {
		// The upload was not consumed; remove the staged copy.
		_ = os.Remove(tempPath)

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Avatar updated successfully")
}

// stageUpload copies the multipart upload into the temp directory so the
// storage provider can read it from disk.
func (h *AvatarHandler) stageUpload(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer src.Close()

	if err := os.MkdirAll(h.tmpDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create temp directory")
	}

	dst, err := os.CreateTemp(h.tmpDir, "avatar-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())

		return "", errors.Wrap(err, "failed to stage uploaded avatar")
	}

	return dst.Name(), nil
}
