package handlers

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"mural-backend/internal/models"
	"mural-backend/internal/services"
	"mural-backend/internal/storage"
	"mural-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	// MaxUploadBytes is the upload size cap (10 MiB)
	MaxUploadBytes = 10 << 20
	maxNameLength  = 120
)

// truncateName caps an uploader name at 120 characters. Counting runes, not
// bytes, keeps multibyte names valid UTF-8 after the cut.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > maxNameLength {
		return string(runes[:maxNameLength])
	}
	return name
}

// PhotoService is what the photo handlers need from the service layer.
type PhotoService interface {
	ListByRoom(ctx context.Context, room string) ([]models.Photo, error)
	Create(ctx context.Context, p *models.Photo) error
	UpdateCaption(ctx context.Context, id int64, caption string) error
	Delete(ctx context.Context, id int64) (string, error)
}

// ListPhotosHandler returns a room's photos, newest first
func ListPhotosHandler(svc PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		room := c.Query("room")
		if room == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "room is required"})
		}

		photos, err := svc.ListByRoom(c.Context(), room)
		if err != nil {
			utils.LogError(err, "ListPhotos")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch photos"})
		}

		baseURL := c.BaseURL()
		views := make([]models.PhotoView, 0, len(photos))
		for _, p := range photos {
			views = append(views, p.View(baseURL))
		}
		return c.JSON(views)
	}
}

// UploadPhotoHandler stores an uploaded image and records its metadata.
// The file is written first and the row inserted second; if the insert
// fails the stored file is removed again.
func UploadPhotoHandler(svc PhotoService, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		room := c.FormValue("room")
		if room == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "room is required"})
		}

		name := truncateName(c.FormValue("name"))

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return c.Status(http.StatusUnsupportedMediaType).JSON(fiber.Map{"error": "only images are allowed"})
		}
		if fileHeader.Size > MaxUploadBytes {
			return c.Status(http.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "file exceeds the 10 MiB limit"})
		}

		filename := utils.GenerateFilename(contentType)

		src, err := fileHeader.Open()
		if err != nil {
			utils.LogError(err, "UploadPhoto open")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read upload"})
		}
		defer func() { _ = src.Close() }()

		if err := store.Save(c.Context(), filename, src, fileHeader.Size); err != nil {
			utils.LogError(err, "UploadPhoto save")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
		}

		photo := &models.Photo{RoomID: room, Name: name, Caption: "", FilePath: filename}
		if err := svc.Create(c.Context(), photo); err != nil {
			// Cleanup the file if the metadata insert fails
			if rmErr := store.Remove(c.Context(), filename); rmErr != nil {
				utils.LogError(rmErr, "UploadPhoto cleanup")
			}
			utils.LogError(err, "UploadPhoto insert")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save photo"})
		}

		return c.JSON(fiber.Map{"ok": true, "file": filename})
	}
}

// UpdateCaptionHandler sets a photo's caption. An unknown id is reported as
// success, matching the original API contract.
func UpdateCaptionHandler(svc PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid photo id"})
		}

		var req models.UpdateCaptionRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}

		caption := ""
		if req.Caption != nil {
			caption = *req.Caption
		}

		if err := svc.UpdateCaption(c.Context(), id, caption); err != nil {
			utils.LogError(err, "UpdateCaption")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update caption"})
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

// DeletePhotoHandler deletes a photo row and then its backing file. A file
// removal failure is logged but not reported; the row is already gone.
func DeletePhotoHandler(svc PhotoService, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid photo id"})
		}

		filePath, err := svc.Delete(c.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrPhotoNotFound) {
				return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "not found"})
			}
			utils.LogError(err, "DeletePhoto")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete photo"})
		}

		if err := store.Remove(c.Context(), filePath); err != nil {
			utils.LogError(err, "DeletePhoto file")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

// ServeUploadHandler streams a stored binary. Used instead of static file
// serving when the storage driver is not the local disk.
func ServeUploadHandler(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("file")

		rc, err := store.Open(c.Context(), name)
		if err != nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}

		if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
			c.Set(fiber.HeaderContentType, contentType)
		}
		return c.SendStream(rc)
	}
}
