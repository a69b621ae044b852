package services

import (
	"context"
	"errors"

	"mural-backend/internal/db"
	"mural-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoService struct{}

func NewPhotoService() *PhotoService {
	return &PhotoService{}
}

// ListByRoom returns every photo of a room, newest first. A room nobody has
// uploaded to yet yields an empty slice, not an error.
func (s *PhotoService) ListByRoom(ctx context.Context, room string) ([]models.Photo, error) {
	query := `
		SELECT id, room_id, name, caption, file_path, created_at
		FROM photos
		WHERE room_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := db.Pool.Query(ctx, query, room)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.RoomID, &p.Name, &p.Caption, &p.FilePath, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// Create inserts a photo row and fills in the server-assigned id and
// creation timestamp.
func (s *PhotoService) Create(ctx context.Context, p *models.Photo) error {
	query := `
		INSERT INTO photos (room_id, name, caption, file_path)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return db.Pool.QueryRow(ctx, query, p.RoomID, p.Name, p.Caption, p.FilePath).Scan(&p.ID, &p.CreatedAt)
}

// UpdateCaption sets the caption of a photo. Updating an id that does not
// exist is not an error: zero rows affected is reported as success, matching
// the original API contract.
func (s *PhotoService) UpdateCaption(ctx context.Context, id int64, caption string) error {
	_, err := db.Pool.Exec(ctx, `UPDATE photos SET caption = $1 WHERE id = $2`, caption, id)
	return err
}

// Delete removes a photo row and returns the stored file path so the caller
// can remove the backing binary. Returns ErrPhotoNotFound when no row
// matches.
func (s *PhotoService) Delete(ctx context.Context, id int64) (string, error) {
	var filePath string
	err := db.Pool.QueryRow(ctx, `DELETE FROM photos WHERE id = $1 RETURNING file_path`, id).Scan(&filePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrPhotoNotFound
		}
		return "", err
	}
	return filePath, nil
}
