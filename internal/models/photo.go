package models

import "time"

// Photo represents one uploaded photo in a room
type Photo struct {
	ID        int64     `json:"id"`
	RoomID    string    `json:"room_id"`
	Name      string    `json:"name"`
	Caption   string    `json:"caption"`
	FilePath  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// PhotoView is the listing representation of a Photo. The stored relative
// file path is replaced by an absolute URL built against the request host.
type PhotoView struct {
	ID        int64     `json:"id"`
	RoomID    string    `json:"room_id"`
	Name      string    `json:"name"`
	Caption   string    `json:"caption"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// View maps a Photo to its listing representation. baseURL is the request's
// scheme+host without a trailing slash, e.g. "http://localhost:3001".
func (p Photo) View(baseURL string) PhotoView {
	return PhotoView{
		ID:        p.ID,
		RoomID:    p.RoomID,
		Name:      p.Name,
		Caption:   p.Caption,
		URL:       baseURL + "/uploads/" + p.FilePath,
		CreatedAt: p.CreatedAt,
	}
}

// UpdateCaptionRequest is the body of PUT /api/photos/:id. A missing or null
// caption clears the stored one.
type UpdateCaptionRequest struct {
	Caption *string `json:"caption"`
}
