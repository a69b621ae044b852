package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhotoView(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := Photo{
		ID:        42,
		RoomID:    "m-abc123",
		Name:      "Ana",
		Caption:   "first day",
		FilePath:  "1717243200000-a1b2c3d4.jpg",
		CreatedAt: created,
	}

	v := p.View("http://localhost:3001")

	assert.Equal(t, int64(42), v.ID)
	assert.Equal(t, "m-abc123", v.RoomID)
	assert.Equal(t, "Ana", v.Name)
	assert.Equal(t, "first day", v.Caption)
	assert.Equal(t, "http://localhost:3001/uploads/1717243200000-a1b2c3d4.jpg", v.URL)
	assert.Equal(t, created, v.CreatedAt)
}

func TestPhotoView_EmptyFields(t *testing.T) {
	p := Photo{ID: 1, RoomID: "r", FilePath: "f.png"}
	v := p.View("https://example.com")

	assert.Equal(t, "", v.Name)
	assert.Equal(t, "", v.Caption)
	assert.Equal(t, "https://example.com/uploads/f.png", v.URL)
}
