package utils

import (
	"regexp"
	"strings"
	"testing"
)

func TestExtensionForMIME(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{name: "jpeg", contentType: "image/jpeg", want: ".jpg"},
		{name: "png", contentType: "image/png", want: ".png"},
		{name: "gif", contentType: "image/gif", want: ".gif"},
		{name: "webp", contentType: "image/webp", want: ".webp"},
		{name: "with params", contentType: "image/png; charset=binary", want: ".png"},
		{name: "mixed case", contentType: "Image/JPEG", want: ".jpg"},
		{name: "unknown", contentType: "application/x-unknown-thing", want: ".bin"},
		{name: "empty", contentType: "", want: ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtensionForMIME(tt.contentType); got != tt.want {
				t.Errorf("ExtensionForMIME(%q) = %q, want %q", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestGenerateFilename_Format(t *testing.T) {
	name := GenerateFilename("image/jpeg")
	matched, err := regexp.MatchString(`^\d+-[0-9a-f]{8}\.jpg$`, name)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("GenerateFilename() = %q, want <millis>-<random>.jpg", name)
	}
	if strings.Contains(name, "/") {
		t.Errorf("GenerateFilename() = %q, must not contain path separators", name)
	}
}

func TestGenerateFilename_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		name := GenerateFilename("image/png")
		if seen[name] {
			t.Fatalf("duplicate filename generated: %q", name)
		}
		seen[name] = true
	}
}
