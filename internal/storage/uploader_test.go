package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const (
	maxImage = int64(10) << 20
	maxVideo = int64(50) << 20
)

func TestValidateMedia(t *testing.T) {
	tests := []struct {
		name        string
		kind        string
		size        int64
		contentType string
		wantErr     bool
	}{
		{"valid image", KindImage, 1 << 20, "image/jpeg", false},
		{"valid png", KindImage, 1 << 20, "image/png", false},
		{"valid video", KindVideo, 20 << 20, "video/mp4", false},
		{"image at ceiling", KindImage, maxImage, "image/jpeg", false},
		{"image over ceiling", KindImage, maxImage + 1, "image/jpeg", true},
		{"video over ceiling", KindVideo, maxVideo + 1, "video/mp4", true},
		{"empty file", KindImage, 0, "image/jpeg", true},
		{"wrong image type", KindImage, 100, "application/pdf", true},
		{"video type for image kind", KindImage, 100, "video/mp4", true},
		{"image type for video kind", KindVideo, 100, "image/jpeg", true},
		{"unknown kind", "audio", 100, "audio/mpeg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMedia(tt.kind, tt.size, tt.contentType, maxImage, maxVideo)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMedia() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	key := ObjectKey(userID, KindImage, "image/png", at)
	if !strings.HasPrefix(key, userID.String()+"/") {
		t.Errorf("key %q must start with the user id segment", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("key %q must carry the .png extension", key)
	}

	key = ObjectKey(userID, KindVideo, "video/quicktime", at)
	if !strings.HasSuffix(key, ".mov") {
		t.Errorf("key %q must carry the .mov extension", key)
	}
}

func TestPublicURLRoundTrip(t *testing.T) {
	base := "https://media.adpulse.example"
	userID := uuid.New()
	key := ObjectKey(userID, KindImage, "image/jpeg", time.Now())

	url := PublicURL(base, "campaign-images", key)

	bucket, gotKey, err := ParseObjectURL(base, url)
	if err != nil {
		t.Fatalf("ParseObjectURL: %v", err)
	}
	if bucket != "campaign-images" {
		t.Errorf("bucket = %q, want campaign-images", bucket)
	}
	if gotKey != key {
		t.Errorf("key = %q, want %q", gotKey, key)
	}
}

func TestParseObjectURLRejectsForeignURL(t *testing.T) {
	base := "https://media.adpulse.example"

	if _, _, err := ParseObjectURL(base, "https://evil.example/campaign-images/u/1.jpg"); err == nil {
		t.Error("expected error for url outside public base")
	}
	if _, _, err := ParseObjectURL(base, base+"/only-bucket"); err == nil {
		t.Error("expected error for url missing key segment")
	}
}

func TestNewUploaderConfigValidation(t *testing.T) {
	valid := Config{
		Region:        "ap-southeast-1",
		AccessKey:     "ak",
		SecretKey:     "sk",
		PublicBaseURL: "https://media.example",
		ImageBucket:   "campaign-images",
		VideoBucket:   "campaign-videos",
		MaxImageBytes: maxImage,
		MaxVideoBytes: maxVideo,
	}

	if _, err := NewUploader(valid); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	broken := valid
	broken.AccessKey = ""
	if _, err := NewUploader(broken); err == nil {
		t.Error("expected error for missing credentials")
	}

	broken = valid
	broken.VideoBucket = ""
	if _, err := NewUploader(broken); err == nil {
		t.Error("expected error for missing bucket")
	}
}
