// internal/services/storage_service_test.go
package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/marketplace-backend/internal/config"
)

type memFile struct{ *bytes.Reader }

func (memFile) Close() error { return nil }

func localStorage(t *testing.T) *StorageService {
	svc, err := NewStorageService(&config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: "8080"},
	})
	require.NoError(t, err)
	return svc
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := localStorage(t)

	header := &multipart.FileHeader{Filename: "big.png", Size: maxImageSize + 1}
	_, err := svc.UploadProductImage(memFile{bytes.NewReader(nil)}, header)
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	svc := localStorage(t)

	header := &multipart.FileHeader{Filename: "notes.txt", Size: 10}
	_, err := svc.UploadProductImage(memFile{bytes.NewReader([]byte("plain text"))}, header)
	assert.ErrorIs(t, err, ErrInvalidImage)
}

// Without AWS credentials uploads land on the local dev URL.
func TestUploadFallsBackToLocalURL(t *testing.T) {
	svc := localStorage(t)

	content := []byte("fake image bytes")
	header := &multipart.FileHeader{
		Filename: "photo.png",
		Size:     int64(len(content)),
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}

	result, err := svc.UploadProductImage(memFile{bytes.NewReader(content)}, header)
	require.NoError(t, err)

	assert.Contains(t, result.URL, "http://localhost:8080/uploads/products/")
	assert.True(t, strings.HasSuffix(result.Key, ".png"))
	assert.Equal(t, int64(len(content)), result.Size)
	assert.Equal(t, "image/png", result.MimeType)
}
