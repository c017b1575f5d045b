package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates the Cloudinary-backed FileStorage. It reads
// CLOUDINARY_URL or the individual CLOUDINARY_* variables from the
// environment (see the Cloudinary Go SDK docs).
func NewCloudinaryStorage() (FileStorage, error) {
	cld, err := cloudinary.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	cld.Config.URL.Secure = true

	if cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME"); cloudName != "" {
		cld.Config.Cloud.CloudName = cloudName
	}

	return &cloudinaryStorage{cld: cld}, nil
}

func (s *cloudinaryStorage) Upload(ctx context.Context, r io.Reader, size int64, folder, fileName string, c Constraints) (string, error) {
	if s == nil || s.cld == nil {
		return "", fmt.Errorf("cloudinary storage is not initialized")
	}
	if err := c.Check(size, fileName); err != nil {
		return "", err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	publicID := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileName)

	params := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		PublicID:       publicID,
		Overwrite:      api.Bool(false),
	}

	// Convert and compress images; receipts and documents pass through.
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".bmp", ".gif", ".webp":
		params.Format = "webp"
		params.Transformation = "q_auto"
	}

	resp, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to cloudinary: %w", err)
	}

	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload succeeded but secure URL is empty")
	}

	return resp.SecureURL, nil
}

func (s *cloudinaryStorage) Delete(ctx context.Context, fileURL string) error {
	if s == nil || s.cld == nil {
		return fmt.Errorf("cloudinary storage is not initialized")
	}

	publicID := extractPublicID(fileURL)
	if publicID == "" {
		return fmt.Errorf("could not extract public ID from URL: %s", fileURL)
	}

	// Invalidate clears the CDN cache along with the asset.
	params := uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	}

	resp, err := s.cld.Upload.Destroy(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to delete file from cloudinary: %w", err)
	}

	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy api returned result: %s", resp.Result)
	}

	return nil
}

// extractPublicID pulls the public ID out of a Cloudinary delivery URL.
// Example: https://res.cloudinary.com/demo/image/upload/v123/folder/x.jpg -> folder/x
func extractPublicID(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}

	// Path is roughly /<cloud_name>/image/upload/[v<version>/]<folder>/<file>.<ext>
	parts := strings.Split(u.Path, "/")
	uploadIndex := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIndex = i
			break
		}
	}

	if uploadIndex == -1 || uploadIndex+1 >= len(parts) {
		return ""
	}

	relevantParts := parts[uploadIndex+1:]
	if len(relevantParts) > 0 && strings.HasPrefix(relevantParts[0], "v") {
		relevantParts = relevantParts[1:] // skip version
	}
	if len(relevantParts) == 0 {
		return ""
	}

	publicIDWithExt := strings.Join(relevantParts, "/")
	ext := filepath.Ext(publicIDWithExt)
	return strings.TrimSuffix(publicIDWithExt, ext)
}
