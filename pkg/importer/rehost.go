package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// rehostPhoto downloads the source image and re-uploads it to owned storage
// at a deterministic object key, so re-runs overwrite instead of accumulating.
// Any download or upload failure yields "" and the caller treats the photo as
// absent; re-invoking the batch is the retry mechanism.
func (s *importerService) rehostPhoto(ctx context.Context, sourceURL, objectKey string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return ""
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return ""
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	if _, err := s.s3.UploadBytes(objectKey, data, contentType); err != nil {
		return ""
	}

	return s.s3.GetPublicLinkKey(objectKey)
}

func photoObjectKey(citySlug, restaurantSlug string, index int) string {
	return fmt.Sprintf("restaurants/%s/%s-%d.jpg", citySlug, restaurantSlug, index)
}
