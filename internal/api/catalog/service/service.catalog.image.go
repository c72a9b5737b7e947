// Package catalogvc - Client upload ảnh sản phẩm lên image hosting API.
package catalogvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/khulnastore11/khulnastore/config"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/logger"
)

// ImageUploadService upload ảnh qua multipart POST với unsigned preset.
// Response phải chứa secure_url, thiếu URL được coi là upload thất bại.
type ImageUploadService struct {
	endpoint string
	preset   string
	client   *http.Client
}

// NewImageUploadService tạo ImageUploadService từ config.
func NewImageUploadService(cfg *config.Configuration) *ImageUploadService {
	return &ImageUploadService{
		endpoint: cfg.UploadEndpoint,
		preset:   cfg.UploadPreset,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// uploadResult là phần response của image hosting API mà service quan tâm.
type uploadResult struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// Upload gửi file ảnh lên hosting API và trả về URL bền vững.
// filename chỉ dùng cho phần header của multipart, nội dung lấy từ reader.
func (s *ImageUploadService) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	log := logger.GetAppLogger()

	if s.endpoint == "" {
		log.Warn("🖼️ [UPLOAD] UPLOAD_ENDPOINT chưa được cấu hình")
		return "", common.ErrUploadFailed
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("tạo form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy dữ liệu ảnh: %w", err)
	}
	if err := writer.WriteField("upload_preset", s.preset); err != nil {
		return "", fmt.Errorf("ghi upload_preset: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("đóng multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("endpoint", s.endpoint).Error("🖼️ [UPLOAD] Lỗi khi gọi image hosting API")
		return "", common.ErrUploadFailed
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.WithFields(map[string]interface{}{
			"statusCode": resp.StatusCode,
			"response":   string(respBody),
		}).Error("🖼️ [UPLOAD] Image hosting API trả về lỗi")
		return "", common.ErrUploadFailed
	}

	var result uploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.WithError(err).Error("🖼️ [UPLOAD] Không parse được response upload")
		return "", common.ErrUploadFailed
	}

	// Thiếu secure_url nghĩa là upload thất bại, kể cả khi status 200
	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	if url == "" {
		log.WithField("response", string(respBody)).Error("🖼️ [UPLOAD] Response không chứa URL ảnh")
		return "", common.ErrUploadFailed
	}

	log.WithField("url", url).Info("🖼️ [UPLOAD] Upload ảnh thành công")
	return url, nil
}
