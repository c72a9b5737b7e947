// Package catalogvc - Test client upload ảnh với server giả.
package catalogvc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/khulnastore11/khulnastore/internal/common"
)

func newTestUploadService(endpoint string) *ImageUploadService {
	return &ImageUploadService{
		endpoint: endpoint,
		preset:   "khulna-sign",
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestUpload_ThanhCongKhiCoSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("request không phải multipart: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "khulna-sign" {
			t.Errorf("upload_preset = %q, muốn khulna-sign", got)
		}
		w.Write([]byte(`{"secure_url":"https://cdn.example.com/img/abc.jpg","url":"http://cdn.example.com/img/abc.jpg"}`))
	}))
	defer srv.Close()

	svc := newTestUploadService(srv.URL)
	url, err := svc.Upload(context.Background(), "abc.jpg", strings.NewReader("anh-gia-lap"))
	if err != nil {
		t.Fatalf("Upload lỗi: %v", err)
	}
	if url != "https://cdn.example.com/img/abc.jpg" {
		t.Errorf("url = %q, muốn secure_url", url)
	}
}

func TestUpload_ThieuURLLaThatBai(t *testing.T) {
	// Status 200 nhưng response không có URL nào vẫn tính là thất bại
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"abc"}`))
	}))
	defer srv.Close()

	svc := newTestUploadService(srv.URL)
	_, err := svc.Upload(context.Background(), "abc.jpg", strings.NewReader("anh"))
	if !errors.Is(err, common.ErrUploadFailed) {
		t.Errorf("thiếu secure_url phải trả ErrUploadFailed, nhận: %v", err)
	}
}

func TestUpload_ServerLoiTraErrUploadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := newTestUploadService(srv.URL)
	_, err := svc.Upload(context.Background(), "abc.jpg", strings.NewReader("anh"))
	if !errors.Is(err, common.ErrUploadFailed) {
		t.Errorf("server lỗi phải trả ErrUploadFailed, nhận: %v", err)
	}
}

func TestUpload_ChuaCauHinhEndpoint(t *testing.T) {
	svc := newTestUploadService("")
	_, err := svc.Upload(context.Background(), "abc.jpg", strings.NewReader("anh"))
	if !errors.Is(err, common.ErrUploadFailed) {
		t.Errorf("thiếu endpoint phải trả ErrUploadFailed, nhận: %v", err)
	}
}
