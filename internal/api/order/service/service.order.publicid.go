// Package ordervc - Sinh mã đơn hàng công khai.
package ordervc

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/logger"
)

// publicIdCharset là bảng ký tự của phần ngẫu nhiên trong mã đơn.
const publicIdCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// publicIdLength là độ dài phần ngẫu nhiên sau prefix.
const publicIdLength = 6

// ExistsFunc kiểm tra một mã đơn đã tồn tại hay chưa.
type ExistsFunc func(ctx context.Context, publicId string) (bool, error)

// randomPublicId sinh một mã đơn dạng <prefix>-XXXXXX từ crypto/rand.
func randomPublicId(prefix string) (string, error) {
	buf := make([]byte, publicIdLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("đọc random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = publicIdCharset[int(b)%len(publicIdCharset)]
	}
	return prefix + "-" + string(buf), nil
}

// GeneratePublicId sinh mã đơn chưa tồn tại, tối đa maxRetries lần thử.
// Hết lượt thử mà vẫn đụng mã cũ thì trả về ErrOrderIdExhausted thay vì
// quay vòng vô hạn; unique index trên publicId là chốt chặn cuối nếu hai
// request cùng qua được bước kiểm tra với cùng một mã.
func GeneratePublicId(ctx context.Context, prefix string, maxRetries int, exists ExistsFunc) (string, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		publicId, err := randomPublicId(prefix)
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, publicId)
		if err != nil {
			return "", err
		}
		if !taken {
			return publicId, nil
		}

		logger.GetAppLogger().WithFields(map[string]interface{}{
			"publicId": publicId,
			"attempt":  attempt,
		}).Warn("Mã đơn hàng bị trùng, thử lại")
	}

	return "", common.ErrOrderIdExhausted
}
