// Package prefvc - Test kiểm tra đầu vào của tuỳ chọn theme.
package prefvc

import (
	"context"
	"errors"
	"testing"

	"github.com/khulnastore11/khulnastore/internal/common"
)

func TestSetTheme_ThemeKhongHopLe(t *testing.T) {
	svc := &PrefService{}
	err := svc.SetTheme(context.Background(), "client-token", "blue")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("theme lạ phải trả ErrInvalidInput, nhận: %v", err)
	}
}

func TestSetTheme_ThieuToken(t *testing.T) {
	svc := &PrefService{}
	err := svc.SetTheme(context.Background(), "", "dark")
	if !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("thiếu token phải trả ErrRequiredField, nhận: %v", err)
	}
}

func TestGetTheme_ThieuToken(t *testing.T) {
	svc := &PrefService{}
	_, err := svc.GetTheme(context.Background(), "")
	if !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("thiếu token phải trả ErrRequiredField, nhận: %v", err)
	}
}
