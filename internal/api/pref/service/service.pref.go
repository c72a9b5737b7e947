// Package prefvc - Service tuỳ chọn client (theme).
package prefvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/khulnastore11/khulnastore/internal/api/base/service"
	prefmodels "github.com/khulnastore11/khulnastore/internal/api/pref/models"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// PrefService đọc/ghi tuỳ chọn theo token của client.
type PrefService struct {
	*basesvc.BaseServiceMongoImpl[prefmodels.Preference]
}

// NewPrefService tạo PrefService mới.
func NewPrefService() (*PrefService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Preferences)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Preferences, common.ErrNotFound)
	}
	return &PrefService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[prefmodels.Preference](coll),
	}, nil
}

// GetTheme trả về theme của token, mặc định light nếu client chưa lưu gì.
func (s *PrefService) GetTheme(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrRequiredField
	}
	pref, err := s.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return prefmodels.ThemeLight, nil
		}
		return "", err
	}
	if pref.Theme == "" {
		return prefmodels.ThemeLight, nil
	}
	return pref.Theme, nil
}

// SetTheme lưu theme cho token, tạo document tuỳ chọn nếu chưa có.
func (s *PrefService) SetTheme(ctx context.Context, token, theme string) error {
	if token == "" {
		return common.ErrRequiredField
	}
	if theme != prefmodels.ThemeLight && theme != prefmodels.ThemeDark {
		return common.ErrInvalidInput
	}
	_, err := s.Upsert(ctx, bson.M{"token": token}, basesvc.UpdateData{
		Set: map[string]interface{}{"theme": theme},
		SetOnInsert: map[string]interface{}{"token": token},
	})
	return err
}
