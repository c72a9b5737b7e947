// Package registry - Test registry generic thread-safe.
package registry

import (
	"errors"
	"testing"
)

func TestRegisterVaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả isNew = true")
	}

	got, exists := r.Get("a")
	if !exists || got != 1 {
		t.Errorf("Get = (%d, %v), muốn (1, true)", got, exists)
	}

	isNew, _ = r.Register("a", 2)
	if isNew {
		t.Error("Register ghi đè phải trả isNew = false")
	}
	got, _ = r.Get("a")
	if got != 2 {
		t.Errorf("Get sau ghi đè = %d, muốn 2", got)
	}
}

func TestRegister_TenRong(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với tên rỗng phải trả lỗi")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	created := 0

	creator := func() (string, error) {
		created++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := r.GetOrCreate("key", creator)
		if err != nil {
			t.Fatalf("GetOrCreate lỗi: %v", err)
		}
		if got != "value" {
			t.Errorf("GetOrCreate = %q, muốn value", got)
		}
	}
	if created != 1 {
		t.Errorf("creator được gọi %d lần, muốn 1", created)
	}
}

func TestGetOrCreate_CreatorLoi(t *testing.T) {
	r := NewRegistry[string]()
	wantErr := errors.New("tạo thất bại")
	_, err := r.GetOrCreate("key", func() (string, error) { return "", wantErr })
	if !errors.Is(err, wantErr) {
		t.Errorf("lỗi creator phải được wrap và trả ra, nhận: %v", err)
	}
	if _, exists := r.Get("key"); exists {
		t.Error("creator lỗi thì không được lưu item")
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil || !deleted {
		t.Fatalf("Clear = (%v, %v), muốn (true, nil)", deleted, err)
	}
	if !cleaned {
		t.Error("cleanup phải được gọi")
	}
	if _, exists := r.Get("a"); exists {
		t.Error("item vẫn còn sau Clear")
	}

	deleted, _ = r.Clear("khong-ton-tai", nil)
	if deleted {
		t.Error("Clear item không tồn tại phải trả false")
	}
}
