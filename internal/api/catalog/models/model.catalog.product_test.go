// Package models - Test chọn ảnh đại diện sản phẩm.
package models

import "testing"

func TestFeaturedImage(t *testing.T) {
	p := Product{Images: []string{"a.jpg", "b.jpg", "c.jpg"}, FeaturedIndex: 1}
	if got := p.FeaturedImage(); got != "b.jpg" {
		t.Errorf("FeaturedImage = %q, muốn b.jpg", got)
	}
}

func TestFeaturedImage_IndexNgoaiPhamViDungAnhDau(t *testing.T) {
	p := Product{Images: []string{"a.jpg", "b.jpg"}, FeaturedIndex: 7}
	if got := p.FeaturedImage(); got != "a.jpg" {
		t.Errorf("FeaturedImage với index ngoài phạm vi = %q, muốn a.jpg", got)
	}

	p.FeaturedIndex = -1
	if got := p.FeaturedImage(); got != "a.jpg" {
		t.Errorf("FeaturedImage với index âm = %q, muốn a.jpg", got)
	}
}

func TestFeaturedImage_KhongCoAnh(t *testing.T) {
	p := Product{}
	if got := p.FeaturedImage(); got != "" {
		t.Errorf("FeaturedImage khi chưa có ảnh = %q, muốn rỗng", got)
	}
}
