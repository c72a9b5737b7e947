// Package ordervc - Test kiểm tra thanh toán và sinh mã đơn.
package ordervc

import (
	"context"
	"errors"
	"regexp"
	"testing"

	orderdto "github.com/khulnastore11/khulnastore/internal/api/order/dto"
	"github.com/khulnastore11/khulnastore/internal/common"
)

func TestValidatePayment_CODKhongCanThongTinThem(t *testing.T) {
	err := ValidatePayment(&orderdto.PaymentInput{Method: "COD"})
	if err != nil {
		t.Errorf("COD với payer/trx rỗng phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestValidatePayment_BkashThieuThongTinBiChan(t *testing.T) {
	err := ValidatePayment(&orderdto.PaymentInput{Method: "bkash"})
	if !errors.Is(err, common.ErrInvalidPayment) {
		t.Errorf("bkash thiếu payer/trx phải trả ErrInvalidPayment, nhận: %v", err)
	}

	err = ValidatePayment(&orderdto.PaymentInput{Method: "bkash", PayerNumber: "01712345678"})
	if !errors.Is(err, common.ErrInvalidPayment) {
		t.Errorf("bkash thiếu trxId phải trả ErrInvalidPayment, nhận: %v", err)
	}

	err = ValidatePayment(&orderdto.PaymentInput{Method: "nagad", TrxId: "TX123"})
	if !errors.Is(err, common.ErrInvalidPayment) {
		t.Errorf("nagad thiếu payerNumber phải trả ErrInvalidPayment, nhận: %v", err)
	}
}

func TestValidatePayment_BkashDayDuHopLe(t *testing.T) {
	err := ValidatePayment(&orderdto.PaymentInput{
		Method:      "bkash",
		PayerNumber: "01712345678",
		TrxId:       "TX9H2KQ",
	})
	if err != nil {
		t.Errorf("bkash đầy đủ thông tin phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestGeneratePublicId_DungDinhDang(t *testing.T) {
	noneExists := func(ctx context.Context, publicId string) (bool, error) { return false, nil }

	publicId, err := GeneratePublicId(context.Background(), "KS", 5, noneExists)
	if err != nil {
		t.Fatalf("GeneratePublicId lỗi: %v", err)
	}

	pattern := regexp.MustCompile(`^KS-[A-Z0-9]{6}$`)
	if !pattern.MatchString(publicId) {
		t.Errorf("publicId %q không đúng định dạng KS-XXXXXX", publicId)
	}
}

func TestGeneratePublicId_TranhMaDaTonTai(t *testing.T) {
	// Sinh N mã, rồi sinh tiếp N mã mới với store đã chứa N mã cũ:
	// mọi mã mới phải khác toàn bộ mã cũ.
	const n = 50
	taken := map[string]bool{}
	noneExists := func(ctx context.Context, publicId string) (bool, error) { return false, nil }
	for i := 0; i < n; i++ {
		publicId, err := GeneratePublicId(context.Background(), "KS", 5, noneExists)
		if err != nil {
			t.Fatalf("GeneratePublicId lỗi: %v", err)
		}
		taken[publicId] = true
	}

	existsInTaken := func(ctx context.Context, publicId string) (bool, error) {
		return taken[publicId], nil
	}
	for i := 0; i < n; i++ {
		publicId, err := GeneratePublicId(context.Background(), "KS", 5, existsInTaken)
		if err != nil {
			t.Fatalf("GeneratePublicId lỗi: %v", err)
		}
		if taken[publicId] {
			t.Fatalf("publicId %q trùng với mã đã tồn tại", publicId)
		}
	}
}

func TestGeneratePublicId_HetLuotThuTraLoiRoRang(t *testing.T) {
	attempts := 0
	alwaysExists := func(ctx context.Context, publicId string) (bool, error) {
		attempts++
		return true, nil
	}

	_, err := GeneratePublicId(context.Background(), "KS", 5, alwaysExists)
	if !errors.Is(err, common.ErrOrderIdExhausted) {
		t.Errorf("hết lượt thử phải trả ErrOrderIdExhausted, nhận: %v", err)
	}
	if attempts != 5 {
		t.Errorf("số lần thử = %d, muốn đúng 5", attempts)
	}
}

func TestGeneratePublicId_LoiStoreDuocTruyenRaNgoai(t *testing.T) {
	storeErr := errors.New("mongo down")
	failing := func(ctx context.Context, publicId string) (bool, error) {
		return false, storeErr
	}

	_, err := GeneratePublicId(context.Background(), "KS", 5, failing)
	if !errors.Is(err, storeErr) {
		t.Errorf("lỗi kiểm tra tồn tại phải được trả ra, nhận: %v", err)
	}
}
