package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIs_SentinelWrapDuocNhanDien(t *testing.T) {
	wrapped := fmt.Errorf("không tìm thấy collection: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("errors.Is phải nhận diện ErrNotFound khi bị wrap")
	}
	if errors.Is(wrapped, ErrDuplicate) {
		t.Error("errors.Is không được nhầm ErrNotFound với ErrDuplicate")
	}
}

func TestConvertMongoError_GiuNguyenErrNotFound(t *testing.T) {
	// Not-found phải xuyên qua không đổi để handler trả 404 thay vì 5xx
	got := ConvertMongoError(ErrNotFound)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ConvertMongoError(ErrNotFound) = %v, phải giữ nguyên ErrNotFound", got)
	}

	wrapped := fmt.Errorf("tra cứu đơn: %w", ErrNotFound)
	got = ConvertMongoError(wrapped)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ConvertMongoError phải giữ ErrNotFound bị wrap, nhận: %v", got)
	}
}

func TestConvertMongoError_NilTraNil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}
}

func TestConvertMongoError_CommandErrorTheoDaiMa(t *testing.T) {
	got := ConvertMongoError(mongo.CommandError{Code: 150})
	if !errors.Is(got, ErrMongoConnection) {
		t.Errorf("mã 150 phải map sang ErrMongoConnection, nhận: %v", got)
	}

	got = ConvertMongoError(mongo.CommandError{Code: 250})
	if !errors.Is(got, ErrMongoAuth) {
		t.Errorf("mã 250 phải map sang ErrMongoAuth, nhận: %v", got)
	}
}

func TestErrorStatusCode(t *testing.T) {
	var e *Error
	if !errors.As(ErrNotFound, &e) {
		t.Fatal("ErrNotFound phải là *Error")
	}
	if e.StatusCode != StatusNotFound {
		t.Errorf("ErrNotFound.StatusCode = %d, muốn %d", e.StatusCode, StatusNotFound)
	}

	if !errors.As(ErrOrderIdExhausted, &e) {
		t.Fatal("ErrOrderIdExhausted phải là *Error")
	}
	if e.StatusCode != StatusServiceUnavailable {
		t.Errorf("ErrOrderIdExhausted.StatusCode = %d, muốn %d", e.StatusCode, StatusServiceUnavailable)
	}
}
