package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_KhongTimThay(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải chuyển thành ErrNotFound, nhận được %v", err)
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Lỗi chuyển đổi phải là *Error, nhận được %T", err)
	}
	if appErr.StatusCode != StatusNotFound {
		t.Errorf("ErrNotFound phải trả 404, nhận được %d", appErr.StatusCode)
	}
}

func TestConvertMongoError_TrungUniqueIndex(t *testing.T) {
	// Lỗi write exception mã 11000 từ unique index phải được phân loại lại
	// thành lỗi trùng tên 409, không bao giờ là lỗi chung chung
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error collection: shop_catalog.categories index: code_unique"},
		},
	}

	err := ConvertMongoError(dupErr)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Lỗi duplicate key phải chuyển thành ErrDuplicateName, nhận được %v", err)
	}

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Lỗi chuyển đổi phải là *Error, nhận được %T", err)
	}
	if appErr.StatusCode != StatusConflict {
		t.Errorf("Lỗi trùng tên phải trả 409, nhận được %d", appErr.StatusCode)
	}
}

func TestConvertMongoError_LenhTrungMa(t *testing.T) {
	err := ConvertMongoError(mongo.CommandError{Code: 11000, Message: "duplicate key"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("CommandError 11000 phải chuyển thành ErrDuplicateName, nhận được %v", err)
	}
}

func TestConvertMongoError_GiuNguyenLoiDaChuanHoa(t *testing.T) {
	err := ConvertMongoError(ErrDuplicateName)
	if err != ErrDuplicateName {
		t.Errorf("Lỗi đã chuẩn hóa phải được giữ nguyên, nhận được %v", err)
	}

	custom := NewError(ErrCodeBusinessState, "Giá khuyến mãi phải nhỏ hơn giá gốc", StatusBadRequest, nil)
	if got := ConvertMongoError(custom); got != custom {
		t.Errorf("Lỗi nghiệp vụ phải được giữ nguyên, nhận được %v", got)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Errorf("Nil phải trả về nil, nhận được %v", err)
	}
}

func TestError_Is(t *testing.T) {
	khac := NewError(ErrCodeDatabaseDuplicate, "Mã khác thông điệp nhưng cùng mã lỗi", StatusConflict, nil)
	if !errors.Is(khac, ErrDuplicateName) {
		t.Error("Hai lỗi cùng mã phải được errors.Is coi là một")
	}
	if errors.Is(ErrNotFound, ErrDuplicateName) {
		t.Error("Hai lỗi khác mã không được coi là một")
	}
}
