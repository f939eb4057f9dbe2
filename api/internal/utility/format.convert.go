// Package utility chứa các hàm tiện ích dùng chung: chuyển đổi ObjectID,
// chuyển đổi struct sang map bson và sinh code/slug từ tên hiển thị.
package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi hex thành ObjectID.
// Trả về NilObjectID nếu chuỗi không đúng định dạng.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// StringArray2ObjectIDArray chuyển đổi mảng chuỗi hex thành mảng ObjectID
func StringArray2ObjectIDArray(ids []string) []primitive.ObjectID {
	var objectIDs []primitive.ObjectID
	for _, id := range ids {
		objectIDs = append(objectIDs, String2ObjectID(id))
	}
	return objectIDs
}
