package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi một struct (có bson tag) thành map[string]interface{}
// thông qua bson Marshal/Unmarshal, giữ đúng tên field theo bson tag.
// Dùng khi cần thao tác dữ liệu dạng map trước khi ghi vào MongoDB.
func ToMap(s interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}

	var stringInterfaceMap map[string]interface{}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
