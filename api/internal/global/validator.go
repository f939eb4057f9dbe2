package global

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("exists", validateExists)
}

// validateNoXSS kiểm tra chuỗi không chứa các pattern XSS phổ biến
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateExists kiểm tra ObjectID tồn tại trong collection.
// Format: validate:"exists=<collection_name>"
func validateExists(fl validator.FieldLevel) bool {
	collectionName := fl.Param()
	if collectionName == "" {
		return false
	}

	var objID primitive.ObjectID
	switch v := fl.Field().Interface().(type) {
	case string:
		if v == "" {
			return true // rỗng = optional, bỏ qua khi có omitempty
		}
		var err error
		objID, err = primitive.ObjectIDFromHex(v)
		if err != nil {
			return false
		}
	case primitive.ObjectID:
		if v == primitive.NilObjectID {
			return true
		}
		objID = v
	case *primitive.ObjectID:
		if v == nil {
			return true
		}
		objID = *v
	default:
		return false
	}

	collection, exist := RegistryCollections.Get(collectionName)
	if !exist {
		return false
	}

	count, err := collection.CountDocuments(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return false
	}
	return count > 0
}
