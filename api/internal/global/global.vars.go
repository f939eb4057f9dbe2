// Package global giữ các biến dùng chung của toàn ứng dụng: cấu hình
// server, phiên MongoDB, tên collection và registry collection handle.
package global

import (
	"shop_catalog/api/config"
	"shop_catalog/api/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBCollectionNames chứa tên các collection MongoDB của hệ thống catalog
type DBCollectionNames struct {
	Admins     string
	Categories string
	Sizes      string
	Products   string
}

var (
	// Validate là validator dùng chung cho toàn bộ DTO
	Validate *validator.Validate

	// MongoDB_Session là phiên kết nối MongoDB của ứng dụng
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig là cấu hình server hiện hành
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_ColNames chứa tên các collection
	MongoDB_ColNames DBCollectionNames

	// RegistryCollections giữ các collection handle theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
