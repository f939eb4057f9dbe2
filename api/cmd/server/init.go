package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"shop_catalog/api/config"
	authmodels "shop_catalog/api/internal/api/auth/models"
	catalogmodels "shop_catalog/api/internal/api/catalog/models"
	"shop_catalog/api/internal/database"
	"shop_catalog/api/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Admins = "admins"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Sizes = "sizes"
	global.MongoDB_ColNames.Products = "products"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection từ tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Admins), authmodels.Admin{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Sizes), catalogmodels.Size{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
}
