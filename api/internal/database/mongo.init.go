package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"shop_catalog/api/internal/global"
	"shop_catalog/api/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureDatabaseAndCollections đảm bảo database và các collection khai báo
// trong global.MongoDB_ColNames đã tồn tại, tạo mới nếu thiếu.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	db := client.Database(global.MongoDB_ServerConfig.MongoDB_DBName)

	existing, err := db.ListCollectionNames(context.TODO(), bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	// Duyệt các field của struct tên collection để lấy danh sách cần có
	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		colName := v.Field(i).String()
		if colName == "" || existingSet[colName] {
			continue
		}
		if err := db.CreateCollection(context.TODO(), colName); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", colName, err)
		}
		logger.GetAppLogger().Infof("Collection %s created", colName)
	}
	return nil
}

// indexSpec mô tả một index được khai báo qua struct tag của model
type indexSpec struct {
	name   string
	keys   bson.D
	unique bool
	sparse bool
}

// CreateIndexes tạo index cho collection từ tag `index` trên struct model.
// Cú pháp tag: các cấu hình phân cách bởi ';', mỗi cấu hình gồm các phần
// phân cách bởi ','. Hỗ trợ: "text", "single" (kèm "order:-1"),
// "unique" (kèm "sparse"). Tên field lấy theo bson tag.
// Index đã tồn tại (trùng tên) được giữ nguyên.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	specs := collectIndexSpecs(reflect.TypeOf(model))
	if len(specs) == 0 {
		return nil
	}

	existingNames, err := listIndexNames(ctx, collection)
	if err != nil {
		return err
	}

	var indexModels []mongo.IndexModel
	for _, spec := range specs {
		if existingNames[spec.name] {
			continue
		}
		opts := options.Index().SetName(spec.name)
		if spec.unique {
			opts.SetUnique(true)
		}
		if spec.sparse {
			opts.SetSparse(true)
		}
		indexModels = append(indexModels, mongo.IndexModel{Keys: spec.keys, Options: opts})
	}
	if len(indexModels) == 0 {
		return nil
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes for %s: %w", collection.Name(), err)
	}
	logger.GetAppLogger().Infof("Created %d indexes for collection %s", len(indexModels), collection.Name())
	return nil
}

// collectIndexSpecs duyệt các field của model và parse tag index
func collectIndexSpecs(t reflect.Type) []indexSpec {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var specs []indexSpec
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		indexTag := field.Tag.Get("index")
		if indexTag == "" {
			continue
		}

		bsonKey := bsonFieldName(field)
		if bsonKey == "" || bsonKey == "-" {
			continue
		}

		for _, cfg := range strings.Split(indexTag, ";") {
			parts := strings.Split(cfg, ",")
			for j := range parts {
				parts[j] = strings.TrimSpace(parts[j])
			}

			switch parts[0] {
			case "text":
				specs = append(specs, indexSpec{
					name: bsonKey + "_text",
					keys: bson.D{{Key: bsonKey, Value: "text"}},
				})
			case "single":
				order := 1
				for _, p := range parts[1:] {
					if p == "order:-1" {
						order = -1
					}
				}
				specs = append(specs, indexSpec{
					name: bsonKey + "_single",
					keys: bson.D{{Key: bsonKey, Value: order}},
				})
			case "unique":
				spec := indexSpec{
					name:   bsonKey + "_unique",
					keys:   bson.D{{Key: bsonKey, Value: 1}},
					unique: true,
				}
				for _, p := range parts[1:] {
					if p == "sparse" {
						spec.sparse = true
					}
				}
				specs = append(specs, spec)
			}
		}
	}
	return specs
}

// bsonFieldName lấy tên field theo bson tag (phần trước dấu phẩy)
func bsonFieldName(field reflect.StructField) string {
	bsonTag := field.Tag.Get("bson")
	if bsonTag == "" {
		return strings.ToLower(field.Name)
	}
	return strings.Split(bsonTag, ",")[0]
}

// listIndexNames trả về tập tên các index hiện có của collection
func listIndexNames(ctx context.Context, collection *mongo.Collection) (map[string]bool, error) {
	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list indexes for %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	names := make(map[string]bool)
	for cursor.Next(ctx) {
		var idx bson.M
		if err := cursor.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names, nil
}
