// Package registry cung cấp một registry generic thread-safe dùng để
// quản lý các tài nguyên đặt tên trong hệ thống (collection MongoDB,
// database handle, ...).
package registry

import (
	"fmt"
	"sync"

	"shop_catalog/api/internal/common"
)

// Registry quản lý tập hợp item theo tên, an toàn khi truy cập đồng thời
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo một registry mới
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký item với tên cho trước. Trả về true nếu item là mới,
// false nếu tên đã tồn tại (item cũ được giữ nguyên).
func (r *Registry[T]) Register(name string, item T) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("tên item không được rỗng: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return false, nil
	}
	r.items[name] = item
	return true, nil
}

// Get lấy item theo tên. Trả về false nếu không tồn tại.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// Update ghi đè item theo tên, tạo mới nếu chưa có
func (r *Registry[T]) Update(name string, item T) error {
	if name == "" {
		return fmt.Errorf("tên item không được rỗng: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[name] = item
	return nil
}

// Names trả về danh sách tên các item đã đăng ký
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear xóa item theo tên
func (r *Registry[T]) Clear(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, name)
}

// ClearAll xóa toàn bộ item trong registry
func (r *Registry[T]) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]T)
}
