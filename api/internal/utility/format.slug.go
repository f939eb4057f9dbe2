package utility

import (
	"regexp"
	"strings"
)

// Độ dài tối đa của code sinh ra theo từng loại thực thể
const (
	CodeMaxLenCategory = 15
	CodeMaxLenSize     = 10
	CodeMaxLenProduct  = 20
)

var (
	nonAlphaNumRegex   = regexp.MustCompile(`[^A-Z0-9]`)
	slugInvalidRegex   = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRunRegex = regexp.MustCompile(`\s+`)
	hyphenRunRegex     = regexp.MustCompile(`-+`)
)

// GenerateEntityCode sinh code ngắn gọn từ tên hiển thị: viết hoa toàn bộ,
// loại bỏ ký tự không phải chữ/số, cắt theo độ dài tối đa của từng loại
// thực thể. Hàm thuần, cùng một tên luôn cho cùng một code.
// Tên không chứa ký tự hợp lệ nào sẽ cho chuỗi rỗng; chuỗi rỗng được xem
// là "không có code" và không tham gia ràng buộc unique.
func GenerateEntityCode(name string, maxLen int) string {
	code := strings.ToUpper(name)
	code = nonAlphaNumRegex.ReplaceAllString(code, "")
	if maxLen > 0 && len(code) > maxLen {
		code = code[:maxLen]
	}
	return code
}

// GenerateSlug sinh slug URL-safe từ tên hiển thị: viết thường toàn bộ,
// loại bỏ ký tự ngoài [a-z0-9\s-], đổi cụm khoảng trắng thành một dấu
// gạch ngang, gộp các dấu gạch ngang liên tiếp và cắt gạch ngang ở hai đầu.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalidRegex.ReplaceAllString(slug, "")
	slug = whitespaceRunRegex.ReplaceAllString(slug, "-")
	slug = hyphenRunRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}
