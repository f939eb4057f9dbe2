// Package utility - Test sinh code/slug từ tên hiển thị.
package utility

import (
	"testing"
)

func TestGenerateEntityCode_Shape(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"tên thường", "Running Shoes", CodeMaxLenProduct, "RUNNINGSHOES"},
		{"có ký tự đặc biệt", "Nike Air-Max 90!", CodeMaxLenProduct, "NIKEAIRMAX90"},
		{"cắt theo độ dài Category", "Professional Running Equipment", CodeMaxLenCategory, "PROFESSIONALRUN"},
		{"cắt theo độ dài Size", "Extra Extra Large", CodeMaxLenSize, "EXTRAEXTRA"},
		{"toàn ký tự đặc biệt", "!!! --- ###", CodeMaxLenSize, ""},
		{"chuỗi rỗng", "", CodeMaxLenCategory, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateEntityCode(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("GenerateEntityCode(%q, %d) = %q, muốn %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestGenerateSlug_Shape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tên thường", "Running Shoes", "running-shoes"},
		{"ký tự đặc biệt bị loại", "Nike Air-Max 90!", "nike-air-max-90"},
		{"nhiều khoảng trắng", "  Giay   The Thao  ", "giay-the-thao"},
		{"gạch ngang liên tiếp", "a---b - c", "a-b-c"},
		{"gạch ngang hai đầu", "-hello world-", "hello-world"},
		{"chuỗi rỗng", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlug(tt.input)
			if got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, muốn %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	name := "Giay Chay Bo Nam 2024"
	for i := 0; i < 3; i++ {
		if got := GenerateSlug(name); got != GenerateSlug(name) {
			t.Fatalf("GenerateSlug không ổn định giữa các lần gọi: %q", got)
		}
		if got := GenerateEntityCode(name, CodeMaxLenProduct); got != GenerateEntityCode(name, CodeMaxLenProduct) {
			t.Fatalf("GenerateEntityCode không ổn định giữa các lần gọi: %q", got)
		}
	}
}
