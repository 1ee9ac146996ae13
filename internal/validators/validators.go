package validators

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/denmor86/ya-orderdesk/internal/models"
)

// RequiredFields - обязательные поля формы заказа
var RequiredFields = []string{"name", "email", "product"}

// NormalizeOrder обрезает пробелы во всех полях заказа
func NormalizeOrder(order models.OrderRequest) models.OrderRequest {
	return models.OrderRequest{
		Name:    strings.TrimSpace(order.Name),
		Email:   strings.TrimSpace(order.Email),
		Product: strings.TrimSpace(order.Product),
		Phone:   strings.TrimSpace(order.Phone),
		Comment: strings.TrimSpace(order.Comment),
	}
}

// MissingFields возвращает имена обязательных полей, оставшихся пустыми.
// Ожидает уже нормализованный заказ.
func MissingFields(order models.OrderRequest) []string {
	values := []string{order.Name, order.Email, order.Product}
	var missing []string
	for i, value := range values {
		if value == "" {
			missing = append(missing, RequiredFields[i])
		}
	}
	return missing
}

// InvalidFields возвращает имена полей, которые БД не примет как текст:
// невалидный UTF-8 или нулевой байт
func InvalidFields(order models.OrderRequest) []string {
	fields := []struct {
		name  string
		value string
	}{
		{"name", order.Name},
		{"email", order.Email},
		{"product", order.Product},
		{"phone", order.Phone},
		{"comment", order.Comment},
	}
	var invalid []string
	for _, field := range fields {
		if !utf8.ValidString(field.value) || strings.ContainsRune(field.value, 0) {
			invalid = append(invalid, field.name)
		}
	}
	return invalid
}

// ParseOrderID проверяет, что идентификатор - положительное целое число
func ParseOrderID(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
