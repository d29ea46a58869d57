package services

import "strings"

// NormalizePhone — убираем ведущий "+": номер без плюса служит ключом
// и username пользователя.
func NormalizePhone(phone string) string {
	return strings.TrimPrefix(strings.TrimSpace(phone), "+")
}
