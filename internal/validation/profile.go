package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ColorPattern цвет в формате #rgb или #rrggbb
var ColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// MaxDisplayNameLen максимальная длина отображаемого имени в символах
const MaxDisplayNameLen = 32

// ValidateDisplayName проверяет отображаемое имя. Пустое имя допустимо:
// сервер выдаст имя вида Guest-xxxx.
func ValidateDisplayName(name string) error {
	if !utf8.ValidString(name) {
		return fmt.Errorf("display name must be valid UTF-8")
	}

	if utf8.RuneCountInString(name) > MaxDisplayNameLen {
		return fmt.Errorf("display name must not exceed %d characters", MaxDisplayNameLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("display name must not contain control characters")
		}
	}

	return nil
}

// SanitizeDisplayName приводит имя от клиента к допустимому виду:
// убирает управляющие символы и пробелы по краям, обрезает до MaxDisplayNameLen.
func SanitizeDisplayName(name string) string {
	name = strings.ToValidUTF8(name, "")
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if utf8.RuneCountInString(name) > MaxDisplayNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxDisplayNameLen]))
	}
	return name
}

// ValidateColor проверяет цвет штриха. Пустой цвет означает цвет автора.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !ColorPattern.MatchString(color) {
		return fmt.Errorf("color %q must be in #rgb or #rrggbb format", color)
	}
	return nil
}
