package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxServerPathLen максимальная длина пути в репозитории
const MaxServerPathLen = 259

// invalidServerPathChars символы, запрещенные в пути репозитория
const invalidServerPathChars = `"<>|:*?`

// OwnerPattern определяет допустимый формат владельца shelveset'а
// Латинские буквы, цифры, нижнее подчеркивание, точка, дефис, DOMAIN\user или user@domain
var OwnerPattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+([\\@][a-zA-Z0-9_.\-]+)?$`)

// ExtensionPattern расширение файла без точки
var ExtensionPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,32}$`)

// ValidateServerPath проверяет путь в репозитории: "$/..." без запрещенных символов.
func ValidateServerPath(path string) error {
	if path == "" {
		return fmt.Errorf("server path cannot be empty")
	}

	if path != "$" && !strings.HasPrefix(path, "$/") {
		return fmt.Errorf("server path must start with $/: %q", path)
	}

	if len(path) > MaxServerPathLen {
		return fmt.Errorf("server path must not exceed %d characters", MaxServerPathLen)
	}

	if i := strings.IndexAny(path, invalidServerPathChars); i != -1 {
		return fmt.Errorf("server path contains invalid character %q", path[i])
	}

	if strings.Contains(path, "//") {
		return fmt.Errorf("server path contains empty segment: %q", path)
	}

	return nil
}

// ValidateOptionalServerPath разрешает пустой путь (элемент отсутствует на сервере)
func ValidateOptionalServerPath(path string) error {
	if path == "" {
		return nil
	}
	return ValidateServerPath(path)
}

// ValidateOwner проверяет имя владельца shelveset'а
func ValidateOwner(owner string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}

	if !OwnerPattern.MatchString(owner) {
		return fmt.Errorf("owner can only contain letters, numbers, '_', '.', '-' and an optional domain part")
	}

	return nil
}

// ValidateExtension проверяет расширение файла, ведущая точка допускается
func ValidateExtension(ext string) error {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return fmt.Errorf("extension cannot be empty")
	}

	if !ExtensionPattern.MatchString(ext) {
		return fmt.Errorf("extension can only contain letters (a-z, A-Z), numbers (0-9), '_' and '-'")
	}

	return nil
}
