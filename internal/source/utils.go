package source

import (
	"slices"
)

// NormalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый срез и флаг, были ли замены.
func NormalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

// RemoveBOM strips a leading UTF-8 byte order mark, if present.
func RemoveBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// IsWhitespace reports whether the string is non-empty and consists only of
// spaces, tabs and line terminators. Diagnostics use it to decide whether an
// expected token name needs quoting to stay visible.
func IsWhitespace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}
