package request

import "strings"

// Language returns the caller's preferred language from the Accept-Language
// header, falling back to def. Only the primary tag of the first entry is
// used; quality factors are ignored.
func Language(headers map[string]string, def string) string {
	raw, ok := headers["accept-language"]
	if !ok || raw == "" {
		return def
	}

	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if i := strings.IndexByte(first, ';'); i >= 0 {
		first = first[:i]
	}
	if first == "" || first == "*" {
		return def
	}
	return first
}
