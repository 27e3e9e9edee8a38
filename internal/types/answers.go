package types

import "strings"

// AnswerMap holds the raw quiz submission: a sparse mapping of field name to
// answer value. Values are strings, string lists, or small records (size maps,
// budget ranges). A missing or empty field means "no signal", never an error.
type AnswerMap map[string]interface{}

// String returns the trimmed string value for key. The second return is false
// when the field is absent, not a string, or empty after trimming.
func (a AnswerMap) String(key string) (string, bool) {
	raw, ok := a[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// StringList returns the string values for key. Accepts []string, []interface{}
// of strings, or a single string. Absent or malformed fields yield nil.
func (a AnswerMap) StringList(key string) []string {
	raw, ok := a[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return nil
}

// HasSignal reports whether any field carries a meaningful value. An AnswerMap
// of only nils, empty strings and empty lists has no signal.
func (a AnswerMap) HasSignal() bool {
	for key := range a {
		if _, ok := a.String(key); ok {
			return true
		}
		if len(a.StringList(key)) > 0 {
			return true
		}
		if m, ok := a[key].(map[string]interface{}); ok && len(m) > 0 {
			return true
		}
	}
	return false
}
