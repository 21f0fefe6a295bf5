package catalog

import (
	"encoding/json"
	"strings"
)

// NormalizeTags はタグ入力を文字列スライスにそろえる。失敗はしない。
//   - 配列: 文字列要素をそのまま順番通りに返す
//   - 文字列: カンマ区切り、trimして空要素を除く（重複はそのまま）
//   - その他: 空スライス
func NormalizeTags(raw json.RawMessage) []string {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return []string{}
	}

	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return SplitTags(t)
	default:
		return []string{}
	}
}

// SplitTags は "a, b,,c" を ["a","b","c"] にする。
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
