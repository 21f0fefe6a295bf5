package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// 文字列はそのまま、数値・真偽値はリテラル表記、それ以外は空文字。
func coerceText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(trimmed)
	}
}

func coerceNumber(raw json.RawMessage) float64 {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		n = f
	case bool:
		if t {
			n = 1
		}
	default:
		return 0
	}
	return nonNegative(n)
}

func coerceCount(raw json.RawMessage) int64 {
	n := math.Trunc(coerceNumber(raw))
	// float64(MaxInt64) は 2^63 に丸まるので >= で比較する
	if n >= math.MaxInt64 {
		return 0
	}
	return int64(n)
}

// 画像は1枚だけ持つ。配列なら先頭。
func coerceImage(raw json.RawMessage) string {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		if len(t) == 0 {
			return ""
		}
		if s, ok := t[0].(string); ok {
			return s
		}
	}
	return ""
}

func nonNegative(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
