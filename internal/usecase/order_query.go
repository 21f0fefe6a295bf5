package usecase

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	repo "shopapi/internal/repository"
)

const (
	defaultOrderLimit = 10
	maxOrderLimit     = 50
)

// 受け付ける日付形式。タイムゾーンが無いものはUTC。
var orderDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// BuildOrderQuery はクエリ文字列から注文履歴の検索条件を作る。失敗はしない。
//   - limit: 無し/数値でない → 10、それ以外は [1,50] に丸める
//   - page:  無し/数値でない → 1、1未満は1
//   - from/to: 読めない日付は黙って捨てる
//   - sort: createdAt_desc（既定） / createdAt_asc
func BuildOrderQuery(userID string, params url.Values) repo.OrderHistoryQuery {
	f := repo.OrderHistoryFilter{UserID: userID}

	if status := strings.TrimSpace(params.Get("status")); status != "" {
		f.Status = status
	}
	if from, ok := parseOrderDate(params.Get("from")); ok {
		f.From = &from
	}
	if to, ok := parseOrderDate(params.Get("to")); ok {
		f.To = &to
	}

	return repo.OrderHistoryQuery{
		Filter: f,
		Sort:   parseOrderSort(params.Get("sort")),
		Page:   parsePage(params.Get("page")),
		Limit:  parseLimit(params.Get("limit")),
	}
}

func parseLimit(s string) int {
	n, ok := parseNumber(s)
	if !ok {
		return defaultOrderLimit
	}
	if n < 1 {
		return 1
	}
	if n > maxOrderLimit {
		return maxOrderLimit
	}
	return n
}

func parsePage(s string) int {
	n, ok := parseNumber(s)
	if !ok || n < 1 {
		return 1
	}
	return n
}

// "2.7" のような小数は切り捨てる
func parseNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, true
	case f < math.MinInt32:
		return math.MinInt32, true
	}
	return int(f), true
}

func parseOrderDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseOrderSort(s string) repo.OrderSort {
	switch repo.OrderSort(s) {
	case repo.OrderSortCreatedAsc:
		return repo.OrderSortCreatedAsc
	default:
		return repo.OrderSortCreatedDesc
	}
}
