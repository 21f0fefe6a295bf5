package catalog

import (
	"sort"

	"shopapi/internal/domain/model"
)

// GroupByName は商品名ごとに最安レコードを1件選んで集計する。
// 同額なら _id が小さい（先に作られた）方。結果は minPrice 昇順、同額は _id 昇順。
func GroupByName(records []model.Product) []model.ProductSummary {
	cheapest := make(map[string]model.Product, len(records))
	for _, r := range records {
		cur, ok := cheapest[r.Name]
		if !ok || cheaper(r, cur) {
			cheapest[r.Name] = r
		}
	}

	out := make([]model.ProductSummary, 0, len(cheapest))
	for _, r := range cheapest {
		tags := []string{}
		if r.Tags != nil {
			tags = append(tags, r.Tags...)
		}
		out = append(out, model.ProductSummary{
			ProductID: r.ID,
			Name:      r.Name,
			Brand:     r.Brand,
			Category:  r.Category,
			Tags:      tags,
			Image:     r.Image,
			MinPrice:  r.Price,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MinPrice != out[j].MinPrice {
			return out[i].MinPrice < out[j].MinPrice
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}

func cheaper(a, b model.Product) bool {
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	return a.ID < b.ID
}
