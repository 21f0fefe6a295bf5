package catalog

import (
	"strings"

	"shopapi/internal/domain/model"

	"github.com/lib/pq"
)

// 全バリアントで共通の項目
type SharedFields struct {
	Name        string
	Brand       string
	Category    string
	Description string
	Tags        []string
	UserID      string
}

// SharedFieldsFrom は商品レベルの項目をエイリアス表から読む。
func SharedFieldsFrom(p Payload) SharedFields {
	return SharedFields{
		Name:        strings.TrimSpace(p.Text(FieldName)),
		Brand:       p.Text(FieldBrand),
		Category:    strings.TrimSpace(p.Text(FieldCategory)),
		Description: p.Text(FieldDescription),
		Tags:        p.Tags(),
	}
}

// 1つの色/価格/在庫/画像の組み合わせ
type Variant struct {
	Color string
	Price float64
	Stock int64
	Image string
}

func VariantFrom(p Payload) Variant {
	return Variant{
		Color: p.Text(FieldColor),
		Price: p.Price(),
		Stock: p.Stock(),
		Image: p.Image(),
	}
}

// 色・価格・在庫・画像がすべてゼロ値ならノイズとして扱う。
func (v Variant) IsEmpty() bool {
	return v.Color == "" && v.Price == 0 && v.Stock == 0 && v.Image == ""
}

// Record は共通項目とバリアントからフラットなレコードを作る。
func (s SharedFields) Record(v Variant) model.Product {
	return model.Product{
		Name:        s.Name,
		Brand:       s.Brand,
		Category:    s.Category,
		Description: s.Description,
		Tags:        append(pq.StringArray{}, s.Tags...),
		Color:       v.Color,
		Price:       v.Price,
		Stock:       v.Stock,
		Image:       v.Image,
		UserID:      s.UserID,
	}
}

// ExtractVariantRecords はバリアントごとに1レコードを返す。
// 空のバリアントは捨てる。結果が空ならフォールバックは呼び出し側の責任。
func ExtractVariantRecords(shared SharedFields, variants []Payload) []model.Product {
	out := make([]model.Product, 0, len(variants))
	for _, vp := range variants {
		v := VariantFrom(vp)
		if v.IsEmpty() {
			continue
		}
		out = append(out, shared.Record(v))
	}
	return out
}
