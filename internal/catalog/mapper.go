package catalog

import (
	"shopapi/internal/domain/model"
)

// 管理画面が扱う商品の形
type UIProduct struct {
	ID             string       `json:"id"`
	Category       string       `json:"category"`
	ProductName    string       `json:"productname"`
	Description    string       `json:"description"`
	Brand          string       `json:"brand"`
	ModelName      string       `json:"modelname"`
	WarrantyInfo   string       `json:"warrantyinfo"`
	RelatedProduct []string     `json:"relatedproduct"`
	Features       []string     `json:"features"`
	Variances      []UIVariance `json:"variances"`
}

type UIVariance struct {
	Color string  `json:"color"`
	Image string  `json:"image"`
	Stock int64   `json:"stock"`
	Price float64 `json:"price"`
}

// ToDBShape はUI形を1レコードにする。
// 管理画面は代表の1バリアントだけを編集するので variances[0] だけを見る。
// variances が無い場合は旧形式のトップレベル項目を使う。
func ToDBShape(p Payload) model.Product {
	return SharedFieldsFrom(p).Record(VariantFrom(variantSource(p)))
}

// ToDBPatch は送られてきた項目だけを持つ部分更新を作る。
func ToDBPatch(p Payload) model.ProductPatch {
	var patch model.ProductPatch

	if p.Has(FieldName) {
		patch.Name = strPtr(SharedFieldsFrom(p).Name)
	}
	if p.Has(FieldBrand) {
		patch.Brand = strPtr(p.Text(FieldBrand))
	}
	if p.Has(FieldCategory) {
		patch.Category = strPtr(SharedFieldsFrom(p).Category)
	}
	if p.Has(FieldDescription) {
		patch.Description = strPtr(p.Text(FieldDescription))
	}
	if p.Has(FieldTags) {
		tags := p.Tags()
		patch.Tags = &tags
	}

	src := variantSource(p)
	if src.Has(FieldColor) {
		patch.Color = strPtr(src.Text(FieldColor))
	}
	if src.Has(FieldPrice) {
		price := src.Price()
		patch.Price = &price
	}
	if src.Has(FieldStock) {
		stock := src.Stock()
		patch.Stock = &stock
	}
	if src.Has(FieldImage) {
		patch.Image = strPtr(src.Image())
	}

	return patch
}

// ToUIShape はフラットなレコードを1要素の variances に包む。
// modelname / warrantyinfo / relatedproduct はDBに無いので常に初期値。
func ToUIShape(doc model.Product) UIProduct {
	features := []string{}
	if doc.Tags != nil {
		features = append(features, doc.Tags...)
	}
	return UIProduct{
		ID:             doc.ID,
		Category:       doc.Category,
		ProductName:    doc.Name,
		Description:    doc.Description,
		Brand:          doc.Brand,
		ModelName:      "",
		WarrantyInfo:   "",
		RelatedProduct: []string{},
		Features:       features,
		Variances: []UIVariance{{
			Color: doc.Color,
			Image: doc.Image,
			Stock: doc.Stock,
			Price: doc.Price,
		}},
	}
}

func ToUIShapes(docs []model.Product) []UIProduct {
	out := make([]UIProduct, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToUIShape(d))
	}
	return out
}

func variantSource(p Payload) Payload {
	if vs := p.Variants(); len(vs) > 0 {
		return vs[0]
	}
	return p
}

func strPtr(s string) *string {
	return &s
}
