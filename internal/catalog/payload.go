// Package catalog は管理画面/旧クライアントから届く商品JSONを
// フラットな商品レコードに整形する（その逆も）。
package catalog

import (
	"bytes"
	"encoding/json"
)

// Payload はキーの揺れを許容するため生JSONのまま保持する。
type Payload map[string]json.RawMessage

// Field は論理フィールド。
type Field int

const (
	FieldName Field = iota
	FieldBrand
	FieldCategory
	FieldDescription
	FieldTags
	FieldColor
	FieldPrice
	FieldStock
	FieldImage
	FieldVariances
)

// 論理フィールドごとに受け付けるキー。先に書いたものが優先。
// バリアント項目は product_ 付きが優先、なければ短い名前。
var aliases = map[Field][]string{
	FieldName:        {"productname", "product_name"},
	FieldBrand:       {"brand", "product_brand"},
	FieldCategory:    {"category", "product_category"},
	FieldDescription: {"description", "product_description"},
	FieldTags:        {"features", "product_tag", "tags", "productTags"},
	FieldColor:       {"product_color", "color"},
	FieldPrice:       {"product_price", "price"},
	FieldStock:       {"product_stock", "stock"},
	FieldImage:       {"product_image", "image"},
	FieldVariances:   {"variances", "variants"},
}

// Aliases は f のキー一覧（優先順）を返す。
func Aliases(f Field) []string {
	return append([]string(nil), aliases[f]...)
}

// Lookup は最初に見つかった null でない値を返す。
func (p Payload) Lookup(f Field) (json.RawMessage, bool) {
	for _, key := range aliases[f] {
		raw, ok := p[key]
		if !ok || isNull(raw) {
			continue
		}
		return raw, true
	}
	return nil, false
}

func (p Payload) Has(f Field) bool {
	_, ok := p.Lookup(f)
	return ok
}

func (p Payload) Text(f Field) string {
	raw, ok := p.Lookup(f)
	if !ok {
		return ""
	}
	return coerceText(raw)
}

// Price は0以上の数値。解釈できなければ0。
func (p Payload) Price() float64 {
	raw, ok := p.Lookup(FieldPrice)
	if !ok {
		return 0
	}
	return coerceNumber(raw)
}

// Stock は0以上の整数。小数は切り捨て。
func (p Payload) Stock() int64 {
	raw, ok := p.Lookup(FieldStock)
	if !ok {
		return 0
	}
	return coerceCount(raw)
}

func (p Payload) Image() string {
	raw, ok := p.Lookup(FieldImage)
	if !ok {
		return ""
	}
	return coerceImage(raw)
}

func (p Payload) Tags() []string {
	raw, ok := p.Lookup(FieldTags)
	if !ok {
		return []string{}
	}
	return NormalizeTags(raw)
}

// Variants は variances 配列の各要素を返す。
// オブジェクト以外の要素は空の Payload になる（抽出時に捨てられる）。
func (p Payload) Variants() []Payload {
	raw, ok := p.Lookup(FieldVariances)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]Payload, 0, len(items))
	for _, item := range items {
		var v Payload
		if err := json.Unmarshal(item, &v); err != nil || v == nil {
			v = Payload{}
		}
		out = append(out, v)
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
