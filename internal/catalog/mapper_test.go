package catalog_test

import (
	"encoding/json"
	"testing"

	"shopapi/internal/catalog"
	"shopapi/internal/domain/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDBShape_UsesFirstVariance(t *testing.T) {
	p := mustPayload(t, `{
		"productname": "Mug",
		"category": "Kitchen",
		"brand": "Clay",
		"description": "large",
		"features": ["ceramic"],
		"variances": [
			{"color":"white","image":["w.png","w2.png"],"stock":"4","price":"15.5"},
			{"color":"black","price":20}
		]
	}`)

	doc := catalog.ToDBShape(p)
	assert.Equal(t, "Mug", doc.Name)
	assert.Equal(t, "Kitchen", doc.Category)
	assert.Equal(t, "Clay", doc.Brand)
	assert.Equal(t, "large", doc.Description)
	assert.Equal(t, pq.StringArray{"ceramic"}, doc.Tags)
	assert.Equal(t, "white", doc.Color)
	assert.Equal(t, "w.png", doc.Image)
	assert.Equal(t, int64(4), doc.Stock)
	assert.Equal(t, 15.5, doc.Price)
}

func TestToDBShape_LegacyFlatFields(t *testing.T) {
	p := mustPayload(t, `{
		"product_name": "Cap",
		"product_category": "Hats",
		"product_tag": "wool,winter",
		"product_color": "grey",
		"product_price": 12,
		"product_stock": 3,
		"product_image": "cap.png"
	}`)

	doc := catalog.ToDBShape(p)
	assert.Equal(t, "Cap", doc.Name)
	assert.Equal(t, "Hats", doc.Category)
	assert.Equal(t, pq.StringArray{"wool", "winter"}, doc.Tags)
	assert.Equal(t, "grey", doc.Color)
	assert.Equal(t, 12.0, doc.Price)
	assert.Equal(t, int64(3), doc.Stock)
	assert.Equal(t, "cap.png", doc.Image)
}

func TestToUIShape_Defaults(t *testing.T) {
	ui := catalog.ToUIShape(model.Product{ID: "65a000000000000000000001", Name: "Mug"})

	assert.Equal(t, "65a000000000000000000001", ui.ID)
	assert.Equal(t, "", ui.ModelName)
	assert.Equal(t, "", ui.WarrantyInfo)
	assert.NotNil(t, ui.RelatedProduct)
	assert.Empty(t, ui.RelatedProduct)
	assert.NotNil(t, ui.Features)
	assert.Empty(t, ui.Features)
	require.Len(t, ui.Variances, 1)

	b, err := json.Marshal(ui)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"relatedproduct":[]`)
	assert.Contains(t, string(b), `"features":[]`)
}

func TestUIRoundTrip_PreservesRepresentableFields(t *testing.T) {
	in := catalog.UIProduct{
		Category:       "Tops",
		ProductName:    "Shirt",
		Description:    "linen",
		Brand:          "Acme",
		ModelName:      "S-1",
		WarrantyInfo:   "1y",
		RelatedProduct: []string{"Pants"},
		Features:       []string{"linen", "summer"},
		Variances: []catalog.UIVariance{
			{Color: "red", Image: "r.png", Stock: 2, Price: 10},
			{Color: "blue", Image: "b.png", Stock: 5, Price: 8},
		},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	p := mustPayload(t, string(b))

	out := catalog.ToUIShape(catalog.ToDBShape(p))

	assert.Equal(t, in.ProductName, out.ProductName)
	assert.Equal(t, in.Category, out.Category)
	assert.Equal(t, in.Description, out.Description)
	assert.Equal(t, in.Brand, out.Brand)
	assert.Equal(t, in.Features, out.Features)
	assert.Equal(t, []catalog.UIVariance{in.Variances[0]}, out.Variances)

	assert.Equal(t, "", out.ModelName)
	assert.Equal(t, "", out.WarrantyInfo)
	assert.Equal(t, []string{}, out.RelatedProduct)
}

func TestToDBPatch_OnlyPresentKeys(t *testing.T) {
	patch := catalog.ToDBPatch(mustPayload(t, `{"product_price": 0, "brand": "New"}`))

	require.NotNil(t, patch.Price)
	assert.Equal(t, 0.0, *patch.Price)
	require.NotNil(t, patch.Brand)
	assert.Equal(t, "New", *patch.Brand)
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Category)
	assert.Nil(t, patch.Tags)
	assert.Nil(t, patch.Stock)
	assert.Nil(t, patch.Color)
	assert.False(t, patch.IsEmpty())
}

func TestToDBPatch_FromVariances(t *testing.T) {
	patch := catalog.ToDBPatch(mustPayload(t, `{"variances":[{"color":"green","stock":7}], "features": "a, b"}`))

	require.NotNil(t, patch.Color)
	assert.Equal(t, "green", *patch.Color)
	require.NotNil(t, patch.Stock)
	assert.Equal(t, int64(7), *patch.Stock)
	assert.Nil(t, patch.Price)
	assert.Nil(t, patch.Image)
	require.NotNil(t, patch.Tags)
	assert.Equal(t, []string{"a", "b"}, *patch.Tags)
}

func TestToDBPatch_EmptyPayload(t *testing.T) {
	assert.True(t, catalog.ToDBPatch(catalog.Payload{}).IsEmpty())
	assert.True(t, catalog.ToDBPatch(mustPayload(t, `{"unknown": 1, "productname": null}`)).IsEmpty())
}
