package storecfg

import (
	"inventory-service/internal/model"
)

// businessTypes is the static catalog of store templates. The order here is
// the order presented to the owner.
var businessTypes = []model.BusinessType{
	{
		ID:                 "clothing",
		Name:               "Clothing Store",
		DefaultCategories:  []string{"Shirt", "T-shirt", "Pant", "Jeans", "Dress", "Jacket", "Skirt", "Blouse"},
		UsesSizes:          true,
		DefaultSizeOptions: []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL", "Free Size"},
		SuggestedAttributes: []model.AttributeDef{
			{Name: "Color", Type: model.AttributeSelect, Options: []string{"Black", "White", "Red", "Blue", "Green", "Yellow", "Pink", "Purple"}},
			{Name: "Material", Type: model.AttributeSelect, Options: []string{"Cotton", "Polyester", "Silk", "Wool", "Linen", "Denim"}},
		},
	},
	{
		ID:                "food",
		Name:              "Food Store / Restaurant",
		DefaultCategories: []string{"Appetizers", "Main Course", "Desserts", "Beverages", "Snacks", "Dairy", "Fruits", "Vegetables"},
		SuggestedAttributes: []model.AttributeDef{
			{Name: "Expiry Date", Type: model.AttributeText},
			{Name: "Weight/Volume", Type: model.AttributeText},
			{Name: "Brand", Type: model.AttributeText},
		},
	},
	{
		ID:                "electronics",
		Name:              "Electronics Store",
		DefaultCategories: []string{"Smartphones", "Laptops", "Tablets", "Accessories", "Gaming", "Audio", "Smart Home", "Cameras"},
		SuggestedAttributes: []model.AttributeDef{
			{Name: "Brand", Type: model.AttributeSelect, Options: []string{"Apple", "Samsung", "Sony", "LG", "HP", "Dell", "Lenovo", "Asus"}},
			{Name: "Model", Type: model.AttributeText},
			{Name: "Warranty (months)", Type: model.AttributeNumber},
		},
	},
	{
		ID:                "books",
		Name:              "Book Store",
		DefaultCategories: []string{"Fiction", "Non-Fiction", "Educational", "Children", "Comics", "Biography", "Science", "History"},
		SuggestedAttributes: []model.AttributeDef{
			{Name: "Author", Type: model.AttributeText},
			{Name: "Publisher", Type: model.AttributeText},
			{Name: "ISBN", Type: model.AttributeText},
			{Name: "Pages", Type: model.AttributeNumber},
		},
	},
	{
		ID:                "pharmacy",
		Name:              "Pharmacy",
		DefaultCategories: []string{"Prescription", "Over-the-Counter", "Vitamins", "First Aid", "Personal Care", "Baby Care"},
		SuggestedAttributes: []model.AttributeDef{
			{Name: "Dosage", Type: model.AttributeText},
			{Name: "Expiry Date", Type: model.AttributeText},
			{Name: "Manufacturer", Type: model.AttributeText},
			{Name: "Prescription Required", Type: model.AttributeSelect, Options: []string{"Yes", "No"}},
		},
	},
	{
		ID:                "general",
		Name:              "General Store",
		DefaultCategories: []string{"Household", "Personal Care", "Office Supplies", "Tools", "Toys", "Gifts"},
		SuggestedAttributes: []model.AttributeDef{
			{Name: "Brand", Type: model.AttributeText},
			{Name: "Color", Type: model.AttributeText},
			{Name: "Material", Type: model.AttributeText},
		},
	},
}

// BusinessTypes returns the template catalog.
func BusinessTypes() []model.BusinessType {
	return businessTypes
}

// BusinessTypeByID looks up a template by its identifier.
func BusinessTypeByID(id string) (model.BusinessType, bool) {
	for _, bt := range businessTypes {
		if bt.ID == id {
			return bt, true
		}
	}
	return model.BusinessType{}, false
}
