package model

// BusinessType is a static template of defaults applied to a store
// configuration when the owner picks their line of business. Reference data
// only; never persisted.
type BusinessType struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	DefaultCategories   []string       `json:"default_categories"`
	UsesSizes           bool           `json:"uses_sizes"`
	DefaultSizeOptions  []string       `json:"default_size_options"`
	SuggestedAttributes []AttributeDef `json:"suggested_attributes"`
}
