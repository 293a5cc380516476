package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The list and map fields on StoreConfig and Product are stored as JSON in a
// text column so they survive both the postgres and sqlite dialects.

// StringList is a []string persisted as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// AttributeDefs is a []AttributeDef persisted as a JSON text column.
type AttributeDefs []AttributeDef

func (d AttributeDefs) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	return string(b), err
}

func (d *AttributeDefs) Scan(src interface{}) error {
	return scanJSON(src, d)
}

// AttributeMap holds free-form custom attribute values on a product, keyed by
// attribute name.
type AttributeMap map[string]interface{}

func (m AttributeMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *AttributeMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
