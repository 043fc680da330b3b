package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ErrScanValueNotBytes indicates the database value is not a byte slice.
var ErrScanValueNotBytes = errors.New("valueobject: scan value is not []byte")

// JSONStrings stores a list of strings as a JSON array column.
type JSONStrings []string

// Value implements driver.Valuer for JSONStrings.
func (j JSONStrings) Value() (driver.Value, error) {
	if j == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(j))
}

// Scan implements sql.Scanner for JSONStrings.
func (j *JSONStrings) Scan(value any) error {
	if value == nil {
		*j = JSONStrings{}
		return nil
	}

	var bytes []byte

	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	case json.RawMessage:
		bytes = []byte(v)
	default:
		return ErrScanValueNotBytes
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*j = result
	return nil
}

// Contains reports whether the list holds the given value.
func (j JSONStrings) Contains(s string) bool {
	for _, v := range j {
		if v == s {
			return true
		}
	}
	return false
}
