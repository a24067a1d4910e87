package persist

import (
	"fmt"
	"slices"
	"sort"
)

const recordsKey = "records"

// document is the top-level shape of every sink.
type document[T any] struct {
	Records []T `json:"records" toml:"records" yaml:"records"`
}

// decode parses data into records, rejecting any record whose field set
// differs from T's.
func decode[T any](c Codec, data []byte) ([]T, error) {
	if err := checkShape[T](c, data); err != nil {
		return nil, err
	}
	var doc document[T]
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Records == nil {
		doc.Records = make([]T, 0)
	}
	return doc.Records, nil
}

func encode[T any](c Codec, records []T) ([]byte, error) {
	if records == nil {
		records = make([]T, 0)
	}
	return c.Marshal(document[T]{Records: records})
}

func checkShape[T any](c Codec, data []byte) error {
	var raw map[string]any
	if err := c.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if key != recordsKey {
			return fmt.Errorf("unexpected top-level field %q", key)
		}
	}
	value, ok := raw[recordsKey]
	if !ok || value == nil {
		return fmt.Errorf("missing top-level field %q", recordsKey)
	}
	records, err := recordMaps(value)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	want, err := fieldsOf[T](c)
	if err != nil {
		return err
	}
	for i, rec := range records {
		for _, f := range want {
			if _, ok := rec[f]; !ok {
				return fmt.Errorf("record %d: missing field %q", i, f)
			}
		}
		for _, f := range sortedKeys(rec) {
			if !slices.Contains(want, f) {
				return fmt.Errorf("record %d: unexpected field %q", i, f)
			}
		}
	}
	return nil
}

// fieldsOf lists the field names c writes for a T.
func fieldsOf[T any](c Codec) ([]string, error) {
	var zero T
	data, err := encode(c, []T{zero})
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := c.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	records, err := recordMaps(raw[recordsKey])
	if err != nil || len(records) != 1 {
		return nil, fmt.Errorf("record type %T does not encode as a field map", zero)
	}
	return sortedKeys(records[0]), nil
}

func recordMaps(value any) ([]map[string]any, error) {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case []map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("field %q is %T, not a list", recordsKey, value)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d is %T, not a field map", i, item)
		}
		out = append(out, m)
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
