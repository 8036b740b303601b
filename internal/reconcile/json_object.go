package reconcile

import (
	"encoding/json"
	"fmt"
	"maps"
)

// jsonObject is the passthrough bucket of a JSON object: every key the typed
// view does not interpret, kept as raw JSON.
type jsonObject map[string]json.RawMessage

// jsonField is one interpreted key written back by marshalWith.
type jsonField struct {
	key     string
	value   any
	present bool
}

func decodeObject(data []byte) (jsonObject, error) {
	var obj jsonObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// take moves key out of the bucket into dst. A missing key leaves dst
// untouched.
func (o jsonObject) take(key string, dst any) error {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	delete(o, key)

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

// marshalWith encodes the bucket merged with the present fields.
func (o jsonObject) marshalWith(fields ...jsonField) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(o)+len(fields))
	maps.Copy(out, o)

	for _, f := range fields {
		if !f.present {
			continue
		}
		raw, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", f.key, err)
		}
		out[f.key] = raw
	}

	return json.Marshal(out)
}
