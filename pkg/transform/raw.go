package transform

import (
	"encoding/json"

	"github.com/habitloop/reflector/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// RawRecord is one loosely-typed record from an export. Field access
// goes through the helpers below so a missing key fails with
// model.ErrMissingField instead of silently producing a zero value.
type RawRecord map[string]any

func requireField(rec RawRecord, name string) (any, error) {
	v, ok := rec[name]
	if !ok {
		return nil, goerr.Wrap(model.ErrMissingField, "record has no such field", goerr.V("field", name))
	}
	return v, nil
}

// strField returns the named field as a string. A null value is
// allowed and yields "".
func strField(rec RawRecord, name string) (string, error) {
	v, err := requireField(rec, name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", goerr.Wrap(model.ErrParse, "field is not a string", goerr.V("field", name), goerr.V("value", v))
	}
	return s, nil
}

// numField returns the named field as a float64. A null value is
// allowed and yields 0.
func numField(rec RawRecord, name string) (float64, error) {
	v, err := requireField(rec, name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, goerr.Wrap(model.ErrParse, "field is not numeric", goerr.V("field", name), goerr.V("value", v))
		}
		return f, nil
	default:
		return 0, goerr.Wrap(model.ErrParse, "field is not numeric", goerr.V("field", name), goerr.V("value", v))
	}
}

// mapField returns the named field as a nested object. Unlike the
// scalar helpers a null value is not accepted: the habit maps must be
// present when a date is.
func mapField(rec RawRecord, name string) (map[string]any, error) {
	v, err := requireField(rec, name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, goerr.Wrap(model.ErrParse, "field is not an object", goerr.V("field", name), goerr.V("value", v))
	}
	return m, nil
}

// optionalStr returns the named field as a string, or "" when the key
// is absent or null.
func optionalStr(rec RawRecord, name string) (string, error) {
	v, ok := rec[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", goerr.Wrap(model.ErrParse, "field is not a string", goerr.V("field", name), goerr.V("value", v))
	}
	return s, nil
}
