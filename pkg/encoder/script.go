package encoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// MarshalObject renders encoded options as a JavaScript object literal with
// keys in lexical order. Function values are written verbatim; everything
// else goes through encoding/json, which escapes <, > and & so the result can
// be inlined in a script element.
func MarshalObject(encoded Encoded) ([]byte, error) {
	keys := make([]string, 0, len(encoded))
	for key := range encoded {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encoder: marshal key %q: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')

		if fn, ok := encoded[key].(Function); ok {
			buf.WriteString(string(fn))
			continue
		}
		value, err := json.Marshal(encoded[key])
		if err != nil {
			return nil, fmt.Errorf("encoder: marshal option %q: %w", key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// InitScript wraps MarshalObject output in a tinyMCE.init call.
func InitScript(encoded Encoded) (string, error) {
	object, err := MarshalObject(encoded)
	if err != nil {
		return "", err
	}
	return "tinyMCE.init(" + string(object) + ");", nil
}
