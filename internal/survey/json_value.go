package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// JSONKind identifies the concrete type stored in a JSONValue.
type JSONKind int

const (
	JSONNull JSONKind = iota
	JSONString
	JSONNumber
	JSONBool
	JSONObject
	JSONArray
)

// JSONValue represents an arbitrary JSON value without using empty interfaces.
// Objects remember their key order so fallback text matches the source file.
type JSONValue struct {
	Kind   JSONKind
	String string
	Number float64
	// NumberText is the literal as written in the source document.
	NumberText string
	Bool       bool
	Keys       []string
	Object     map[string]JSONValue
	Array      []JSONValue
}

// Null returns the JSON null value.
func Null() JSONValue {
	return JSONValue{Kind: JSONNull}
}

// Str wraps a string.
func Str(value string) JSONValue {
	return JSONValue{Kind: JSONString, String: value}
}

// Int wraps an integer as a JSON number.
func Int(value int) JSONValue {
	return JSONValue{Kind: JSONNumber, Number: float64(value), NumberText: strconv.Itoa(value)}
}

// Bool wraps a boolean.
func Bool(value bool) JSONValue {
	return JSONValue{Kind: JSONBool, Bool: value}
}

// Array wraps a list of values.
func Array(items ...JSONValue) JSONValue {
	if items == nil {
		items = []JSONValue{}
	}
	return JSONValue{Kind: JSONArray, Array: items}
}

// Field is one key/value pair used to build ordered objects.
type Field struct {
	Key   string
	Value JSONValue
}

// Object builds an object keeping the order of fields.
func Object(fields ...Field) JSONValue {
	value := JSONValue{Kind: JSONObject, Object: make(map[string]JSONValue, len(fields))}
	for _, field := range fields {
		value.set(field.Key, field.Value)
	}
	return value
}

func (v *JSONValue) set(key string, child JSONValue) {
	if _, exists := v.Object[key]; !exists {
		v.Keys = append(v.Keys, key)
	}
	v.Object[key] = child
}

// UnmarshalJSON decodes a JSON value into the typed JSONValue representation.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case '{':
		return v.unmarshalObject(trimmed)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		*v = JSONValue{Kind: JSONArray, Array: make([]JSONValue, 0, len(raw))}
		for _, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Array = append(v.Array, child)
		}
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*v = Str(value)
		return nil
	case 't', 'f':
		var value bool
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*v = Bool(value)
		return nil
	case 'n':
		if string(trimmed) != "null" {
			return fmt.Errorf("invalid json literal")
		}
		*v = Null()
		return nil
	default:
		var value float64
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*v = JSONValue{Kind: JSONNumber, Number: value, NumberText: string(trimmed)}
		return nil
	}
}

// unmarshalObject walks object tokens so key order survives decoding.
// A repeated key keeps its first position and its last value.
func (v *JSONValue) unmarshalObject(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if _, err := decoder.Token(); err != nil {
		return err
	}
	*v = JSONValue{Kind: JSONObject, Object: map[string]JSONValue{}}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("invalid object key %v", token)
		}
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return err
		}
		var child JSONValue
		if err := json.Unmarshal(raw, &child); err != nil {
			return err
		}
		v.set(key, child)
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	return nil
}

// ObjectValue returns the object map when the value is an object.
func (v JSONValue) ObjectValue() (map[string]JSONValue, bool) {
	if v.Kind != JSONObject {
		return nil, false
	}
	return v.Object, true
}

// ArrayValue returns the array slice when the value is an array.
func (v JSONValue) ArrayValue() ([]JSONValue, bool) {
	if v.Kind != JSONArray {
		return nil, false
	}
	return v.Array, true
}

// StringValue returns the string when the value is a string.
func (v JSONValue) StringValue() (string, bool) {
	if v.Kind != JSONString {
		return "", false
	}
	return v.String, true
}

// NumberValue returns the number when the value is numeric.
func (v JSONValue) NumberValue() (float64, bool) {
	if v.Kind != JSONNumber {
		return 0, false
	}
	return v.Number, true
}

// BoolValue returns the boolean when the value is a bool.
func (v JSONValue) BoolValue() (bool, bool) {
	if v.Kind != JSONBool {
		return false, false
	}
	return v.Bool, true
}

// Get returns an object member, or null when the value is not an object or
// the key is absent.
func (v JSONValue) Get(key string) JSONValue {
	if v.Kind != JSONObject {
		return Null()
	}
	child, ok := v.Object[key]
	if !ok {
		return Null()
	}
	return child
}

// IsScalar reports whether the value is neither an object nor an array.
func (v JSONValue) IsScalar() bool {
	return v.Kind != JSONObject && v.Kind != JSONArray
}

// IsScalarList reports whether the value is an array holding only scalars.
// An empty array counts as a scalar list.
func (v JSONValue) IsScalarList() bool {
	if v.Kind != JSONArray {
		return false
	}
	for _, item := range v.Array {
		if !item.IsScalar() {
			return false
		}
	}
	return true
}

// Truthy reports whether the value is non-empty: a non-empty string, a
// non-zero number, true, or a non-empty array or object.
func (v JSONValue) Truthy() bool {
	switch v.Kind {
	case JSONString:
		return v.String != ""
	case JSONNumber:
		return v.Number != 0
	case JSONBool:
		return v.Bool
	case JSONObject:
		return len(v.Object) > 0
	case JSONArray:
		return len(v.Array) > 0
	default:
		return false
	}
}

// Text returns the value's own literal text. Numbers keep their source form,
// strings are returned unquoted, and containers use their JSON text.
func (v JSONValue) Text() string {
	switch v.Kind {
	case JSONNull:
		return ""
	case JSONString:
		return v.String
	case JSONNumber:
		if v.NumberText != "" {
			return v.NumberText
		}
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case JSONBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return v.JSONText()
	}
}

// JSONText renders the value as single-line JSON with ", " and ": "
// separators. Object keys keep document order and non-ASCII text is not
// escaped, so nothing from the source document is lost.
func (v JSONValue) JSONText() string {
	var buf bytes.Buffer
	v.appendJSON(&buf)
	return buf.String()
}

func (v JSONValue) appendJSON(buf *bytes.Buffer) {
	switch v.Kind {
	case JSONNull:
		buf.WriteString("null")
	case JSONString:
		appendQuoted(buf, v.String)
	case JSONNumber:
		if v.NumberText != "" {
			buf.WriteString(v.NumberText)
		} else {
			buf.WriteString(strconv.FormatFloat(v.Number, 'g', -1, 64))
		}
	case JSONBool:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case JSONArray:
		buf.WriteByte('[')
		for i, item := range v.Array {
			if i > 0 {
				buf.WriteString(", ")
			}
			item.appendJSON(buf)
		}
		buf.WriteByte(']')
	case JSONObject:
		buf.WriteByte('{')
		for i, key := range v.Keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			appendQuoted(buf, key)
			buf.WriteString(": ")
			v.Object[key].appendJSON(buf)
		}
		buf.WriteByte('}')
	}
}

func appendQuoted(buf *bytes.Buffer, value string) {
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	// Encode never fails for strings; it appends a trailing newline.
	_ = encoder.Encode(value)
	buf.Truncate(buf.Len() - 1)
}

// ToInterface converts the JSONValue into standard Go JSON types. Numbers are
// returned as json.Number to keep their source text.
func (v JSONValue) ToInterface() interface{} {
	switch v.Kind {
	case JSONObject:
		out := make(map[string]interface{}, len(v.Object))
		for key, value := range v.Object {
			out[key] = value.ToInterface()
		}
		return out
	case JSONArray:
		out := make([]interface{}, 0, len(v.Array))
		for _, value := range v.Array {
			out = append(out, value.ToInterface())
		}
		return out
	case JSONString:
		return v.String
	case JSONNumber:
		if v.NumberText != "" {
			return json.Number(v.NumberText)
		}
		return v.Number
	case JSONBool:
		return v.Bool
	case JSONNull:
		return nil
	default:
		return nil
	}
}
