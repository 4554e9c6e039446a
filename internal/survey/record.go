package survey

// Record is one respondent's answers keyed by question key, in file order.
type Record struct {
	value JSONValue
}

// NewRecord wraps an object value as a record. Non-object values yield an
// empty record.
func NewRecord(value JSONValue) Record {
	if value.Kind != JSONObject {
		return Record{value: Object()}
	}
	return Record{value: value}
}

// Get returns the answer for key, or null when it is absent.
func (r Record) Get(key string) JSONValue {
	return r.value.Get(key)
}

// Has reports whether key is present, even with a null answer.
func (r Record) Has(key string) bool {
	_, ok := r.value.Object[key]
	return ok
}

// Keys returns the record's keys in file order.
func (r Record) Keys() []string {
	return append([]string(nil), r.value.Keys...)
}

// Len returns the number of keys.
func (r Record) Len() int {
	return len(r.value.Keys)
}

// With returns a copy of the record with key set to value. A new key is
// appended; an existing key keeps its position.
func (r Record) With(key string, value JSONValue) Record {
	out := Object()
	for _, existing := range r.value.Keys {
		out.set(existing, r.value.Object[existing])
	}
	out.set(key, value)
	return Record{value: out}
}

// Value returns the record as an object value.
func (r Record) Value() JSONValue {
	if r.value.Object == nil {
		return Object()
	}
	return r.value
}

// SourceRecord pairs a record with the file it was loaded from.
type SourceRecord struct {
	// Path is the full path of the source file.
	Path string
	// Name is the file's base name, shown in the spreadsheet.
	Name   string
	Record Record
}

// Records returns the records of a loaded set, in order.
func Records(sources []SourceRecord) []Record {
	out := make([]Record, 0, len(sources))
	for _, source := range sources {
		out = append(out, source.Record)
	}
	return out
}
