package course

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Field names written by the enrichment passes.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldBlurb       = "blurb"
	FieldArchitect   = "architect"
	FieldEstablished = "established"
	FieldContinent   = "continent"
	FieldType        = "type"
	FieldBatch       = "batch"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldYardage     = "yardage"
	FieldCategory    = "category"
	FieldRating      = "rating"

	// Presentation fields set by publish and the igolf generator.
	FieldImages             = "images"
	FieldHasImage           = "hasImage"
	FieldImageURL           = "imageUrl"
	FieldIsIgolf            = "isIgolf"
	FieldIsStudio           = "isStudio"
	FieldHasStandardVersion = "hasStandardVersion"
	FieldIgolfFeatures      = "igolfFeatures"
	FieldStudioFeatures     = "studioFeatures"
	FieldStandardFeatures   = "standardFeatures"
)

// Features describes how a playable version of a course was mapped.
type Features struct {
	MappingType string `json:"mappingType" yaml:"mapping_type"`
	Accuracy    string `json:"accuracy" yaml:"accuracy"`
	Resolution  string `json:"resolution" yaml:"resolution"`
	Physics     string `json:"physics" yaml:"physics"`
	FileSize    string `json:"fileSize" yaml:"file_size"`
}

// ErrNotObject is returned when a record is not a JSON object.
var ErrNotObject = errors.New("record is not a JSON object")

// Course is a single catalog record.
//
// The record keeps every key it was read with, in the original order, so a
// rewrite only touches the values that were actually changed. Keys set for
// the first time are appended after the existing ones.
type Course struct {
	keys   []string
	fields map[string]json.RawMessage
}

// New creates an empty record with the given id.
func New(id string) *Course {
	c := &Course{fields: make(map[string]json.RawMessage)}
	c.Set(FieldID, id) // nolint:errcheck
	return c
}

// UnmarshalJSON decodes a JSON object, remembering key order.
func (c *Course) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	c.keys = c.keys[:0]
	c.fields = make(map[string]json.RawMessage)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("reading value for %q: %w", key, err)
		}

		// Duplicate keys keep their first position and last value.
		if _, seen := c.fields[key]; !seen {
			c.keys = append(c.keys, key)
		}
		c.fields[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading record end: %w", err)
	}
	return nil
}

// MarshalJSON encodes the record with keys in their stored order.
func (c *Course) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encode(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(c.fields[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keys returns the record's keys in stored order.
func (c *Course) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Has reports whether the key is present and not null.
func (c *Course) Has(key string) bool {
	raw, ok := c.fields[key]
	return ok && !isNull(raw)
}

// Raw returns the stored JSON value for key, or nil.
func (c *Course) Raw(key string) json.RawMessage {
	return c.fields[key]
}

// Get decodes the value for key into v. It returns false if the key is
// missing, null, or holds a value of a different shape.
func (c *Course) Get(key string, v interface{}) bool {
	raw, ok := c.fields[key]
	if !ok || isNull(raw) {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Set stores v under key and reports whether the stored value changed.
// Setting a value equal to the current one leaves the stored bytes as they
// were read, so formatting of untouched values survives a rewrite.
func (c *Course) Set(key string, v interface{}) (bool, error) {
	raw, err := encode(v)
	if err != nil {
		return false, fmt.Errorf("encoding %s: %w", key, err)
	}

	if c.fields == nil {
		c.fields = make(map[string]json.RawMessage)
	}

	old, exists := c.fields[key]
	if exists && sameJSON(old, raw) {
		return false, nil
	}
	if !exists {
		c.keys = append(c.keys, key)
	}
	c.fields[key] = raw
	return true, nil
}

// Delete removes key from the record.
func (c *Course) Delete(key string) {
	if _, ok := c.fields[key]; !ok {
		return
	}
	delete(c.fields, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of the record.
func (c *Course) Clone() *Course {
	out := &Course{
		keys:   c.Keys(),
		fields: make(map[string]json.RawMessage, len(c.fields)),
	}
	for k, v := range c.fields {
		out.fields[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

func (c *Course) str(key string) string {
	var s string
	if c.Get(key, &s) {
		return s
	}
	return ""
}

// ID returns the record id.
func (c *Course) ID() string { return c.str(FieldID) }

// Name returns the display name, which may carry a parenthetical variant.
func (c *Course) Name() string { return c.str(FieldName) }

// Location returns the free-text "City, Region" location.
func (c *Course) Location() string { return c.str(FieldLocation) }

// Description returns the free-text description.
func (c *Course) Description() string { return c.str(FieldDescription) }

func (c *Course) Architect() string { return c.str(FieldArchitect) }
func (c *Course) Continent() string { return c.str(FieldContinent) }
func (c *Course) Type() string      { return c.str(FieldType) }
func (c *Course) Batch() string     { return c.str(FieldBatch) }
func (c *Course) Category() string  { return c.str(FieldCategory) }

// Blurb returns the descriptive paragraphs. A legacy single-string blurb is
// returned as a one-element list.
func (c *Course) Blurb() []string {
	var paras []string
	if c.Get(FieldBlurb, &paras) {
		return paras
	}
	if s := c.str(FieldBlurb); s != "" {
		return []string{s}
	}
	return nil
}

// Established returns the founding year, if set.
func (c *Course) Established() (int, bool) {
	var year int
	if c.Get(FieldEstablished, &year) && year != 0 {
		return year, true
	}
	return 0, false
}

// Yardage returns the course length in yards, if set.
func (c *Course) Yardage() (int, bool) {
	var yards int
	if c.Get(FieldYardage, &yards) && yards != 0 {
		return yards, true
	}
	return 0, false
}

// Coordinates returns latitude and longitude when both are set.
func (c *Course) Coordinates() (lat, lng float64, ok bool) {
	if !c.Get(FieldLatitude, &lat) || !c.Get(FieldLongitude, &lng) {
		return 0, 0, false
	}
	return lat, lng, true
}

// Text returns the description and blurb paragraphs joined by spaces.
// Enrichers scan this text for keywords.
func (c *Course) Text() string {
	parts := append([]string{c.Description()}, c.Blurb()...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// encode marshals v without HTML escaping and without the trailing newline.
func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// sameJSON compares two encoded values semantically, so 3.0 and 3 or
// differently spaced arrays count as equal.
func sameJSON(a, b json.RawMessage) bool {
	if bytes.Equal(a, b) {
		return true
	}
	var va, vb interface{}
	if err := json.Unmarshal(a, &va); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}
