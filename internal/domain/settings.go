package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Setting is one row of the flat key/value namespace backing site-wide
// toggles and links. Value is always stored as a string; booleans are
// encoded as the literal strings "true"/"false".
// swagger:model Setting
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingValue is a boolean-or-text value as seen by settings consumers.
// The storage representation is string-only, so a text value containing the
// literal "true" decodes as the boolean true. That collision matches the
// original store's behavior and is deliberately not resolved here.
type SettingValue struct {
	isBool bool
	b      bool
	s      string
}

// BoolValue returns a boolean setting value.
func BoolValue(b bool) SettingValue {
	return SettingValue{isBool: true, b: b}
}

// TextValue returns a text setting value.
func TextValue(s string) SettingValue {
	return SettingValue{s: s}
}

// Bool returns the boolean payload; ok is false for text values.
func (v SettingValue) Bool() (value, ok bool) {
	return v.b, v.isBool
}

// Text returns the text payload; ok is false for boolean values.
func (v SettingValue) Text() (string, bool) {
	if v.isBool {
		return "", false
	}
	return v.s, true
}

// Encode returns the string-only storage representation: "true"/"false"
// for booleans, the text unchanged otherwise. No escaping or quoting.
func (v SettingValue) Encode() string {
	if v.isBool {
		if v.b {
			return "true"
		}
		return "false"
	}
	return v.s
}

// DecodeSettingValue converts a stored string back to a typed value. Only
// the exact literals "true" and "false" become booleans; everything else,
// including numeric-looking or empty strings, passes through as text.
func DecodeSettingValue(raw string) SettingValue {
	switch raw {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	return TextValue(raw)
}

// MarshalJSON emits booleans as JSON booleans and text as JSON strings so
// the settings map serializes the way the admin UI expects.
func (v SettingValue) MarshalJSON() ([]byte, error) {
	if v.isBool {
		return json.Marshal(v.b)
	}
	return json.Marshal(v.s)
}

// UnmarshalJSON accepts a JSON boolean or string.
func (v *SettingValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TextValue(s)
		return nil
	}
	return fmt.Errorf("setting value must be a boolean or a string: %s", data)
}

// SettingRepository defines the interface for setting storage, keyed by the
// unique setting key.
type SettingRepository interface {
	List(ctx context.Context) ([]*Setting, error)
	// Upsert inserts the key or overwrites its value, refreshing updated_at.
	Upsert(ctx context.Context, key, value string) error
	DeleteByKey(ctx context.Context, key string) error
}

// SettingsService presents the key/value rows as a typed mapping. GetAll
// degrades to an empty map on storage failure. SetAll upserts each key
// independently and stops at the first failure; a multi-key update is not
// atomic.
type SettingsService interface {
	GetAll(ctx context.Context) map[string]SettingValue
	SetAll(ctx context.Context, values map[string]SettingValue) error
}
