package preferences

import (
	"fmt"
	"strconv"
)

// Value is a named, typed preference entry that can be Set from a string
// (as it would arrive from configure(option, value) or a preferences file)
// and read back with Get.
type Value[T comparable] struct {
	name    string
	value   T
	deflt   T
	parse   func(string) (T, error)
	format  func(T) string
}

// NewValue constructs a Value with the given default, parse and format
// functions.
func NewValue[T comparable](deflt T, parse func(string) (T, error), format func(T) string) *Value[T] {
	return &Value[T]{value: deflt, deflt: deflt, parse: parse, format: format}
}

// Get returns the current value.
func (v *Value[T]) Get() T { return v.value }

// SetDefaults resets the value to its default.
func (v *Value[T]) SetDefaults() { v.value = v.deflt }

// Set parses s and, on success, updates the value. On failure the previous
// value is left unchanged and an error is returned (spec.md's
// recoverable-config error category: invalid option/value, no state
// change).
func (v *Value[T]) Set(s string) error {
	parsed, err := v.parse(s)
	if err != nil {
		return err
	}
	v.value = parsed
	return nil
}

// String implements the persisted on-disk representation.
func (v *Value[T]) String() string {
	return v.format(v.value)
}

// NewBool constructs a boolean preference value.
func NewBool(deflt bool) *Value[bool] {
	return NewValue(deflt, func(s string) (bool, error) {
		switch s {
		case "true", "1", "on", "yes":
			return true, nil
		case "false", "0", "off", "no":
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value %q", s)
		}
		return b, nil
	}, func(b bool) string {
		if b {
			return "true"
		}
		return "false"
	})
}

// NewInt constructs an integer preference value.
func NewInt(deflt int) *Value[int] {
	return NewValue(deflt, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value %q", s)
		}
		return n, nil
	}, strconv.Itoa)
}

// NewEnum constructs a preference value restricted to a fixed set of
// options.
func NewEnum(deflt string, options ...string) *Value[string] {
	valid := make(map[string]bool, len(options))
	for _, o := range options {
		valid[o] = true
	}
	return NewValue(deflt, func(s string) (string, error) {
		if !valid[s] {
			return "", fmt.Errorf("invalid value %q, must be one of %v", s, options)
		}
		return s, nil
	}, func(s string) string { return s })
}
