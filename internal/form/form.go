// Package form tracks the state of the client's edit and create forms.
//
// An Edit holds the server-confirmed values of an entity next to the values
// currently typed into its inputs; saving is allowed only while they differ.
// A Create holds the values of a new entity; saving is allowed only while
// every required field has non-blank text.
package form

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a value is set for a field the form does
// not track.
var ErrUnknownField = errors.New("unknown field")

// Values maps field names to their text.
type Values map[string]string

// Clone returns a copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

// Edit is the dirty-tracking state of an edit form.
type Edit struct {
	fields   []string
	snapshot Values
	live     Values
}

// NewEdit starts editing with snapshot as the server-confirmed values of
// fields. Fields missing from snapshot start empty.
func NewEdit(fields []string, snapshot Values) *Edit {
	e := &Edit{
		fields:   append([]string(nil), fields...),
		snapshot: make(Values, len(fields)),
	}
	for _, f := range fields {
		e.snapshot[f] = snapshot[f]
	}
	e.live = e.snapshot.Clone()
	return e
}

// Set records the live value of field.
func (e *Edit) Set(field, value string) error {
	if _, ok := e.snapshot[field]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	e.live[field] = value
	return nil
}

// Value returns the live value of field.
func (e *Edit) Value(field string) string { return e.live[field] }

// Live returns a copy of the live values.
func (e *Edit) Live() Values { return e.live.Clone() }

// Dirty reports whether any tracked field differs from the snapshot.
func (e *Edit) Dirty() bool {
	for _, f := range e.fields {
		if e.live[f] != e.snapshot[f] {
			return true
		}
	}
	return false
}

// CanSave reports whether the save action is enabled.
func (e *Edit) CanSave() bool { return e.Dirty() }

// Commit makes confirmed the new snapshot after a successful save. Live
// values typed since the save was sent are kept, so the form stays dirty
// if they differ from what the server confirmed.
func (e *Edit) Commit(confirmed Values) {
	for _, f := range e.fields {
		e.snapshot[f] = confirmed[f]
	}
}

// Reset discards live edits and returns to the snapshot.
func (e *Edit) Reset() {
	e.live = e.snapshot.Clone()
}

// Create is the validation state of a create form.
type Create struct {
	fields   []string
	required map[string]bool
	values   Values
}

// NewCreate returns a create form with the given fields. Required fields
// start empty; the others start from defaults.
func NewCreate(fields, required []string, defaults Values) *Create {
	c := &Create{
		fields:   append([]string(nil), fields...),
		required: make(map[string]bool, len(required)),
		values:   make(Values, len(fields)),
	}
	for _, f := range required {
		c.required[f] = true
	}
	for _, f := range fields {
		if !c.required[f] {
			c.values[f] = defaults[f]
		} else {
			c.values[f] = ""
		}
	}
	return c
}

// Set records the value of field.
func (c *Create) Set(field, value string) error {
	if _, ok := c.values[field]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	c.values[field] = value
	return nil
}

// Value returns the current value of field.
func (c *Create) Value(field string) string { return c.values[field] }

// Trimmed returns a copy of the current values with surrounding whitespace
// removed.
func (c *Create) Trimmed() Values {
	out := make(Values, len(c.values))
	for k, v := range c.values {
		out[k] = strings.TrimSpace(v)
	}
	return out
}

// Missing returns the required fields that are empty or all whitespace.
func (c *Create) Missing() []string {
	var out []string
	for _, f := range c.fields {
		if c.required[f] && strings.TrimSpace(c.values[f]) == "" {
			out = append(out, f)
		}
	}
	return out
}

// CanSave reports whether every required field is non-blank.
func (c *Create) CanSave() bool { return len(c.Missing()) == 0 }

// Clear empties the required fields after a successful submission. Other
// fields keep their values.
func (c *Create) Clear() {
	for f := range c.required {
		if _, ok := c.values[f]; ok {
			c.values[f] = ""
		}
	}
}
