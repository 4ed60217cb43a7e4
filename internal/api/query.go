package api

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the calendar-date form the archive API expects for every
// date-valued filter. Time of day and zone offset are discarded.
const dateLayout = "2006-01-02"

// Query accumulates query parameters under their wire (hyphenated) keys.
// Absent values are never serialized: every setter is a no-op for the zero
// value of its type.
type Query struct {
	v url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{v: url.Values{}}
}

// Str sets key to val unless val is empty.
func (q *Query) Str(key, val string) {
	if val != "" {
		q.v.Set(key, val)
	}
}

// Int sets key to val unless val is zero.
func (q *Query) Int(key string, val int) {
	if val != 0 {
		q.v.Set(key, strconv.Itoa(val))
	}
}

// Int64 sets key to val unless val is zero.
func (q *Query) Int64(key string, val int64) {
	if val != 0 {
		q.v.Set(key, strconv.FormatInt(val, 10))
	}
}

// Bool sets key to "true" when val is set. False is never sent; it is the
// remote's default for every boolean filter.
func (q *Query) Bool(key string, val bool) {
	if val {
		q.v.Set(key, "true")
	}
}

// Date sets key to the calendar date of val unless val is the zero time.
func (q *Query) Date(key string, val time.Time) {
	if !val.IsZero() {
		q.v.Set(key, val.Format(dateLayout))
	}
}

// List sets key to the comma-joined vals unless the list is empty.
func (q *Query) List(key string, vals []string) {
	if len(vals) > 0 {
		q.v.Set(key, strings.Join(vals, ","))
	}
}

// JSON sets key to the JSON encoding of m unless m is empty.
func (q *Query) JSON(key string, m map[string]string) {
	if len(m) > 0 {
		data, _ := json.Marshal(m) // cannot fail for map[string]string
		q.v.Set(key, string(data))
	}
}

// Values returns the accumulated parameters, or nil when none were set.
func (q *Query) Values() url.Values {
	if len(q.v) == 0 {
		return nil
	}
	return q.v
}
