package store

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Meta is embedded in every record. Extra holds fields a client sent that the
// record type does not declare; they are echoed back next to the typed fields.
type Meta struct {
	ID    int64          `json:"id"`
	Extra map[string]any `json:"-"`
}

func (m *Meta) meta() *Meta { return m }

// Accommodation, Room and Booking keep their descriptive fields as the
// decoded JSON value the client sent: only presence is checked, so
// "rating": "4" and "rating": 4 are both stored as given.
type Accommodation struct {
	Meta
	Name    any `json:"name"`
	City    any `json:"city"`
	Address any `json:"address"`
	Rating  any `json:"rating"`
}

// Room belongs to an accommodation through ParentID. The reference is only
// checked when the store runs with Options.ValidateParents.
type Room struct {
	Meta
	ParentID ParentRef `json:"parentId"`
	Type     any       `json:"type"`
	Price    any       `json:"price"`
}

// Booking dates are opaque; nothing parses or compares them.
type Booking struct {
	Meta
	ParentID     ParentRef `json:"parentId"`
	UserName     any       `json:"userName"`
	CheckInDate  any       `json:"checkInDate"`
	CheckOutDate any       `json:"checkOutDate"`
}

// ParentRef is the id of an accommodation. It decodes from a JSON integer
// or a string holding one, and always encodes as a number.
type ParentRef int64

func (p *ParentRef) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return parentRefError()
		}
		raw = strings.TrimSpace(s)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*p = ParentRef(n)
		return nil
	}
	// 1.0 and 1e0 name the same accommodation as 1.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		*p = ParentRef(f)
		return nil
	}
	return parentRefError()
}

func parentRefError() error {
	return &ValidationError{Fields: []string{"parentId"}, Reason: "parentId must be an integer"}
}

// User never serialises its password hash.
type User struct {
	Meta
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

func (a Accommodation) MarshalJSON() ([]byte, error) {
	type plain Accommodation
	return marshalWithExtra(plain(a), a.Extra)
}

func (r Room) MarshalJSON() ([]byte, error) {
	type plain Room
	return marshalWithExtra(plain(r), r.Extra)
}

func (b Booking) MarshalJSON() ([]byte, error) {
	type plain Booking
	return marshalWithExtra(plain(b), b.Extra)
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalWithExtra(plain(u), u.Extra)
}

// marshalWithExtra encodes v and folds extra into the resulting object.
// Declared fields win over extras with the same name.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := fields[k]; !ok {
			fields[k] = val
		}
	}
	return json.Marshal(fields)
}
