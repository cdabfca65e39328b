package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"sync"
)

type record[E any] interface {
	*E
	meta() *Meta
}

// Collection is one ordered set of same-kind records with sequential ids.
//
// Ids come from a counter that only moves forward, so an id freed by Delete
// is never handed out again. Records are replaced, never mutated, once they
// have been returned to a caller; readers can encode them without holding
// the collection lock.
type Collection[E any, P record[E]] struct {
	kind     string
	required []string
	// writeOnly fields are accepted in payloads but never land in Extra.
	writeOnly map[string]struct{}
	// check runs on a candidate record before it is committed.
	check func(P) error
	known map[string]struct{}

	mu     sync.Mutex
	nextID int64
	items  []P
}

// NewCollection returns an empty collection. kind names the record type in
// errors ("Accommodation not found"); required lists the payload fields
// Create insists on.
func NewCollection[E any, P record[E]](kind string, required ...string) *Collection[E, P] {
	return &Collection[E, P]{
		kind:      kind,
		required:  required,
		writeOnly: map[string]struct{}{},
		known:     declaredFields[E, P](),
	}
}

// Kind returns the record type name used in errors.
func (c *Collection[E, P]) Kind() string { return c.kind }

// List returns the records in insertion order. A nil keep returns all.
func (c *Collection[E, P]) List(keep func(P) bool) []P {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]P, 0, len(c.items))
	for _, it := range c.items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Collection[E, P]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Collection[E, P]) Get(id int64) (P, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{Kind: c.kind, ID: id}
	}
	return c.items[i], nil
}

func (c *Collection[E, P]) Exists(id int64) bool {
	_, err := c.Get(id)
	return err == nil
}

// Create validates fields against the required list, assigns the next id and
// appends the record.
func (c *Collection[E, P]) Create(fields map[string]any) (P, error) {
	return c.CreateWith(fields, nil)
}

// CreateWith is Create with a hook that can fill in fields the payload does
// not carry directly. The hook runs before the record gets its id.
func (c *Collection[E, P]) CreateWith(fields map[string]any, init func(P) error) (P, error) {
	if missing := missingFields(fields, c.required); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	known, extra := c.split(fields)

	item := P(new(E))
	if err := decodeFields(item, known); err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		item.meta().Extra = extra
	}
	if init != nil {
		if err := init(item); err != nil {
			return nil, err
		}
	}
	if c.check != nil {
		if err := c.check(item); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	item.meta().ID = c.nextID
	c.items = append(c.items, item)
	return item, nil
}

// Update shallow-merges patch onto the record with the given id. Declared
// fields are overwritten, undeclared ones are added, and an "id" key is
// ignored.
func (c *Collection[E, P]) Update(id int64, patch map[string]any) (P, error) {
	return c.UpdateWith(id, patch, nil)
}

// UpdateWith is Update with a hook that sees the merged record before it is
// committed. The hook runs under the collection lock.
func (c *Collection[E, P]) UpdateWith(id int64, patch map[string]any, apply func(P) error) (P, error) {
	known, extra := c.split(patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{Kind: c.kind, ID: id}
	}

	cur := c.items[i]
	next := P(new(E))
	*next = *cur
	next.meta().Extra = maps.Clone(cur.meta().Extra)

	if err := decodeFields(next, known); err != nil {
		return nil, err
	}
	next.meta().ID = cur.meta().ID
	if len(extra) > 0 {
		if next.meta().Extra == nil {
			next.meta().Extra = make(map[string]any, len(extra))
		}
		maps.Copy(next.meta().Extra, extra)
	}
	if apply != nil {
		if err := apply(next); err != nil {
			return nil, err
		}
	}
	if c.check != nil {
		if err := c.check(next); err != nil {
			return nil, err
		}
	}
	c.items[i] = next
	return next, nil
}

// Delete removes the record with the given id.
func (c *Collection[E, P]) Delete(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: c.kind, ID: id}
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// DeleteIf removes the record with the given id when match accepts it. A
// rejected record is reported as not found.
func (c *Collection[E, P]) DeleteIf(id int64, match func(P) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 || !match(c.items[i]) {
		return &NotFoundError{Kind: c.kind, ID: id}
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

func (c *Collection[E, P]) indexOf(id int64) int {
	for i, it := range c.items {
		if it.meta().ID == id {
			return i
		}
	}
	return -1
}

// split partitions a payload into declared fields and extras. The id and
// write-only fields end up in neither.
func (c *Collection[E, P]) split(fields map[string]any) (known, extra map[string]any) {
	known = make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		if _, ok := c.known[k]; ok {
			known[k] = v
			continue
		}
		if _, ok := c.writeOnly[k]; ok {
			continue
		}
		if extra == nil {
			extra = map[string]any{}
		}
		extra[k] = v
	}
	return known, extra
}

// missingFields treats absent keys, JSON nulls and empty strings as missing.
func missingFields(fields map[string]any, required []string) []string {
	var missing []string
	for _, name := range required {
		v, ok := fields[name]
		if !ok || v == nil {
			missing = append(missing, name)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// decodeFields copies declared fields onto dst through a JSON round trip so
// that payload values get the record's field types. Loose fields (any)
// take whatever was sent.
func decodeFields(dst any, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	if err := json.Unmarshal(b, dst); err != nil {
		var (
			verr *ValidationError
			te   *json.UnmarshalTypeError
		)
		if errors.As(err, &verr) {
			return verr
		}
		if errors.As(err, &te) {
			return &ValidationError{
				Fields: []string{te.Field},
				Reason: fmt.Sprintf("%s must be %s", te.Field, jsonType(te.Type.Kind().String())),
			}
		}
		return &ValidationError{Reason: err.Error()}
	}
	return nil
}

func jsonType(goKind string) string {
	switch goKind {
	case "string":
		return "a string"
	case "bool":
		return "a boolean"
	case "int", "int8", "int16", "int32", "int64":
		return "an integer"
	default:
		return "a number"
	}
}

// declaredFields lists the JSON names of E's typed fields, id excluded.
func declaredFields[E any, P record[E]]() map[string]struct{} {
	b, err := json.Marshal(P(new(E)))
	if err != nil {
		panic(fmt.Sprintf("store: encode zero record: %v", err))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		panic(fmt.Sprintf("store: decode zero record: %v", err))
	}
	out := make(map[string]struct{}, len(fields))
	for k := range fields {
		if k != "id" {
			out[k] = struct{}{}
		}
	}
	return out
}
