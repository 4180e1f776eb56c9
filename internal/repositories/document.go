package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrMalformedDocument = errors.New("malformed vacancies document")

// document is an identifier -> record object that remembers key order: existing keys keep
// their position on overwrite, new keys go to the end.
type document struct {
	keys    []string
	records map[string]entities.Record
}

func newDocument() *document {
	return &document{records: map[string]entities.Record{}}
}

func (d *document) Len() int {
	return len(d.keys)
}

func (d *document) Get(id string) (entities.Record, bool) {
	record, ok := d.records[id]
	return record, ok
}

func (d *document) Set(id string, record entities.Record) {
	if _, ok := d.records[id]; !ok {
		d.keys = append(d.keys, id)
	}
	d.records[id] = record
}

// Merge inserts or overwrites every batch entry. New identifiers are appended in
// lexicographic order so the same batch always produces the same document.
func (d *document) Merge(batch entities.Batch) {
	ids := lo.Keys(batch)
	slices.Sort(ids)
	for _, id := range ids {
		d.Set(id, batch[id])
	}
}

// RemoveWhere drops matching entries and returns how many were removed.
func (d *document) RemoveWhere(match func(entities.Record) bool) int {
	kept := d.keys[:0]
	removed := 0
	for _, id := range d.keys {
		if match(d.records[id]) {
			delete(d.records, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	d.keys = kept
	return removed
}

func (d *document) Records() []entities.Record {
	return lo.Map(d.keys, func(id string, _ int) entities.Record {
		return d.records[id]
	})
}

func (d *document) Validate() error {
	for _, id := range d.keys {
		if err := d.records[id].Validate(); err != nil {
			return errors.Wrapf(err, "vacancy %s", id)
		}
	}
	return nil
}

// MarshalIndent renders the document with two-space indentation, leaving non-ASCII and
// HTML characters unescaped.
func (d *document) MarshalIndent() ([]byte, error) {
	var compact bytes.Buffer
	encoder := json.NewEncoder(&compact)
	encoder.SetEscapeHTML(false)

	compact.WriteByte('{')
	for i, id := range d.keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := encoder.Encode(id); err != nil {
			return nil, err
		}
		compact.WriteByte(':')
		if err := encoder.Encode(d.records[id]); err != nil {
			return nil, errors.Wrapf(err, "encoding vacancy %s", id)
		}
	}
	compact.WriteByte('}')

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return indented.Bytes(), nil
}

func (d *document) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return errors.Wrap(ErrMalformedDocument, err.Error())
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.Wrapf(ErrMalformedDocument, "expected object, got %v", token)
	}

	parsed := newDocument()
	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return errors.Wrap(ErrMalformedDocument, err.Error())
		}
		id, ok := token.(string)
		if !ok {
			return errors.Wrapf(ErrMalformedDocument, "unexpected key %v", token)
		}

		var record entities.Record
		if err = decoder.Decode(&record); err != nil {
			return fmt.Errorf("vacancy %s: %w", id, err)
		}
		parsed.Set(id, record)
	}

	if _, err = decoder.Token(); err != nil {
		return errors.Wrap(ErrMalformedDocument, err.Error())
	}
	if token, err = decoder.Token(); err != io.EOF {
		return errors.Wrapf(ErrMalformedDocument, "trailing data after object: %v %v", token, err)
	}

	*d = *parsed
	return nil
}
