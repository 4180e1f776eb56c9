package repositories

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/metrics"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrDocumentNotFound = errors.New("vacancies document not found")

const defaultFileMode fs.FileMode = 0644

// VacanciesFile keeps normalized vacancies in a single JSON document. Every change is a
// full read-modify-write that replaces the file atomically.
type VacanciesFile struct {
	path string
}

func NewVacanciesFile(path string) *VacanciesFile {
	return &VacanciesFile{path: path}
}

func (f *VacanciesFile) Path() string {
	return f.path
}

// Initialize overwrites the document with batch.
func (f *VacanciesFile) Initialize(batch entities.Batch) error {
	doc := newDocument()
	doc.Merge(batch)

	err := f.write(doc)
	countOperation("initialize", err)
	return err
}

// Append inserts or overwrites batch entries, leaving other entries untouched.
func (f *VacanciesFile) Append(batch entities.Batch) error {
	doc, err := f.read()
	if err == nil {
		doc.Merge(batch)
		err = f.write(doc)
	}
	countOperation("append", err)
	return err
}

// Enumerate returns one vacancy per stored entry in document order.
func (f *VacanciesFile) Enumerate() ([]entities.Vacancy, error) {
	doc, err := f.read()
	countOperation("enumerate", err)
	if err != nil {
		return nil, err
	}

	return lo.Map(doc.Records(), func(record entities.Record, _ int) entities.Vacancy {
		return record.Vacancy()
	}), nil
}

// Delete removes every entry whose name and town are exactly equal to the given ones.
// The document is rewritten even when nothing matched.
func (f *VacanciesFile) Delete(name, town string) (int, error) {
	doc, err := f.read()
	if err != nil {
		countOperation("delete", err)
		return 0, err
	}

	removed := doc.RemoveWhere(func(record entities.Record) bool {
		return record.Name == name && record.Town == town
	})

	err = f.write(doc)
	countOperation("delete", err)
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (f *VacanciesFile) read() (*document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(ErrDocumentNotFound, f.path)
		}
		return nil, errors.Wrapf(err, "reading %s", f.path)
	}

	doc := newDocument()
	if err = doc.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", f.path)
	}
	if err = doc.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating %s", f.path)
	}
	return doc, nil
}

// write stores doc in a temporary file next to the target and renames it over the
// target, so an interrupted write never leaves a truncated document behind.
func (f *VacanciesFile) write(doc *document) (err error) {
	if err = doc.Validate(); err != nil {
		return err
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		return errors.Wrap(err, "encoding vacancies document")
	}

	mode := defaultFileMode
	if info, statErr := os.Stat(f.path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temporary document")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "writing temporary document")
	}
	if err = tmp.Chmod(mode); err != nil {
		return errors.Wrap(err, "setting document permissions")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temporary document")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temporary document")
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return errors.Wrapf(err, "replacing %s", f.path)
	}
	return nil
}

func countOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.StoreOperationsCounter.WithLabelValues(operation, result).Inc()
}
