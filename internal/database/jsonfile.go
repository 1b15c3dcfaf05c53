package database

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mdouchement/foundit/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

// A JSONFile stores the whole report collection as a JSON array in a single file.
// The file is fully read on every lookup and fully rewritten on every creation.
//
// There is no locking: two concurrent creations can read the same collection
// and the last writer wins, losing the other report.
type JSONFile struct {
	path string
	opts Options
}

// JSONOpen returns a new JSONFile backed by the given path.
// The file and its directory are lazily created.
func JSONOpen(path string, opts Options) *JSONFile {
	return &JSONFile{
		path: path,
		opts: opts.withDefaults(),
	}
}

// Path returns the backing file path.
func (s *JSONFile) Path() string {
	return s.path
}

// Init implements Client.
func (s *JSONFile) Init() error {
	return s.EnsureBacking()
}

// Close implements Client.
func (s *JSONFile) Close() error {
	return nil
}

// EnsureBacking creates the storage directory and a file containing an empty array if they do not exist.
func (s *JSONFile) EnsureBacking() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "could not create storage directory")
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return errors.Wrap(err, "could not create backing file")
	}

	_, err = f.Write([]byte("[]"))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrap(err, "could not initialize backing file")
}

// ReadAll returns all the reports in file order.
// A file that cannot be read or is not a JSON array is logged and results in an empty collection.
// Elements that cannot be decoded as a report are logged and skipped.
func (s *JSONFile) ReadAll() []*model.LostItem {
	if err := s.EnsureBacking(); err != nil {
		s.opts.Logger.WithField("path", s.path).Errorf("could not read lost items: %s", err)
		return []*model.LostItem{}
	}

	payload, err := os.ReadFile(s.path)
	if err != nil {
		s.opts.Logger.WithField("path", s.path).Errorf("could not read lost items: %s", err)
		return []*model.LostItem{}
	}

	v, err := fastjson.ParseBytes(payload)
	if err != nil {
		s.opts.Logger.WithField("path", s.path).Errorf("could not parse lost items: %s", err)
		return []*model.LostItem{}
	}
	values, err := v.Array()
	if err != nil {
		s.opts.Logger.WithField("path", s.path).Errorf("could not parse lost items: %s", err)
		return []*model.LostItem{}
	}

	records := make([]*model.LostItem, 0, len(values))
	for i, value := range values {
		if value.Type() == fastjson.TypeNull {
			continue
		}

		item, err := decodeLostItem(value)
		if err != nil {
			s.opts.Logger.WithFields(logrus.Fields{
				"path":  s.path,
				"index": i,
			}).Errorf("skipping lost item: %s", err)
			continue
		}
		records = append(records, item)
	}
	return records
}

// decodeLostItem reads a stored report leniently.
// Non-string fields are kept as their JSON text and the last occurrence of a duplicated key wins.
func decodeLostItem(v *fastjson.Value) (*model.LostItem, error) {
	o, err := v.Object()
	if err != nil {
		return nil, err
	}

	item := &model.LostItem{}
	o.Visit(func(key []byte, v *fastjson.Value) {
		if err != nil {
			return
		}

		switch string(key) {
		case "id":
			if v.Type() == fastjson.TypeNull {
				item.ID = 0
				return
			}
			item.ID, err = v.Int()
			if err != nil {
				err = errors.Wrap(err, "invalid id")
			}
		case "title":
			item.Title = text(v)
		case "description":
			item.Description = text(v)
		case "category":
			item.Category = text(v)
		case "location":
			item.Location = text(v)
		case "date":
			item.Date = text(v)
		case "createdAt":
			item.CreatedAt = text(v)
		}
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func text(v *fastjson.Value) string {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNull:
		return ""
	default:
		return v.String()
	}
}

// WriteAll overwrites the backing file with the given reports.
// The collection is written to a temporary file which is then renamed over the backing file.
func (s *JSONFile) WriteAll(items []*model.LostItem) error {
	if items == nil {
		items = []*model.LostItem{}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not serialize lost items")
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "could not create storage directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "could not create temporary file")
	}
	defer os.Remove(tmp.Name()) // No-op once renamed.

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return errors.Wrap(err, "could not write lost items")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "could not write lost items")
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(err, "could not set backing file permissions")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "could not replace backing file")
}

// FindLostItems implements Client. It never fails, unreadable storage yields no reports.
func (s *JSONFile) FindLostItems() ([]*model.LostItem, error) {
	return s.ReadAll(), nil
}

// CreateLostItem implements Client.
func (s *JSONFile) CreateLostItem(item *model.LostItem) error {
	items := s.ReadAll()

	item.ID = model.NextLostItemID(items)
	item.Stamp(s.opts.Now())
	items = append(items, item)

	if err := s.WriteAll(items); err != nil {
		s.opts.Logger.WithField("path", s.path).Errorf("could not save lost item %d: %s", item.ID, err)
		if s.opts.StrictWrites {
			return err
		}
	}
	return nil
}
