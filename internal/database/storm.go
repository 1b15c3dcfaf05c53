package database

import (
	"os"
	"path/filepath"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec"
	"github.com/mdouchement/foundit/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db   *storm.DB
	opts Options
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string, c codec.MarshalUnmarshaler, opts Options) (Client, error) {
	if err := os.MkdirAll(filepath.Dir(database), 0o755); err != nil {
		return nil, errors.Wrap(err, "could not create storage directory")
	}

	db, err := storm.Open(database, storm.Codec(c))
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db:   db,
		opts: opts.withDefaults(),
	}, nil
}

// Init initializes the lost item indexes.
func (c *strm) Init() error {
	return errors.Wrap(c.db.Init(&model.LostItem{}), "could not init lost item index")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// FindLostItems returns all the reports ordered by identifier.
// Read failures are logged and result in an empty collection.
func (c *strm) FindLostItems() ([]*model.LostItem, error) {
	items := make([]*model.LostItem, 0)
	err := c.db.All(&items)
	if err != nil && errors.Cause(err) != storm.ErrNotFound {
		c.opts.Logger.WithField("path", c.db.Bolt.Path()).Errorf("could not find lost items: %s", err)
		return []*model.LostItem{}, nil
	}
	return items, nil
}

// CreateLostItem stores the report with an auto-incremented identifier.
func (c *strm) CreateLostItem(item *model.LostItem) error {
	item.ID = 0
	item.Stamp(c.opts.Now())

	if err := c.db.Save(item); err != nil {
		c.opts.Logger.WithField("path", c.db.Bolt.Path()).Errorf("could not save lost item: %s", err)
		if c.opts.StrictWrites {
			return errors.Wrap(err, "could not save lost item")
		}
	}
	return nil
}
