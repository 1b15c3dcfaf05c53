package database

import (
	"time"

	"github.com/mdouchement/foundit/internal/model"
	"github.com/mdouchement/foundit/pkg/stormcodec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DriverJSON stores reports in a flat JSON file.
	DriverJSON = "json"
	// DriverStorm stores reports in a Storm (bbolt) database.
	DriverStorm = "storm"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Init ensures the backing storage exists.
		Init() error
		// Close the database.
		Close() error

		LostItemInteraction
	}

	// A LostItemInteraction defines all the methods used to interact with lost-item reports.
	LostItemInteraction interface {
		// FindLostItems returns all the reports in storage order.
		FindLostItems() ([]*model.LostItem, error)
		// CreateLostItem assigns the next identifier and the creation date to the given report and stores it.
		CreateLostItem(item *model.LostItem) error
	}

	// Options are the settings shared by all drivers.
	Options struct {
		// Logger receives storage failures.
		Logger logrus.FieldLogger
		// StrictWrites makes CreateLostItem return write failures instead of only logging them.
		StrictWrites bool
		// Now returns the creation date of new reports. Defaults to time.Now.
		Now func() time.Time
	}
)

// Open returns a new Client for the given driver.
func Open(driver, path, codec string, opts Options) (Client, error) {
	switch driver {
	case DriverJSON:
		return JSONOpen(path, opts), nil
	case DriverStorm:
		c, err := stormcodec.ByName(codec)
		if err != nil {
			return nil, err
		}
		return StormOpen(path, c, opts)
	default:
		return nil, errors.Errorf("unsupported storage driver %q", driver)
	}
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
