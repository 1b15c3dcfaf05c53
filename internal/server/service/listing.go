package service

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mdouchement/foundit/internal/database"
	"github.com/mdouchement/foundit/internal/model"
	"github.com/pkg/errors"
)

// A Listing is the service exposing the lost-item reports.
type Listing struct {
	db database.LostItemInteraction
}

// NewListing instantiates a new Listing service.
func NewListing(db database.LostItemInteraction) *Listing {
	return &Listing{db: db}
}

// List returns all the reports, newest first.
func (s *Listing) List() ([]*model.LostItem, error) {
	items, err := s.db.FindLostItems()
	if err != nil {
		return nil, errors.Wrap(err, "could not list lost items")
	}

	SortNewestFirst(items)
	return items, nil
}

// Create stores a new report built from the given params.
// Params must have been validated.
func (s *Listing) Create(params LostItemParams) (*model.LostItem, error) {
	item := params.LostItem()
	if err := s.db.CreateLostItem(item); err != nil {
		return nil, errors.Wrap(err, "could not create lost item")
	}
	return item, nil
}

// SortNewestFirst sorts the reports by creation date, newest first.
// Reports with a missing or unparsable creation date are considered created at the Unix epoch.
// Reports created at the same time keep their relative order.
func SortNewestFirst(items []*model.LostItem) {
	type entry struct {
		item      *model.LostItem
		createdAt time.Time
	}

	entries := make([]entry, len(items))
	for i, item := range items {
		entries[i] = entry{item: item, createdAt: createdAt(item)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].createdAt.After(entries[j].createdAt)
	})

	for i, e := range entries {
		items[i] = e.item
	}
}

func createdAt(item *model.LostItem) time.Time {
	epoch := time.Unix(0, 0).UTC()
	if item.CreatedAt == "" {
		return epoch
	}

	t, err := dateparse.ParseAny(item.CreatedAt)
	if err != nil {
		return epoch
	}
	return t
}
