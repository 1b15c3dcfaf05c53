package model

import "time"

// CreatedAtLayout is the textual format of LostItem.CreatedAt.
// It sorts lexically in the same order as chronologically for UTC times.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// A LostItem represents a lost-item report as stored in database and rendered by the API.
type LostItem struct {
	ID          int    `json:"id"          msgpack:"id"          storm:"id,increment"`
	Title       string `json:"title"       msgpack:"title"`
	Description string `json:"description" msgpack:"description"`
	Category    string `json:"category"    msgpack:"category"    storm:"index"`
	Location    string `json:"location"    msgpack:"location"`
	Date        string `json:"date"        msgpack:"date"`
	CreatedAt   string `json:"createdAt"   msgpack:"created_at"  storm:"index"`
}

// Stamp sets the creation date of the report.
func (m *LostItem) Stamp(t time.Time) {
	m.CreatedAt = t.UTC().Format(CreatedAtLayout)
}

// NextLostItemID returns the identifier following the highest one in items, or 1 when items is empty.
func NextLostItemID(items []*LostItem) int {
	next := 1
	for _, item := range items {
		if item.ID >= next {
			next = item.ID + 1
		}
	}
	return next
}
