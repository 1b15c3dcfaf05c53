package service

import "github.com/mdouchement/foundit/internal/model"

// M is an arbitrary map.
type M map[string]any

// A LostItemParams is used when a client submits a lost-item report.
type LostItemParams struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Date        string `json:"date"        validate:"required"`
}

// LostItem returns a new report filled with the params.
func (p LostItemParams) LostItem() *model.LostItem {
	return &model.LostItem{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Location:    p.Location,
		Date:        p.Date,
	}
}
