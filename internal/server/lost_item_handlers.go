package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/foundit/internal/server/service"
)

// lostItem contains all lost-item report handlers.
type lostItem struct {
	listing *service.Listing
}

///// List
////
//

// List returns all the reports, newest first.
func (h *lostItem) List(c echo.Context) error {
	items, err := h.listing.List()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

///// Create
////
//

// Create stores a new report and renders it with its identifier and creation date.
func (h *lostItem) Create(c echo.Context) error {
	var params service.LostItemParams
	if err := c.Bind(&params); err != nil {
		return err
	}

	if err := c.Validate(&params); err != nil {
		return err
	}

	item, err := h.listing.Create(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}
