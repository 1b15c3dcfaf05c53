package libfoundit

type (
	// A LostItem is a lost-item report returned by the foundit API.
	LostItem struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Location    string `json:"location"`
		Date        string `json:"date"`
		CreatedAt   string `json:"createdAt"`
	}

	// LostItemParams are the fields required to report a lost item.
	LostItemParams struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Location    string `json:"location"`
		Date        string `json:"date"`
	}

	// A Health is the status of a foundit server.
	Health struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
)
