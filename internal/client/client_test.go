package client_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdouchement/foundit/internal/client"
	"github.com/mdouchement/foundit/pkg/libfoundit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fake struct {
	items []libfoundit.LostItem
	err   error
}

func (f *fake) Health() (libfoundit.Health, error) {
	return libfoundit.Health{Status: "ok", Service: "ufv-foundit-backend"}, f.err
}

func (f *fake) ListLostItems() ([]libfoundit.LostItem, error) {
	return f.items, f.err
}

func (f *fake) CreateLostItem(params libfoundit.LostItemParams) (libfoundit.LostItem, error) {
	item := libfoundit.LostItem{
		ID:          len(f.items) + 1,
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Location:    params.Location,
		Date:        params.Date,
		CreatedAt:   "2025-11-02T10:00:00.000Z",
	}
	f.items = append(f.items, item)
	return item, f.err
}

func TestHealth(t *testing.T) {
	var buf bytes.Buffer
	err := client.Health(&buf, &fake{})
	require.NoError(t, err)
	assert.Equal(t, "ufv-foundit-backend: ok\n", buf.String())

	err = client.Health(&buf, &fake{err: errors.New("connection refused")})
	assert.EqualError(t, err, "could not get server health: connection refused")
}

func TestPostAndList(t *testing.T) {
	c := &fake{}

	var buf bytes.Buffer
	err := client.Post(&buf, c, libfoundit.LostItemParams{
		Title:       "Wallet",
		Description: "Brown leather wallet",
		Category:    "Documents",
		Location:    "Gym",
		Date:        "2025-11-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reported \"Wallet\" with id 1 at 2025-11-02T10:00:00.000Z\n", buf.String())

	buf.Reset()
	err = client.List(&buf, c, false)
	require.NoError(t, err)
	assert.Equal(t, `ID  TITLE   CATEGORY   LOCATION  DATE        CREATED AT
1   Wallet  Documents  Gym       2025-11-02  2025-11-02T10:00:00.000Z
`, buf.String())

	buf.Reset()
	err = client.List(&buf, c, true)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `Title: "Wallet",`)
}

func TestBackup(t *testing.T) {
	c := &fake{items: []libfoundit.LostItem{{ID: 1, Title: "Keys"}}}

	var buf bytes.Buffer
	filename, err := client.Backup(&buf, c, t.TempDir(), time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "lost_items_20251102100000.json", filepath.Base(filename))

	payload, err := os.ReadFile(filename)
	require.NoError(t, err)

	var items []libfoundit.LostItem
	require.NoError(t, json.Unmarshal(payload, &items))
	assert.Equal(t, c.items, items)
}
