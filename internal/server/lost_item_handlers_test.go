package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/mdouchement/foundit/internal/database"
	"github.com/mdouchement/foundit/internal/logger"
	"github.com/mdouchement/foundit/internal/model"
	"github.com/mdouchement/foundit/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallet = `{"title":"Wallet","description":"Brown leather wallet","category":"Documents","location":"Gym","date":"2025-11-02"}`

func TestRequestLostItemsList_Empty(t *testing.T) {
	engine, f, r := setup(t)
	assert.NoFileExists(t, f.store.Path())

	r.GET("/api/lost-items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `[]`, r.Body.String())
	})

	// Listing creates the backing file.
	assert.FileExists(t, f.store.Path())
}

func TestRequestLostItemsList_Unreadable(t *testing.T) {
	engine, f, r := setup(t)
	require.NoError(t, f.store.EnsureBacking())
	require.NoError(t, os.WriteFile(f.store.Path(), []byte("{corrupted"), 0o644))

	r.GET("/api/lost-items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `[]`, r.Body.String())
	})
}

func TestRequestLostItemsCreate(t *testing.T) {
	engine, _, r := setup(t)

	var created model.LostItem
	r.POST("/api/lost-items").
		SetBody(wallet).
		SetHeader(gofight.H{"Content-Type": "application/json"}).
		Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusCreated, r.Code)

			err := json.Unmarshal(r.Body.Bytes(), &created)
			assert.NoError(t, err)
		})

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Wallet", created.Title)
	assert.Equal(t, "Brown leather wallet", created.Description)
	assert.Equal(t, "Documents", created.Category)
	assert.Equal(t, "Gym", created.Location)
	assert.Equal(t, "2025-11-02", created.Date)
	assert.Equal(t, "2025-11-02T10:01:00.000Z", created.CreatedAt)

	r.GET("/api/lost-items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var items []model.LostItem
		err := json.Unmarshal(r.Body.Bytes(), &items)
		assert.NoError(t, err)
		assert.Equal(t, []model.LostItem{created}, items)
	})
}

func TestRequestLostItemsCreate_MissingFields(t *testing.T) {
	engine, f, r := setup(t)

	payloads := []string{
		`{"title":"Keys"}`,
		`{"title":"Wallet","description":"Brown leather wallet","category":"Documents","location":"Gym"}`,
		`{"title":"Wallet","description":"","category":"Documents","location":"Gym","date":"2025-11-02"}`,
		`{"title":"Wallet","description":"Brown leather wallet","category":null,"location":"Gym","date":"2025-11-02"}`,
		`{}`,
		`[]`,
		``,
	}

	for _, payload := range payloads {
		r.POST("/api/lost-items").
			SetBody(payload).
			SetHeader(gofight.H{"Content-Type": "application/json"}).
			Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
				assert.Equal(t, http.StatusBadRequest, r.Code, payload)
				assert.JSONEq(t, `{"error":"Missing required fields"}`, r.Body.String(), payload)
			})
	}

	assert.Empty(t, f.store.ReadAll())
}

func TestRequestLostItemsCreate_InvalidJSON(t *testing.T) {
	engine, f, r := setup(t)

	r.POST("/api/lost-items").
		SetBody(`{"title":"Wallet",`).
		SetHeader(gofight.H{"Content-Type": "application/json"}).
		Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusBadRequest, r.Code)
			assert.JSONEq(t, `{"error":"Invalid JSON payload"}`, r.Body.String())
		})

	assert.Empty(t, f.store.ReadAll())
}

func TestRequestLostItemsCreate_Sequence(t *testing.T) {
	engine, _, r := setup(t)

	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"title":"Item %d","description":"Lost near the library","category":"other","location":"Library","date":"2025-11-0%d"}`, i, i)

		r.POST("/api/lost-items").
			SetBody(body).
			SetHeader(gofight.H{"Content-Type": "application/json"}).
			Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
				assert.Equal(t, http.StatusCreated, r.Code)

				var item model.LostItem
				err := json.Unmarshal(r.Body.Bytes(), &item)
				assert.NoError(t, err)
				assert.Equal(t, i, item.ID)
			})
	}

	var first, second string
	r.GET("/api/lost-items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var items []model.LostItem
		err := json.Unmarshal(r.Body.Bytes(), &items)
		assert.NoError(t, err)
		require.Len(t, items, 3)

		// Newest first.
		assert.Equal(t, 3, items[0].ID)
		assert.Equal(t, 2, items[1].ID)
		assert.Equal(t, 1, items[2].ID)
		first = r.Body.String()
	})

	r.GET("/api/lost-items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		second = r.Body.String()
	})
	assert.Equal(t, first, second)
}

func TestRequestLostItemsCreate_StrictWrites(t *testing.T) {
	blocked := t.TempDir() // A directory can't be replaced by the backing file.

	for _, tt := range []struct {
		strict bool
		code   int
	}{
		{strict: false, code: http.StatusCreated},
		{strict: true, code: http.StatusInternalServerError},
	} {
		engine := server.EchoEngine(server.Controller{
			Version:     "test",
			ServiceName: "test-foundit",
			Database: database.JSONOpen(blocked, database.Options{
				Logger:       logger.Discard(),
				StrictWrites: tt.strict,
			}),
			Logger: logger.Discard(),
		})

		gofight.New().POST("/api/lost-items").
			SetBody(wallet).
			SetHeader(gofight.H{"Content-Type": "application/json"}).
			Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
				assert.Equal(t, tt.code, r.Code)
				if tt.strict {
					assert.Contains(t, r.Body.String(), "Unexpected error (id: ")
				}
			})
	}
}

func TestRequestLostItemsCreate_HandEditedStore(t *testing.T) {
	engine, f, r := setup(t)
	require.NoError(t, f.store.EnsureBacking())
	require.NoError(t, os.WriteFile(f.store.Path(), []byte(`[
  {"id":1,"title":"Umbrella","description":"Black","category":"Misc","location":"Library","date":20251102,"createdAt":"2025-11-01T09:00:00.000Z"},
  {"id":2,"title":"Keys","description":"Car keys","category":"Keys","location":"Gym","date":"2025-11-02","createdAt":"2025-11-02T09:00:00.000Z"}
]`), 0o644))

	r.GET("/api/lost-items").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var items []model.LostItem
		err := json.Unmarshal(r.Body.Bytes(), &items)
		assert.NoError(t, err)
		if assert.Len(t, items, 2) {
			assert.Equal(t, 2, items[0].ID)
			assert.Equal(t, 1, items[1].ID)
			assert.Equal(t, "20251102", items[1].Date)
		}
	})

	r.POST("/api/lost-items").
		SetBody(`{"title":"","title":"Wallet","description":"Brown leather wallet","category":"Documents","location":"Gym","date":"2025-11-02"}`).
		SetHeader(gofight.H{"Content-Type": "application/json"}).
		Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusCreated, r.Code)

			var created model.LostItem
			err := json.Unmarshal(r.Body.Bytes(), &created)
			assert.NoError(t, err)
			assert.Equal(t, 3, created.ID)
			assert.Equal(t, "Wallet", created.Title)
		})

	assert.Len(t, f.store.ReadAll(), 3)
}
