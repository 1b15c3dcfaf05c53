package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/valyala/fastjson"
)

// A ValueBinder can be filled from a parsed JSON request body.
type ValueBinder interface {
	BindValue(v *fastjson.Value)
}

type binder struct {
	echo.DefaultBinder
	methodsWithBody map[string]bool
}

// NewBinder returns a wrapp of the default binder implementation with extra checks.
// For methods with a body, an empty body is read as an empty JSON object and
// a malformed one is rejected. Targets implementing ValueBinder are filled from the parsed body.
func NewBinder() echo.Binder {
	return &binder{
		methodsWithBody: map[string]bool{
			http.MethodPost:  true,
			http.MethodPatch: true,
			http.MethodPut:   true,
		},
	}
}

// Bind implements the echo.Bind interface.
func (b *binder) Bind(i interface{}, c echo.Context) (err error) {
	if !b.methodsWithBody[c.Request().Method] {
		return b.DefaultBinder.Bind(i, c)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read request body").SetInternal(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON payload").SetInternal(err)
	}

	if vb, ok := i.(ValueBinder); ok {
		vb.BindValue(v)
		return nil
	}

	if err = json.Unmarshal(body, i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON payload").SetInternal(err)
	}
	return nil
}
