package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/foundit/internal/apperror"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler returns a handler that formats rendered errors.
func HTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		switch err := err.(type) {
		case *echo.HTTPError:
			if err.Internal != nil {
				log.Warnf("Error [ECHO]: %s", err.Internal)
			}
			_ = c.JSON(err.Code, echo.Map{
				"error": err.Message,
			})
		case *apperror.Error:
			status := apperror.StatusCode(err)
			if status < 500 {
				_ = c.JSON(status, err)
				return
			}

			internal(log, err, c)
		default:
			internal(log, err, c)
		}
	}
}

func internal(log logrus.FieldLogger, err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	log.Errorf("Error [%s]: %s", id, err.Error())

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"error": fmt.Sprintf("Unexpected error (id: %s)", id),
	})
}
