package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorHandler returns the echo HTTPErrorHandler for the whole API surface.
// Every failure becomes a JSON body of the form {"error": "..."} with the
// status derived from the error's kind. Unclassified errors surface as a
// generic 500 so internal detail never leaks into responses.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := "Internal server error"

		var appErr *Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Kind.Status()
			msg = appErr.Msg
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			if werr := c.NoContent(status); werr != nil {
				logger.Error().Err(werr).Msg("write error response")
			}
			return
		}
		if werr := c.JSON(status, map[string]string{"error": msg}); werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}
