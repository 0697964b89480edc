package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotFoundMessage is returned for any path that is not a known route
const NotFoundMessage = "Not Found. Use path add or sub"

// ErrorResponse is the payload of every JSON error
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONErrorHandler renders errors as {"error": "..."}. It replaces echo's
// default handler so validation failures, unknown routes and rate limiting
// all share one body shape.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
		if code == http.StatusNotFound {
			message = NotFoundMessage
		}
	} else {
		log.Printf("[ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, ErrorResponse{Error: message})
	}
	if err != nil {
		log.Printf("[ERROR] Failed to write error response: %v", err)
	}
}
