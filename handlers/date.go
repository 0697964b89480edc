package handlers

import (
	"errors"
	"github.com/cric2000/calenderService/services"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// timeNow is the base for requests that carry no date
var timeNow = time.Now

// DateResponse is the success payload of the date endpoints
type DateResponse struct {
	Date string `json:"date"`
}

// AddDateHandler handles /add?type=days|weeks&value=N[&date=dd-MMM-yyyy]
func AddDateHandler(c echo.Context) error {
	return dateHandler(c, services.DirectionAdd)
}

// SubDateHandler handles /sub with the same parameters as /add
func SubDateHandler(c echo.Context) error {
	return dateHandler(c, services.DirectionSubtract)
}

func dateHandler(c echo.Context, dir services.Direction) error {
	params := services.DateParams{
		Type:  lastQueryParam(c, "type"),
		Value: lastQueryParam(c, "value"),
		Date:  lastQueryParam(c, "date"),
	}

	date, err := services.ComputeDate(dir, params, timeNow())
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(verr.StatusCode(), verr.Message)
		}
		return err
	}

	return c.JSON(http.StatusOK, DateResponse{Date: date})
}

// lastQueryParam returns the last value given for key, so repeated
// parameters are last-wins
func lastQueryParam(c echo.Context, key string) string {
	values := c.QueryParams()[key]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}
