package http

import (
	"net/http"
	"strconv"
)

// periodFromQuery parses the month/year pair every period-scoped endpoint
// takes as query parameters.
func periodFromQuery(r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}
