package roster

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// hireDateLayouts are tried in order. Non-padded month and day verbs also
// accept zero-padded input, so "2021-05-04" and "2021-5-4" both land on the
// first layout
var hireDateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2006年1月2日",
	"2006-1-2 15:04:05",
	"2006/1/2 15:04:05",
	time.RFC3339,
}

// excelEpoch is day zero of the 1900 date system as serialized by most
// spreadsheet tools (the off-by-two accounts for the fictional 1900-02-29)
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var errUnparsableDate = errors.New("unrecognized date format")

// parseHireDate turns a raw cell into a UTC date. Accepts the common textual
// layouts plus bare spreadsheet serial numbers
func parseHireDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errUnparsableDate
	}

	for _, layout := range hireDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	// spreadsheet serial, possibly with a time fraction we discard
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 200000 {
		return excelEpoch.AddDate(0, 0, int(serial)), nil
	}

	return time.Time{}, errUnparsableDate
}
