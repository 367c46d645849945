// Package xlsxio is the spreadsheet boundary: it turns uploaded xlsx bytes
// into roster tables and renders analysis results back into downloadable
// workbooks. Everything here deals in display strings; parsing stays in core
package xlsxio

import (
	"strings"

	"golang.org/x/text/width"

	"jubilee/internal/core/roster"
)

// canonicalHeaders maps width-folded header text back to the canonical
// column names core expects
var canonicalHeaders = func() map[string]string {
	m := make(map[string]string)
	for _, c := range append(append([]string{}, roster.RequiredColumns...), roster.ColEmployeeType) {
		m[foldHeader(c)] = c
	}
	return m
}()

// foldHeader normalizes a header cell for matching: fullwidth forms to
// their halfwidth equivalents, surrounding space trimmed
func foldHeader(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}

// canonicalize returns the canonical column name when the folded header
// matches one, otherwise the trimmed original
func canonicalize(s string) string {
	if c, ok := canonicalHeaders[foldHeader(s)]; ok {
		return c
	}
	return strings.TrimSpace(s)
}
