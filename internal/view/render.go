package view

import (
	"encoding/base64"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/suar-net/suar-dash/internal/model"
)

const (
	NotLogged     = "Not logged."
	NoErrors      = "No errors."
	DecodeFailed  = "Unable to decode."
	ellipsis      = "..."
	maxURLLength  = 60
	urlKeepLength = 57
	rawKeepLength = 100
)

// Cell is a table cell with an optional hover tooltip.
type Cell struct {
	Text  string
	Title string
}

// Row is the display form of one ProxyRequest.
type Row struct {
	ID                   string
	Time                 string
	Error                string
	HasError             bool
	ClientIP             string
	ProxyAuthorization   string
	Method               string
	URL                  Cell
	RawHTTPRequest       Cell
	RawHTTPResponse      Cell
	ProcessingTime       string
	UpstreamResponseTime string
}

// Renderer derives table rows from records.
type Renderer struct {
	Location   *time.Location
	TimeLayout string
	Logger     *log.Logger
}

func (r Renderer) Rows(records []model.ProxyRequest) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, r.Row(rec))
	}
	return rows
}

func (r Renderer) Row(rec model.ProxyRequest) Row {
	row := Row{
		ID:                   rec.ID,
		Time:                 r.TimeText(rec.Time),
		Error:                NoErrors,
		ClientIP:             deref(rec.ClientIP),
		ProxyAuthorization:   deref(rec.ProxyAuthorization),
		Method:               deref(rec.Method),
		URL:                  URLCell(rec.URL),
		ProcessingTime:       MillisText(rec.ProcessingTime),
		UpstreamResponseTime: MillisText(rec.UpstreamResponseTime),
	}
	if rec.Error != nil {
		row.Error = *rec.Error
		row.HasError = true
	}

	var err error
	if row.RawHTTPRequest, err = RawCell(rec.RawHTTPRequest); err != nil {
		r.logf("WARN: proxy request %s: raw request: %v", rec.ID, err)
	}
	if row.RawHTTPResponse, err = RawCell(rec.RawHTTPResponse); err != nil {
		r.logf("WARN: proxy request %s: raw response: %v", rec.ID, err)
	}
	return row
}

// TimeText formats seconds since epoch in the renderer's location and layout.
func (r Renderer) TimeText(seconds *float64) string {
	if seconds == nil {
		return NotLogged
	}
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	layout := r.TimeLayout
	if layout == "" {
		layout = time.DateTime
	}

	whole, frac := math.Modf(*seconds)
	return time.Unix(int64(whole), int64(frac*1e9)).In(loc).Format(layout)
}

func (r Renderer) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// URLCell shortens URLs longer than 60 characters to 57 characters plus an
// ellipsis. The tooltip always carries the full URL.
func URLCell(u *string) Cell {
	if u == nil {
		return Cell{}
	}
	return Cell{Text: truncate(*u, maxURLLength, urlKeepLength), Title: *u}
}

// RawCell decodes a base64 payload. The cell shows the first 100 decoded
// characters followed by an ellipsis; the tooltip shows all of it. A payload
// that is not valid base64 renders DecodeFailed and returns the error.
func RawCell(encoded *string) (Cell, error) {
	if encoded == nil {
		return Cell{}, nil
	}
	raw, err := base64.StdEncoding.DecodeString(*encoded)
	if err != nil {
		return Cell{Text: DecodeFailed}, err
	}
	decoded := string(raw)
	return Cell{Text: prefix(decoded, rawKeepLength) + ellipsis, Title: decoded}, nil
}

func MillisText(ms *float64) string {
	if ms == nil {
		return NotLogged
	}
	return strconv.FormatFloat(*ms, 'f', -1, 64) + " ms"
}

func truncate(s string, limit, keep int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:keep]) + ellipsis
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
