package view

import (
	"bytes"
	"encoding/base64"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suar-net/suar-dash/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestRenderer_AllNullRecord(t *testing.T) {
	row := Renderer{Location: time.UTC}.Row(model.ProxyRequest{ID: "a"})

	assert.Equal(t, "a", row.ID)
	assert.Equal(t, NotLogged, row.Time)
	assert.Equal(t, NoErrors, row.Error)
	assert.False(t, row.HasError)
	assert.Empty(t, row.ClientIP)
	assert.Empty(t, row.ProxyAuthorization)
	assert.Empty(t, row.Method)
	assert.Equal(t, Cell{}, row.URL)
	assert.Equal(t, Cell{}, row.RawHTTPRequest)
	assert.Equal(t, Cell{}, row.RawHTTPResponse)
	assert.Equal(t, NotLogged, row.ProcessingTime)
	assert.Equal(t, NotLogged, row.UpstreamResponseTime)
}

func TestRenderer_TimeText(t *testing.T) {
	r := Renderer{Location: time.UTC, TimeLayout: "1/2/2006, 3:04:05 PM"}

	assert.Equal(t, NotLogged, r.TimeText(nil))
	assert.Equal(t, "1/1/1970, 12:00:00 AM", r.TimeText(ptr(0.0)))
	assert.Equal(t, "11/14/2023, 10:13:20 PM", r.TimeText(ptr(1700000000.0)))
	assert.Equal(t, r.TimeText(ptr(1700000000.0)), r.TimeText(ptr(1700000000.0)))
}

func TestRenderer_Error(t *testing.T) {
	row := Renderer{}.Row(model.ProxyRequest{ID: "a", Error: ptr("dial tcp: timeout")})
	assert.True(t, row.HasError)
	assert.Equal(t, "dial tcp: timeout", row.Error)
}

func TestURLCell(t *testing.T) {
	assert.Equal(t, Cell{}, URLCell(nil))

	short := "http://example.com/" + strings.Repeat("a", 41)
	require.Len(t, short, 60)
	assert.Equal(t, Cell{Text: short, Title: short}, URLCell(&short))

	long := "http://example.com/" + strings.Repeat("b", 51)
	require.Len(t, long, 70)
	cell := URLCell(&long)
	assert.Equal(t, long[:57]+"...", cell.Text)
	assert.Equal(t, long, cell.Title)
}

func TestRawCell(t *testing.T) {
	cell, err := RawCell(nil)
	require.NoError(t, err)
	assert.Equal(t, Cell{}, cell)

	request := "GET / HTTP/1.1\r\nHost: example.com\r\nUser-Agent: " + strings.Repeat("x", 120) + "\r\n\r\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(request))
	cell, err = RawCell(&encoded)
	require.NoError(t, err)
	assert.Equal(t, request[:100]+"...", cell.Text)
	assert.Equal(t, request, cell.Title)

	short := base64.StdEncoding.EncodeToString([]byte("HTTP/1.1 204 No Content"))
	cell, err = RawCell(&short)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 204 No Content...", cell.Text)
}

func TestRawCell_Malformed(t *testing.T) {
	bad := "not base64!"
	cell, err := RawCell(&bad)
	assert.Error(t, err)
	assert.Equal(t, Cell{Text: DecodeFailed}, cell)

	var buf bytes.Buffer
	row := Renderer{Logger: log.New(&buf, "", 0)}.Row(model.ProxyRequest{ID: "a", RawHTTPResponse: &bad})
	assert.Equal(t, DecodeFailed, row.RawHTTPResponse.Text)
	assert.Contains(t, buf.String(), "proxy request a: raw response")
}

func TestMillisText(t *testing.T) {
	assert.Equal(t, NotLogged, MillisText(nil))
	assert.Equal(t, "12 ms", MillisText(ptr(12.0)))
	assert.Equal(t, "0.5 ms", MillisText(ptr(0.5)))
}

func TestRenderer_RowsKeepOrder(t *testing.T) {
	rows := Renderer{}.Rows([]model.ProxyRequest{{ID: "c"}, {ID: "a"}, {ID: "b"}})
	require.Len(t, rows, 3)
	assert.Equal(t, "c", rows[0].ID)
	assert.Equal(t, "a", rows[1].ID)
	assert.Equal(t, "b", rows[2].ID)
}
