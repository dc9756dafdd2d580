package repository

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow assigns its values to Scan destinations in column order. A nil
// value is a SQL NULL.
type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	if len(dest) != len(f.values) {
		return fmt.Errorf("expected %d destinations, got %d", len(f.values), len(dest))
	}
	for i, d := range dest {
		v := f.values[i]
		switch d := d.(type) {
		case *string:
			*d = v.(string)
		case **string:
			if v == nil {
				*d = nil
				continue
			}
			s := v.(string)
			*d = &s
		case *[]byte:
			if v == nil {
				*d = nil
				continue
			}
			*d = v.([]byte)
		case *sql.NullInt64:
			if v == nil {
				*d = sql.NullInt64{}
				continue
			}
			*d = sql.NullInt64{Int64: v.(int64), Valid: true}
		default:
			return fmt.Errorf("unsupported destination %T", d)
		}
	}
	return nil
}

func TestScanProxyRequest(t *testing.T) {
	rawRequest := []byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n")
	row := fakeRow{values: []any{
		"1700000000000-abc",
		"10.0.0.7",
		nil,
		rawRequest,
		nil,
		"GET",
		"http://example.com/",
		nil,
		int64(1700000000),
		int64(0),
		nil,
	}}

	pr, err := scanProxyRequest(row)
	require.NoError(t, err)

	assert.Equal(t, "1700000000000-abc", pr.ID)
	assert.Equal(t, "10.0.0.7", *pr.ClientIP)
	assert.Nil(t, pr.ProxyAuthorization)
	assert.Equal(t, "GET", *pr.Method)
	assert.Equal(t, "http://example.com/", *pr.URL)
	assert.Nil(t, pr.Error)

	require.NotNil(t, pr.RawHTTPRequest)
	assert.Equal(t, base64.StdEncoding.EncodeToString(rawRequest), *pr.RawHTTPRequest)
	assert.Nil(t, pr.RawHTTPResponse)

	require.NotNil(t, pr.Time)
	assert.Equal(t, float64(1700000000), *pr.Time)
	require.NotNil(t, pr.UpstreamResponseTime)
	assert.Equal(t, float64(0), *pr.UpstreamResponseTime)
	assert.Nil(t, pr.ProcessingTime)
}

func TestScanProxyRequest_EmptyBytes(t *testing.T) {
	row := fakeRow{values: []any{"a", nil, nil, []byte{}, []byte{0xff, 0x00}, nil, nil, nil, nil, nil, nil}}

	pr, err := scanProxyRequest(row)
	require.NoError(t, err)

	require.NotNil(t, pr.RawHTTPRequest)
	assert.Equal(t, "", *pr.RawHTTPRequest)
	assert.Equal(t, "/wA=", *pr.RawHTTPResponse)
	assert.Nil(t, pr.Time)
}

func TestScanProxyRequest_Error(t *testing.T) {
	_, err := scanProxyRequest(fakeRow{err: sql.ErrNoRows})
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
