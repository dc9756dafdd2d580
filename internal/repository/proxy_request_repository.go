package repository

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"

	"github.com/suar-net/suar-dash/internal/model"
)

const proxyRequestColumns = `id, clientIP, proxyAuthorization, rawHTTPRequest, rawHTTPResponse, method, url, error, time, upstreamResponseTime, processingTime`

// proxyRequestRepository reads the ProxyRequest table written by the proxy.
type proxyRequestRepository struct {
	db *sql.DB
}

func NewProxyRequestRepository(db *sql.DB) IProxyRequestRepository {
	return &proxyRequestRepository{db: db}
}

// GetAll returns every stored proxy request. Ids start with the capture time
// in milliseconds, so ordering by id is chronological.
func (r *proxyRequestRepository) GetAll(ctx context.Context) ([]model.ProxyRequest, error) {
	query := `SELECT ` + proxyRequestColumns + ` FROM ProxyRequest ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []model.ProxyRequest{}
	for rows.Next() {
		pr, err := scanProxyRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *proxyRequestRepository) GetByID(ctx context.Context, id string) (*model.ProxyRequest, error) {
	query := `SELECT ` + proxyRequestColumns + ` FROM ProxyRequest WHERE id = $1`

	pr, err := scanProxyRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pr, nil
}

func (r *proxyRequestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ProxyRequest WHERE id = $1`, id)
	return err
}

func (r *proxyRequestRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ProxyRequest`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProxyRequest(row rowScanner) (*model.ProxyRequest, error) {
	var (
		pr                                model.ProxyRequest
		rawRequest, rawResponse           []byte
		proxyTime, upstreamTime, procTime sql.NullInt64
	)
	if err := row.Scan(
		&pr.ID,
		&pr.ClientIP,
		&pr.ProxyAuthorization,
		&rawRequest,
		&rawResponse,
		&pr.Method,
		&pr.URL,
		&pr.Error,
		&proxyTime,
		&upstreamTime,
		&procTime,
	); err != nil {
		return nil, err
	}

	pr.RawHTTPRequest = encodeBytes(rawRequest)
	pr.RawHTTPResponse = encodeBytes(rawResponse)
	pr.Time = nullFloat(proxyTime)
	pr.UpstreamResponseTime = nullFloat(upstreamTime)
	pr.ProcessingTime = nullFloat(procTime)
	return &pr, nil
}

func encodeBytes(b []byte) *string {
	if b == nil {
		return nil
	}
	s := base64.StdEncoding.EncodeToString(b)
	return &s
}

func nullFloat(n sql.NullInt64) *float64 {
	if !n.Valid {
		return nil
	}
	f := float64(n.Int64)
	return &f
}
