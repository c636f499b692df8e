// Package dummyjson implements repository.ProductRepository over the public
// DummyJSON-style catalog HTTP API.
package dummyjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shopflow/storekit/domain"
	"github.com/shopflow/storekit/pkg/apperr"
	"github.com/shopflow/storekit/pkg/result"
	"github.com/shopflow/storekit/repository"
)

// Client fetches catalog data over HTTP. It never returns a raw error:
// every fault is classified into the apperr taxonomy at this boundary.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
}

// New builds a catalog client for the given base URL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var _ repository.ProductRepository = (*Client)(nil)

func (c *Client) List(ctx context.Context, page repository.Page) result.Result[domain.ProductPage] {
	var out domain.ProductPage
	if err := c.get(ctx, "/products", pageValues(page), &out, "products", ""); err != nil {
		return result.Failure[domain.ProductPage](err)
	}
	return result.Success(out)
}

func (c *Client) GetByID(ctx context.Context, id int) result.Result[domain.Product] {
	var out domain.Product
	if err := c.get(ctx, "/products/"+strconv.Itoa(id), nil, &out, "product", strconv.Itoa(id)); err != nil {
		return result.Failure[domain.Product](err)
	}
	return result.Success(out)
}

func (c *Client) Search(ctx context.Context, query string, page repository.Page) result.Result[domain.ProductPage] {
	vals := pageValues(page)
	vals.Set("q", query)
	var out domain.ProductPage
	if err := c.get(ctx, "/products/search", vals, &out, "products", ""); err != nil {
		return result.Failure[domain.ProductPage](err)
	}
	return result.Success(out)
}

func (c *Client) ListByCategory(ctx context.Context, category string, page repository.Page) result.Result[domain.ProductPage] {
	var out domain.ProductPage
	if err := c.get(ctx, "/products/category/"+url.PathEscape(category), pageValues(page), &out, "category", category); err != nil {
		return result.Failure[domain.ProductPage](err)
	}
	return result.Success(out)
}

func (c *Client) Categories(ctx context.Context) result.Result[[]domain.Category] {
	var out []domain.Category
	if err := c.get(ctx, "/products/categories", nil, &out, "categories", ""); err != nil {
		return result.Failure[[]domain.Category](err)
	}
	return result.Success(out)
}

// get performs one GET round-trip and decodes the JSON body into out.
// resourceType and resourceID feed the not-found classification.
func (c *Client) get(ctx context.Context, path string, vals url.Values, out any, resourceType, resourceID string) apperr.AppError {
	u := c.baseURL + path
	if len(vals) > 0 {
		u += "?" + vals.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperr.From(err, "invalid catalog request")
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", zap.String("url", u), zap.Error(err))
		return c.classifyTransport(err, u)
	}
	defer resp.Body.Close()

	c.logger.Debug("catalog request",
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode != http.StatusOK {
		return classifyStatus(resp.StatusCode, u, resourceType, resourceID)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.NewData("malformed catalog response", err)
	}
	return nil
}

// classifyTransport maps round-trip faults: deadline and net timeouts become
// timeout failures, dial-level faults become connection failures, anything
// else goes through the generic wrap.
func (c *Client) classifyTransport(err error, u string) apperr.AppError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperr.NewTimeout("catalog request timed out", c.timeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return apperr.NewTimeout("catalog request timed out", c.timeout, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return apperr.NewConnection("catalog unreachable", u, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return apperr.NewConnection("catalog connection failed", u, err)
	}
	return apperr.From(err)
}

func classifyStatus(status int, u, resourceType, resourceID string) apperr.AppError {
	switch {
	case status == http.StatusNotFound:
		return apperr.NewNotFound(fmt.Sprintf("%s not found", resourceType), resourceType, resourceID)
	case status == http.StatusUnauthorized:
		return apperr.NewAuth("catalog authentication required")
	case status == http.StatusForbidden:
		return apperr.NewPermission("catalog access denied", "", "")
	case status >= 500:
		return apperr.NewServer("catalog server error", status, u)
	default:
		return apperr.NewNetwork("unexpected catalog response", status, u)
	}
}

func pageValues(page repository.Page) url.Values {
	vals := url.Values{}
	if page.Limit > 0 {
		vals.Set("limit", strconv.Itoa(page.Limit))
	}
	if page.Skip > 0 {
		vals.Set("skip", strconv.Itoa(page.Skip))
	}
	return vals
}
