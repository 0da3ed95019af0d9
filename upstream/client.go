// Package upstream is the portal's only gateway to the platform REST API.
// Every call authenticates with the caller's bearer token, serializes date
// filters in the platform's MM-DD-YYYY format, and maps failures into a
// typed error taxonomy. Nothing here caches, retries, or deduplicates:
// a failed call surfaces to the user, who retries manually.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/centerdesk/portal/models"
)

// Client talks to the platform API on behalf of a signed-in operator.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the platform API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Upload is a file part forwarded inside a multipart request.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Reader      io.Reader
}

// BookingQuery filters the booking list.
type BookingQuery struct {
	Status string
	From   *time.Time
	To     *time.Time
}

// InvoiceQuery filters the invoice list.
type InvoiceQuery struct {
	Status string
	Search string
	From   *time.Time
	To     *time.Time
}

// MovementQuery filters and pages the wallet movement list.
type MovementQuery struct {
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

// ─── Bookings ───────────────────────────────────────────────────────────────

func (c *Client) ListBookings(ctx context.Context, token string, q BookingQuery) ([]models.Booking, error) {
	query := url.Values{}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	addDateRange(query, q.From, q.To)

	var out []models.Booking
	err := c.do(ctx, token, http.MethodGet, "/bookings", query, nil, &out, "bookings")
	return out, err
}

func (c *Client) CancelBooking(ctx context.Context, token, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.do(ctx, token, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/cancel", nil, body, nil, "bookings")
}

// ─── Invoices ───────────────────────────────────────────────────────────────

func (c *Client) ListInvoices(ctx context.Context, token string, q InvoiceQuery) ([]models.Invoice, error) {
	query := url.Values{}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	addDateRange(query, q.From, q.To)

	var out []models.Invoice
	err := c.do(ctx, token, http.MethodGet, "/invoices", query, nil, &out, "invoices")
	return out, err
}

func (c *Client) GetInvoice(ctx context.Context, token, id string) (models.Invoice, error) {
	var out models.Invoice
	err := c.do(ctx, token, http.MethodGet, "/invoices/"+url.PathEscape(id), nil, nil, &out, "invoices")
	return out, err
}

func (c *Client) CreateInvoice(ctx context.Context, token string, inv models.Invoice) (models.Invoice, error) {
	var out models.Invoice
	err := c.do(ctx, token, http.MethodPost, "/invoices", nil, inv, &out, "invoices")
	return out, err
}

func (c *Client) UpdateInvoice(ctx context.Context, token, id string, inv models.Invoice) (models.Invoice, error) {
	var out models.Invoice
	err := c.do(ctx, token, http.MethodPut, "/invoices/"+url.PathEscape(id), nil, inv, &out, "invoices")
	return out, err
}

// ─── Promotions ─────────────────────────────────────────────────────────────

func (c *Client) ListPromotions(ctx context.Context, token string) ([]models.Promotion, error) {
	var out []models.Promotion
	err := c.do(ctx, token, http.MethodGet, "/promotions", nil, nil, &out, "promotions")
	return out, err
}

func (c *Client) GetPromotion(ctx context.Context, token, id string) (models.Promotion, error) {
	var out models.Promotion
	err := c.do(ctx, token, http.MethodGet, "/promotions/"+url.PathEscape(id), nil, nil, &out, "promotions")
	return out, err
}

func (c *Client) CreatePromotion(ctx context.Context, token string, fields map[string]string, image *Upload) (models.Promotion, error) {
	var out models.Promotion
	err := c.doMultipart(ctx, token, http.MethodPost, "/promotions", fields, image, &out, "promotions")
	return out, err
}

func (c *Client) UpdatePromotion(ctx context.Context, token, id string, fields map[string]string, image *Upload) (models.Promotion, error) {
	var out models.Promotion
	err := c.doMultipart(ctx, token, http.MethodPut, "/promotions/"+url.PathEscape(id), fields, image, &out, "promotions")
	return out, err
}

func (c *Client) DeletePromotion(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/promotions/"+url.PathEscape(id), nil, nil, nil, "promotions")
}

// ─── Check reports ──────────────────────────────────────────────────────────

func (c *Client) ListCheckReports(ctx context.Context, token string) ([]models.CheckReport, error) {
	var out []models.CheckReport
	err := c.do(ctx, token, http.MethodGet, "/check-reports", nil, nil, &out, "check_reports")
	return out, err
}

func (c *Client) GetCheckReport(ctx context.Context, token, id string) (models.CheckReport, error) {
	var out models.CheckReport
	err := c.do(ctx, token, http.MethodGet, "/check-reports/"+url.PathEscape(id), nil, nil, &out, "check_reports")
	return out, err
}

func (c *Client) CreateCheckReport(ctx context.Context, token string, report models.CheckReport) (models.CheckReport, error) {
	var out models.CheckReport
	err := c.do(ctx, token, http.MethodPost, "/check-reports", nil, report, &out, "check_reports")
	return out, err
}

func (c *Client) DeleteCheckReport(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/check-reports/"+url.PathEscape(id), nil, nil, nil, "check_reports")
}

// ─── Center profile ─────────────────────────────────────────────────────────

func (c *Client) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, token, http.MethodGet, "/center/profile", nil, nil, &out, "profile")
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, token string, fields map[string]string, logo *Upload) (models.Profile, error) {
	var out models.Profile
	err := c.doMultipart(ctx, token, http.MethodPut, "/center/profile", fields, logo, &out, "profile")
	return out, err
}

// ─── Booking capacity plans ─────────────────────────────────────────────────

func (c *Client) ListCapacityPlans(ctx context.Context, token string) ([]models.CapacityPlan, error) {
	var out []models.CapacityPlan
	err := c.do(ctx, token, http.MethodGet, "/booking-plans", nil, nil, &out, "booking_plans")
	return out, err
}

func (c *Client) CreateCapacityPlan(ctx context.Context, token string, plan models.CapacityPlan) (models.CapacityPlan, error) {
	var out models.CapacityPlan
	err := c.do(ctx, token, http.MethodPost, "/booking-plans", nil, plan, &out, "booking_plans")
	return out, err
}

func (c *Client) UpdateCapacityPlan(ctx context.Context, token, id string, plan models.CapacityPlan) (models.CapacityPlan, error) {
	var out models.CapacityPlan
	err := c.do(ctx, token, http.MethodPut, "/booking-plans/"+url.PathEscape(id), nil, plan, &out, "booking_plans")
	return out, err
}

// ─── Price lists ────────────────────────────────────────────────────────────

func (c *Client) GetPriceList(ctx context.Context, token string) (models.PriceList, error) {
	var out models.PriceList
	err := c.do(ctx, token, http.MethodGet, "/price-lists", nil, nil, &out, "price_lists")
	return out, err
}

func (c *Client) CreatePriceList(ctx context.Context, token string, list models.PriceList) (models.PriceList, error) {
	var out models.PriceList
	err := c.do(ctx, token, http.MethodPost, "/price-lists", nil, list, &out, "price_lists")
	return out, err
}

// ─── Wallet ─────────────────────────────────────────────────────────────────

func (c *Client) WalletBalance(ctx context.Context, token string) (models.WalletBalance, error) {
	var out models.WalletBalance
	err := c.do(ctx, token, http.MethodGet, "/wallet/balance", nil, nil, &out, "wallet")
	return out, err
}

func (c *Client) WalletMovements(ctx context.Context, token string, q MovementQuery) ([]models.WalletMovement, error) {
	query := url.Values{}
	addDateRange(query, q.From, q.To)
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(q.PerPage))
	}

	var out []models.WalletMovement
	err := c.do(ctx, token, http.MethodGet, "/wallet/movements", query, nil, &out, "wallet")
	return out, err
}

// ─── Reports ────────────────────────────────────────────────────────────────

func (c *Client) GenerateReport(ctx context.Context, token string, req models.ReportRequest) (models.ReportFile, error) {
	var out models.ReportFile
	err := c.do(ctx, token, http.MethodPost, "/reports/generate", nil, req, &out, "reports")
	return out, err
}

// ─── Plumbing ───────────────────────────────────────────────────────────────

func addDateRange(query url.Values, from, to *time.Time) {
	if from != nil {
		query.Set("date_from", FormatDate(*from))
	}
	if to != nil {
		query.Set("date_to", FormatDate(*to))
	}
}

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out any, resource string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", resource, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, token, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out, resource)
}

func (c *Client) doMultipart(ctx context.Context, token, method, path string, fields map[string]string, file *Upload, out any, resource string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("writing %s form field: %w", resource, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("writing %s form file: %w", resource, err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("copying %s form file: %w", resource, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing %s form: %w", resource, err)
	}

	req, err := c.newRequest(ctx, token, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out, resource)
}

func (c *Client) newRequest(ctx context.Context, token, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("building request %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

func (c *Client) send(req *http.Request, out any, resource string) (err error) {
	start := time.Now()
	defer func() {
		requestSeconds.WithLabelValues(resource).Observe(time.Since(start).Seconds())
		observe(resource, err)
	}()

	resp, doErr := c.http.Do(req)
	if doErr != nil {
		err = &Error{Kind: KindNetwork, Message: doErr.Error()}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = &Error{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: extractMessage(resp.Body),
		}
		return err
	}

	if out != nil {
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
			err = &Error{Kind: KindServer, Status: resp.StatusCode, Message: "unreadable response"}
			return err
		}
	}
	return nil
}

// extractMessage pulls the server's human message out of an error body on a
// best-effort basis. The platform is not consistent about the field name.
func extractMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
