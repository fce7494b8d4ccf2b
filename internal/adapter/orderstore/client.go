package orderstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/movecrm/backoffice/internal/domain/model"
)

// StatusError represents a non-2xx response from the order store.
type StatusError struct {
	Code int
	Body string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("order store rejected request: %d %s", e.Code, e.Body)
}

// Client exposes the operations the backoffice consumes from the
// moving-company backend.
type Client interface {
	OrderDetails(ctx context.Context) ([]model.OrderRecord, error)
	SearchOrders(ctx context.Context, customerName string) ([]model.OrderRecord, error)
	CreateOrder(ctx context.Context, order model.NewOrder) error
	UpdateOrder(ctx context.Context, orderID int64, update OrderUpdate) error
	DeleteOrder(ctx context.Context, orderID int64) error
	Customers(ctx context.Context) ([]model.Customer, error)
	SearchCustomers(ctx context.Context, name string) ([]model.Customer, error)
	Consultants(ctx context.Context) ([]model.Consultant, error)
	ServiceTypes(ctx context.Context) ([]model.ServiceType, error)
}

// OrderUpdate is the whole-record replace payload for PUT /orders/{id}.
// The service type travels as its numeric identifier, never as a label.
type OrderUpdate struct {
	OrderID        int64   `json:"orderId"`
	CustomerName   string  `json:"customerName"`
	ConsultantName string  `json:"consultantName"`
	Note           string  `json:"note"`
	ServiceID      int64   `json:"serviceId"`
	FromAddress    string  `json:"fromAddress"`
	ToAddress      string  `json:"toAddress"`
	ScheduleDate   string  `json:"scheduleDate"`
	Price          float64 `json:"price"`
}

// HTTPClient implements Client against the backend REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// orderRow mirrors the JSON shape of GET /orders/details entries. The
// schedule date may carry a time component; it is truncated to its date
// portion when decoded.
type orderRow struct {
	OrderID        int64   `json:"orderId"`
	CustomerName   string  `json:"customerName"`
	ConsultantName string  `json:"consultantName"`
	Note           string  `json:"note"`
	ServiceType    string  `json:"serviceType"`
	FromAddress    string  `json:"fromAddress"`
	ToAddress      string  `json:"toAddress"`
	ScheduleDate   string  `json:"scheduleDate"`
	Price          float64 `json:"price"`
}

type customerRow struct {
	CustomerID    int64  `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
}

type consultantRow struct {
	ConsultantID    int64  `json:"consultantId"`
	ConsultantName  string `json:"consultantName"`
	ConsultantPhone string `json:"consultantPhone"`
	ConsultantEmail string `json:"consultantEmail"`
}

type serviceTypeRow struct {
	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`
}

// NewHTTPClient creates an order store client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order store url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// OrderDetails fetches the full order list.
func (c *HTTPClient) OrderDetails(ctx context.Context) ([]model.OrderRecord, error) {
	var rows []orderRow
	if err := c.getJSON(ctx, c.endpoint("/orders/details", nil), &rows); err != nil {
		return nil, err
	}
	return toOrderRecords(rows), nil
}

// SearchOrders fetches orders filtered by customer name.
func (c *HTTPClient) SearchOrders(ctx context.Context, customerName string) ([]model.OrderRecord, error) {
	query := url.Values{"customerName": []string{customerName}}
	var rows []orderRow
	if err := c.getJSON(ctx, c.endpoint("/orders/search", query), &rows); err != nil {
		return nil, err
	}
	return toOrderRecords(rows), nil
}

// CreateOrder registers a new order.
func (c *HTTPClient) CreateOrder(ctx context.Context, order model.NewOrder) error {
	return c.send(ctx, http.MethodPost, c.endpoint("/orders", nil), order)
}

// UpdateOrder replaces the order record keyed by orderID.
func (c *HTTPClient) UpdateOrder(ctx context.Context, orderID int64, update OrderUpdate) error {
	return c.send(ctx, http.MethodPut, c.endpoint("/orders/"+strconv.FormatInt(orderID, 10), nil), update)
}

// DeleteOrder removes the order keyed by orderID.
func (c *HTTPClient) DeleteOrder(ctx context.Context, orderID int64) error {
	return c.send(ctx, http.MethodDelete, c.endpoint("/orders/"+strconv.FormatInt(orderID, 10), nil), nil)
}

// Customers fetches the customer directory.
func (c *HTTPClient) Customers(ctx context.Context) ([]model.Customer, error) {
	var rows []customerRow
	if err := c.getJSON(ctx, c.endpoint("/customers", nil), &rows); err != nil {
		return nil, err
	}
	return toCustomers(rows), nil
}

// SearchCustomers fetches customers filtered by name.
func (c *HTTPClient) SearchCustomers(ctx context.Context, name string) ([]model.Customer, error) {
	query := url.Values{"name": []string{name}}
	var rows []customerRow
	if err := c.getJSON(ctx, c.endpoint("/customers/search", query), &rows); err != nil {
		return nil, err
	}
	return toCustomers(rows), nil
}

func toCustomers(rows []customerRow) []model.Customer {
	customers := make([]model.Customer, 0, len(rows))
	for _, r := range rows {
		customers = append(customers, model.Customer{
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			CustomerPhone: r.CustomerPhone,
			CustomerEmail: r.CustomerEmail,
		})
	}
	return customers
}

// Consultants fetches the consultant directory.
func (c *HTTPClient) Consultants(ctx context.Context) ([]model.Consultant, error) {
	var rows []consultantRow
	if err := c.getJSON(ctx, c.endpoint("/consultants", nil), &rows); err != nil {
		return nil, err
	}
	consultants := make([]model.Consultant, 0, len(rows))
	for _, r := range rows {
		consultants = append(consultants, model.Consultant{
			ConsultantID:    r.ConsultantID,
			ConsultantName:  r.ConsultantName,
			ConsultantPhone: r.ConsultantPhone,
			ConsultantEmail: r.ConsultantEmail,
		})
	}
	return consultants, nil
}

// ServiceTypes fetches the service enumeration the codec is built from.
func (c *HTTPClient) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	var rows []serviceTypeRow
	if err := c.getJSON(ctx, c.endpoint("/servicetypes", nil), &rows); err != nil {
		return nil, err
	}
	types := make([]model.ServiceType, 0, len(rows))
	for _, r := range rows {
		types = append(types, model.ServiceType{ID: r.ServiceID, Label: r.ServiceName})
	}
	return types, nil
}

func (c *HTTPClient) endpoint(p string, query url.Values) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String()
}

func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *HTTPClient) send(ctx context.Context, method, endpoint string, payload any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	c.logger.Error("order store request failed",
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	)
	return StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

func toOrderRecords(rows []orderRow) []model.OrderRecord {
	records := make([]model.OrderRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, model.OrderRecord{
			OrderID:        r.OrderID,
			CustomerName:   r.CustomerName,
			ConsultantName: r.ConsultantName,
			Note:           r.Note,
			ServiceType:    r.ServiceType,
			FromAddress:    r.FromAddress,
			ToAddress:      r.ToAddress,
			ScheduleDate:   dateOnly(r.ScheduleDate),
			Price:          r.Price,
		})
	}
	return records
}

// dateOnly truncates an ISO timestamp to its date portion.
func dateOnly(value string) string {
	if idx := strings.IndexByte(value, 'T'); idx >= 0 {
		return value[:idx]
	}
	return value
}
