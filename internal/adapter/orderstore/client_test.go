package orderstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestOrderDetailsDecodesAndTruncatesDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/orders/details" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"orderId":5,"customerName":"Astrid","consultantName":"Bo","note":"piano",
			"serviceType":"MOVING","fromAddress":"Oslo","toAddress":"Bergen",
			"scheduleDate":"2024-01-01T00:00:00.000Z","price":100}]`)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	records, err := client.OrderDetails(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	rec := records[0]
	if rec.OrderID != 5 || rec.ServiceType != "MOVING" || rec.Price != 100 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.ScheduleDate != "2024-01-01" {
		t.Fatalf("expected truncated date, got %q", rec.ScheduleDate)
	}
}

func TestOrderDetailsSurfacesServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.OrderDetails(context.Background())
	var status StatusError
	if !errors.As(err, &status) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if status.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status code %d", status.Code)
	}
	if status.Body != "boom" {
		t.Fatalf("unexpected body %q", status.Body)
	}
}

func TestUpdateOrderSendsNumericServiceID(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	update := OrderUpdate{
		OrderID:        5,
		CustomerName:   "Astrid",
		ConsultantName: "Bo",
		ServiceID:      1,
		ScheduleDate:   "2024-01-01",
		Price:          150,
	}
	if err := client.UpdateOrder(context.Background(), 5, update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/orders/5" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotBody["serviceId"] != float64(1) {
		t.Fatalf("expected numeric serviceId 1, got %v", gotBody["serviceId"])
	}
	if _, ok := gotBody["serviceType"]; ok {
		t.Fatal("label must never reach the store on the write path")
	}
	if gotBody["price"] != float64(150) {
		t.Fatalf("unexpected price %v", gotBody["price"])
	}
}

func TestDeleteOrderUsesDeleteVerb(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.DeleteOrder(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/orders/7" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestDeleteOrderPropagatesRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	var status StatusError
	if err := client.DeleteOrder(context.Background(), 7); !errors.As(err, &status) {
		t.Fatalf("expected StatusError, got %v", err)
	}
}

func TestSearchOrdersEncodesCustomerName(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("customerName")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	records, err := client.SearchOrders(context.Background(), "Astrid Berg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d", len(records))
	}
	if gotQuery != "Astrid Berg" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}

func TestSearchCustomersEncodesName(t *testing.T) {
	var gotPath, gotName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotName = r.URL.Query().Get("name")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"customerId":4,"customerName":"Astrid Berg","customerPhone":"99887766","customerEmail":"astrid@example.com"}]`)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	customers, err := client.SearchCustomers(context.Background(), "Astrid Berg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/customers/search" || gotName != "Astrid Berg" {
		t.Fatalf("unexpected request %s?name=%s", gotPath, gotName)
	}
	if len(customers) != 1 || customers[0].CustomerID != 4 || customers[0].CustomerName != "Astrid Berg" {
		t.Fatalf("unexpected customers: %+v", customers)
	}
}

func TestServiceTypesMapsEnumeration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/servicetypes" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"serviceId":1,"serviceName":"MOVING"},{"serviceId":4,"serviceName":"CLEANING_DELUXE"}]`)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	types, err := client.ServiceTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("expected two types, got %d", len(types))
	}
	if types[1].ID != 4 || types[1].Label != "CLEANING_DELUXE" {
		t.Fatalf("unexpected type %+v", types[1])
	}
}

func TestClientReportsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	_, err = client.OrderDetails(context.Background())
	if err == nil {
		t.Fatal("expected network failure to surface")
	}
	var status StatusError
	if errors.As(err, &status) {
		t.Fatal("network failure must not be a StatusError")
	}
}
