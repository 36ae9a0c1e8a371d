package chefapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"chefctl/internal/chefapi"
	apperrors "chefctl/internal/platform/errors"
)

func newClient(t *testing.T, baseURL string) *chefapi.Client {
	t.Helper()
	client, err := chefapi.New(chefapi.Config{
		BaseURL:   baseURL,
		AccessKey: "test-key",
		Timeout:   2 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestLoginCapturesCookiesAndSendsThemBack(t *testing.T) {
	t.Parallel()
	var ordersCookie string
	var loginQuery url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		loginQuery = r.URL.Query()
		http.SetCookie(w, &http.Cookie{Name: "PHPSESSID", Value: "abc123"})
		fmt.Fprint(w, `{"result":{"id":42,"username":"jdoe"}}`)
	})
	mux.HandleFunc("/get-orders", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("PHPSESSID"); err == nil {
			ordersCookie = c.Value
		}
		fmt.Fprint(w, `{"result":{"orders":[]}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newClient(t, srv.URL)
	profile, err := client.Login(context.Background(), "jdoe", "hunter2", "acme")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if profile.ID != "42" || profile.Username != "jdoe" {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if loginQuery.Get("chef_pass") != "test-key" || loginQuery.Get("password") != "hunter2" {
		t.Fatalf("login query missing credentials: %v", loginQuery)
	}
	if client.Session().Empty() {
		t.Fatalf("session must capture login cookies")
	}
	if _, err := client.ListOrders(context.Background(), profile.ID, "2024-03-02", "2024-04-01"); err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if ordersCookie != "abc123" {
		t.Fatalf("expected session cookie on follow-up call, got %q", ordersCookie)
	}
}

func TestLoginNullResultIsAuthenticationError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"result":null,"message":"bad password"}`)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Login(context.Background(), "jdoe", "wrong", "acme")
	if !errors.Is(err, apperrors.ErrAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if err == nil || err.Error() == apperrors.ErrAuthentication.Error() {
		t.Fatalf("server message must be carried, got %v", err)
	}
}

func TestNonJSONResponseIsProtocolError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).ListOrders(context.Background(), "42", "2024-03-02", "2024-04-01")
	if !errors.Is(err, apperrors.ErrProtocol) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestMissingResultIsProtocolError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).GetOrder(context.Background(), "42", "", "7", "2024-03-02")
	if !errors.Is(err, apperrors.ErrProtocol) {
		t.Fatalf("expected protocol error, got %v", err)
	}
}

func TestUnreachableServerIsTransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := newClient(t, srv.URL).ListOrders(context.Background(), "42", "2024-03-02", "2024-04-01")
	if !errors.Is(err, apperrors.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestGetOrderPreservesFoodTypeOrderAndOmitsAbsentOrderID(t *testing.T) {
	t.Parallel()
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `{"result":{"foods":[
			{"category_name":"Soup","category_column":"cat_soup","food_types":{
				"zz_hot":[{"food_id":1,"food_name":"Lentil"}],
				"aa_cold":[{"food_id":2,"food_name":"Gazpacho"}]
			}}
		]}}`)
	}))
	defer srv.Close()

	detail, err := newClient(t, srv.URL).GetOrder(context.Background(), "42", "", "7", "2024-03-02")
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if query.Has("order_id") {
		t.Fatalf("order_id must be omitted for new order slots: %v", query)
	}
	types := detail.Foods[0].FoodTypes
	if len(types) != 2 || types[0].Name != "zz_hot" || types[1].Name != "aa_cold" {
		t.Fatalf("food_types must keep document order, got %+v", types)
	}
}

func TestMakeOrderFlattensSelectionIntoParams(t *testing.T) {
	t.Parallel()
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `{"result":{"order_id":99}}`)
	}))
	defer srv.Close()

	result, err := newClient(t, srv.URL).MakeOrder(context.Background(), "42", "55", "7", "2024-03-02",
		map[string]chefapi.ID{"cat_soup": "2", "cat_main": "9"})
	if err != nil {
		t.Fatalf("make order: %v", err)
	}
	if result == nil {
		t.Fatalf("result must be surfaced")
	}
	for key, want := range map[string]string{
		"employee_id": "42",
		"order_id":    "55",
		"menu_id":     "7",
		"date":        "2024-03-02",
		"absent":      "false",
		"cat_soup":    "2",
		"cat_main":    "9",
		"chef_pass":   "test-key",
	} {
		if got := query.Get(key); got != want {
			t.Fatalf("param %s: got %q want %q", key, got, want)
		}
	}
}
