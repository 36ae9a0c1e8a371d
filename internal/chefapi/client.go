package chefapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	apperrors "chefctl/internal/platform/errors"
)

// Config locates the service and carries the shared application key that
// every request sends as the chef_pass query parameter.
type Config struct {
	BaseURL   string
	AccessKey string
	Timeout   time.Duration
}

// Client performs authenticated calls against the chef-gourmet web service.
// It owns the cookie jar for the current process run; across runs the cookie
// state travels as a Session value through Resume and Session.
type Client struct {
	base      *url.URL
	accessKey string
	http      *http.Client
	jar       http.CookieJar
	log       *slog.Logger
}

// New builds a client with an empty session. Restore a stored one with Resume.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q is not absolute", cfg.BaseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("new cookie jar: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:      base,
		accessKey: cfg.AccessKey,
		http:      &http.Client{Timeout: cfg.Timeout, Jar: jar},
		jar:       jar,
		log:       logger,
	}, nil
}

// Resume installs a previously stored session. Later responses that set
// cookies overwrite matching entries in the jar as usual.
func (c *Client) Resume(session Session) {
	cookies := make([]*http.Cookie, 0, len(session.Cookies))
	for _, ck := range session.Cookies {
		cookies = append(cookies, &http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	c.jar.SetCookies(c.base, cookies)
}

// Session exports the current cookie state for persistence.
func (c *Client) Session() Session {
	var out Session
	for _, ck := range c.jar.Cookies(c.base) {
		out.Cookies = append(out.Cookies, Cookie{Name: ck.Name, Value: ck.Value})
	}
	return out
}

// call performs one GET against the service and decodes the body into the
// given envelope. Query values are logged only by resource name; login
// parameters carry the password.
func (c *Client) call(ctx context.Context, resource string, params url.Values, envelope any) error {
	params.Set("chef_pass", c.accessKey)
	u := *c.base
	u.Path += resource
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", resource, err)
	}
	c.log.Debug("calling service", "resource", resource)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", resource, apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(envelope); err != nil {
		return fmt.Errorf("%s: %w: %v", resource, apperrors.ErrProtocol, err)
	}
	return nil
}

type loginEnvelope struct {
	Result  *Profile `json:"result"`
	Message string   `json:"message"`
}

// Login authenticates and captures the session cookies the service sets. A
// response whose result lacks an id is an authentication failure carrying
// the server message when one is present.
func (c *Client) Login(ctx context.Context, username, password, company string) (Profile, error) {
	params := url.Values{}
	params.Set("username", username)
	params.Set("password", password)
	params.Set("company", company)

	var env loginEnvelope
	if err := c.call(ctx, "/login", params, &env); err != nil {
		return Profile{}, err
	}
	if env.Result == nil || env.Result.ID == "" {
		if env.Message != "" {
			return Profile{}, fmt.Errorf("%w: %s", apperrors.ErrAuthentication, env.Message)
		}
		return Profile{}, apperrors.ErrAuthentication
	}
	return *env.Result, nil
}

type ordersEnvelope struct {
	Result *struct {
		Orders []OrderSummary `json:"orders"`
	} `json:"result"`
}

// ListOrders returns the raw order slots between two YYYY-MM-DD dates,
// inclusive. Filtering disabled slots is the workflow's job.
func (c *Client) ListOrders(ctx context.Context, employeeID ID, dateFrom, dateTo string) ([]OrderSummary, error) {
	params := url.Values{}
	params.Set("employee_id", string(employeeID))
	params.Set("date_from", dateFrom)
	params.Set("date_to", dateTo)

	var env ordersEnvelope
	if err := c.call(ctx, "/get-orders", params, &env); err != nil {
		return nil, err
	}
	if env.Result == nil {
		return nil, fmt.Errorf("get-orders: %w: missing result", apperrors.ErrProtocol)
	}
	return env.Result.Orders, nil
}

type orderEnvelope struct {
	Result *OrderDetail `json:"result"`
}

// GetOrder fetches the food categories for one slot. orderID is empty when
// no order exists yet for that date and menu.
func (c *Client) GetOrder(ctx context.Context, employeeID, orderID, menuID ID, date string) (OrderDetail, error) {
	params := url.Values{}
	params.Set("employee_id", string(employeeID))
	params.Set("menu_id", string(menuID))
	params.Set("date", date)
	if orderID != "" {
		params.Set("order_id", string(orderID))
	}

	var env orderEnvelope
	if err := c.call(ctx, "/get-order", params, &env); err != nil {
		return OrderDetail{}, err
	}
	if env.Result == nil {
		return OrderDetail{}, fmt.Errorf("get-order: %w: missing result", apperrors.ErrProtocol)
	}
	return *env.Result, nil
}

type makeOrderEnvelope struct {
	Result OrderResult `json:"result"`
}

// MakeOrder submits one food id per category column, plus absent=false. The
// call is synchronous: the result, or its absence, is the caller's to handle.
func (c *Client) MakeOrder(ctx context.Context, employeeID, orderID, menuID ID, date string, selection map[string]ID) (OrderResult, error) {
	params := url.Values{}
	params.Set("employee_id", string(employeeID))
	params.Set("menu_id", string(menuID))
	params.Set("date", date)
	params.Set("absent", "false")
	if orderID != "" {
		params.Set("order_id", string(orderID))
	}
	for column, foodID := range selection {
		params.Set(column, string(foodID))
	}

	var env makeOrderEnvelope
	if err := c.call(ctx, "/make-order", params, &env); err != nil {
		return nil, err
	}
	if env.Result == nil {
		return nil, fmt.Errorf("make-order: %w: missing result", apperrors.ErrProtocol)
	}
	return env.Result, nil
}
