package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// product is the fixed path segment all dataplane operations live under.
	product = "scratch"

	// DefaultBootstrapURL is the control-plane host used to obtain
	// credentials. It is distinct from the per-account dataplane endpoint,
	// which bootstrap itself returns.
	DefaultBootstrapURL = "https://kilobytetools.io"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// latestID is the sentinel the service resolves to the most recently
	// pushed file.
	latestID = "latest"
)

// Client is a scratch API client. Operations are synchronous and
// stateless; a Client is safe for concurrent use.
type Client struct {
	endpoint     string
	apiKey       string
	bootstrapURL string
	format       Format
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the dataplane base URL (from your account settings
// page, or the value returned by Bootstrap).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithAPIKey sets the bearer token attached to dataplane operations.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithFormat negotiates the response representation via the Accept header.
func WithFormat(f Format) Option {
	return func(c *Client) {
		c.format = f
	}
}

// WithBootstrapURL overrides the control-plane host used by Bootstrap.
func WithBootstrapURL(u string) Option {
	return func(c *Client) {
		c.bootstrapURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a scratch client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		bootstrapURL: DefaultBootstrapURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PushOptions are the optional modifiers attached to the create phase as
// query parameters. Zero values are omitted from the request entirely;
// the nil/non-nil distinction on the booleans preserves "not specified"
// versus an explicit false.
type PushOptions struct {
	// Lifetime is the requested expiry, e.g. "10m". Format: \d+(h|m|s).
	Lifetime string
	// Private controls whether the file can be pulled anonymously.
	Private *bool
	// Password protects reads of the file.
	Password string
	// Burn deletes the file after its first successful read.
	Burn *bool
	// Prefix is prepended to the generated identifier.
	Prefix string
}

// PullOptions configure a Pull.
type PullOptions struct {
	// Anon omits the Authorization header even when an API key is
	// configured. Only public files can be pulled anonymously.
	Anon bool
	// Password is required when the file was pushed with one.
	Password string
}

// BootstrapResult holds the newly issued credentials. The caller is
// responsible for persisting them.
type BootstrapResult struct {
	APIKey   string
	Endpoint string
}

// Push uploads a payload in two phases: create, which reserves an
// identifier server-side, then upload, which writes the payload under it.
//
// report, when non-nil, is invoked with the raw create-response body as
// soon as the identifier is confirmed and before the upload starts. If
// the upload phase then fails, the created file still exists server-side;
// the already-reported identifier lets the caller recover out of band. A
// create-phase failure means nothing was created and the push is safe to
// retry.
func (c *Client) Push(ctx context.Context, payload Payload, opts PushOptions, report func(body string)) (string, error) {
	q := url.Values{}
	if opts.Lifetime != "" {
		q.Set("lifetime", opts.Lifetime)
	}
	if opts.Private != nil {
		q.Set("private", strconv.FormatBool(*opts.Private))
	}
	if opts.Password != "" {
		q.Set("pw", opts.Password)
	}
	if opts.Burn != nil {
		q.Set("burn", strconv.FormatBool(*opts.Burn))
	}
	if opts.Prefix != "" {
		q.Set("prefix", opts.Prefix)
	}

	req, err := c.newDataplaneRequest(ctx, http.MethodPost, "file", q, http.NoBody)
	if err != nil {
		return "", transportError(err)
	}
	req.ContentLength = 0

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	body, rerr := readText(resp)
	if rerr != nil {
		return "", rerr
	}

	format, ok := ParseFormat(resp.Header.Get("Content-Type"))
	if !ok {
		return "", contractError("no content_type")
	}
	id, ok := ExtractID(body, format)
	if !ok {
		return "", contractError("no id")
	}

	if report != nil {
		report(body)
	}

	upload, err := c.newDataplaneRequest(ctx, http.MethodPost, "file/"+id, nil, payload.r)
	if err != nil {
		return "", transportError(err)
	}
	upload.ContentLength = payload.size

	resp, err = c.httpClient.Do(upload)
	if err != nil {
		return "", transportError(err)
	}
	return readText(resp)
}

// Pull streams a file into dst. An empty id pulls the most recently
// pushed file. The payload is copied straight from the response body to
// dst without buffering; stored files have no size bound.
func (c *Client) Pull(ctx context.Context, id string, opts PullOptions, dst io.Writer) error {
	if id == "" {
		id = latestID
	}
	q := url.Values{}
	if opts.Password != "" {
		q.Set("pw", opts.Password)
	}

	req, err := c.newDataplaneRequest(ctx, http.MethodGet, "file/"+id, q, nil)
	if err != nil {
		return transportError(err)
	}
	if opts.Anon {
		req.Header.Del("Authorization")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return localIOError(err)
	}
	return nil
}

// List returns the raw file-metadata listing. Its interpretation depends
// on the negotiated format and is left to the caller.
func (c *Client) List(ctx context.Context) (string, error) {
	req, err := c.newDataplaneRequest(ctx, http.MethodGet, "file", nil, nil)
	if err != nil {
		return "", transportError(err)
	}
	return c.do(req)
}

// Delete removes a file by id and returns the raw response text.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	req, err := c.newDataplaneRequest(ctx, http.MethodDelete, "file/"+id, nil, nil)
	if err != nil {
		return "", transportError(err)
	}
	return c.do(req)
}

// Stats returns raw usage and capacity stats for the account.
func (c *Client) Stats(ctx context.Context) (string, error) {
	req, err := c.newDataplaneRequest(ctx, http.MethodGet, "me/stats", nil, nil)
	if err != nil {
		return "", transportError(err)
	}
	return c.do(req)
}

// Bootstrap obtains an API key and dataplane endpoint for the account
// identified by handle and password. It issues two sequential calls
// against the control-plane host; if either fails there is no partial
// result. The password is used for Basic auth only and never persisted.
func (c *Client) Bootstrap(ctx context.Context, handle, password string) (*BootstrapResult, error) {
	apiKey, err := c.bootstrapComponent(ctx, "api_key", handle, password)
	if err != nil {
		return nil, err
	}
	endpoint, err := c.bootstrapComponent(ctx, "dataplane_endpoint", handle, password)
	if err != nil {
		return nil, err
	}
	return &BootstrapResult{APIKey: apiKey, Endpoint: endpoint}, nil
}

func (c *Client) bootstrapComponent(ctx context.Context, component, handle, password string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.bootstrapURL+"/bootstrap/"+component, nil)
	if err != nil {
		return "", transportError(err)
	}
	req.SetBasicAuth(handle, password)
	text, err := c.do(req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// newDataplaneRequest builds a request for {endpoint}/scratch/{action},
// normalizing the endpoint's trailing slash, attaching bearer auth and the
// negotiated Accept header.
func (c *Client) newDataplaneRequest(ctx context.Context, method, action string, q url.Values, body io.Reader) (*http.Request, error) {
	u := strings.TrimSuffix(c.endpoint, "/") + "/" + product + "/" + action
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if ct := c.format.ContentType(); ct != "" {
		req.Header.Set("Accept", ct)
	}
	return req, nil
}

// do executes a prepared request and maps the outcome: transport failures,
// non-success statuses, and unreadable bodies each land in their own
// error class.
func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	return readText(resp)
}

// readText drains and closes the response body. Non-success statuses map
// to a server-reported error carrying the body text when readable.
func readText(resp *http.Response) (string, error) {
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", statusError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", contractError("bad encoding")
	}
	return string(body), nil
}

func statusError(resp *http.Response) *Error {
	body, err := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(body))
	if err != nil || msg == "" {
		msg = "unexpected status " + strconv.Itoa(resp.StatusCode)
	}
	return &Error{Code: ErrServerStatus, Message: msg}
}
