package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/spikeekips/nearanywhere/common"
)

const DefaultTimeout = time.Second * 10

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithHeader(key, value string) Option {
	return func(cl *Client) {
		cl.headers.Set(key, value)
	}
}

// WithTimeout limits each request; zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// Client sends JSON-RPC requests over HTTP POST. It is safe for concurrent
// use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	headers    http.Header
	timeout    time.Duration
}

func NewClient(endpoint string, options ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		headers:    http.Header{},
		timeout:    DefaultTimeout,
	}

	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("User-Agent", "nearanywhere/"+common.Current.String())

	for _, o := range options {
		o(c)
	}

	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send posts the request. HTTP and transport failures return
// RPCFailedError; the error object of the response is kept in
// Response.Error.
func (c *Client) Send(ctx context.Context, req Request) (Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, RPCFailedError.New(xerrors.Errorf("%s: %w", ConstructRequestErrorMessage, err))
	}

	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, RPCFailedError.New(xerrors.Errorf("%s: %w", ConstructRequestErrorMessage, err))
	}

	for k := range c.headers {
		hr.Header.Set(k, c.headers.Get(k))
	}

	l := log.New("id", req.ID, "method", req.Method)
	l.Debug("trying to send request", "endpoint", c.endpoint)

	started := time.Now()

	res, err := c.httpClient.Do(hr)
	if err != nil {
		l.Error("failed to send request", "error", err)
		return Response{}, RPCFailedError.New(xerrors.Errorf("%s: %w", DoHTTPRequestErrorMessage, err))
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, RPCFailedError.New(xerrors.Errorf("%s: %w", ReadResponseBodyErrorMessage, err))
	}

	if res.StatusCode != http.StatusOK {
		l.Error("http status not ok", "status", res.StatusCode, "body", common.TerminalLogString(string(b)))

		// the node returns the error object with non-200 status too
		var r Response
		if json.Unmarshal(b, &r) == nil && r.Error != nil {
			if err := checkResponseID(req, r); err != nil {
				return Response{}, err
			}

			return r, nil
		}

		return Response{}, RPCFailedError.Newf("%s: %d", HTTPStatusNotOKErrorMessage, res.StatusCode)
	}

	var r Response
	if err := json.Unmarshal(b, &r); err != nil {
		return Response{}, RPCFailedError.New(xerrors.Errorf("%s: %w", UnmarshalBodyErrorMessage, err))
	}

	if err := checkResponseID(req, r); err != nil {
		return Response{}, err
	}

	l.Debug("received response", "elapsed", time.Since(started), "has_error", r.Error != nil)

	return r, nil
}

func checkResponseID(req Request, res Response) error {
	if res.ID != req.ID {
		return InvalidResponseError.Newf("id does not match; request=%s response=%s", req.ID, res.ID)
	}

	return nil
}

// Call sends the method with params and decodes the result into result. The
// JSON-RPC error object is returned as *Error.
func (c *Client) Call(ctx context.Context, method string, params, result interface{}) error {
	req, err := NewRequest(method, params)
	if err != nil {
		return err
	}

	res, err := c.Send(ctx, req)
	if err != nil {
		return err
	}

	return res.Decode(result)
}

// SendAll sends the requests concurrently. The responses keep the order of
// the requests; the first failure cancels the others.
func (c *Client) SendAll(ctx context.Context, reqs []Request) ([]Response, error) {
	responses := make([]Response, len(reqs))

	eg, ctx := errgroup.WithContext(ctx)
	for i := range reqs {
		i := i
		eg.Go(func() error {
			r, err := c.Send(ctx, reqs[i])
			if err != nil {
				return err
			}

			responses[i] = r

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return responses, nil
}
