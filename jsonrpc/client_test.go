package jsonrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"
)

type testClient struct {
	suite.Suite
}

// echoServer answers every request with handler(request).
func (t *testClient) echoServer(handler func(Request) Response) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Equal(http.MethodPost, r.Method)
		t.Equal("application/json", r.Header.Get("Content-Type"))

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		res := handler(req)
		res.JSONRPC = Version
		res.ID = req.ID

		_ = json.NewEncoder(w).Encode(res)
	}))
}

func (t *testClient) TestNewRequest() {
	r, err := NewRequest("status", nil)
	t.NoError(err)
	t.Equal(Version, r.JSONRPC)
	t.NotEmpty(r.ID)
	t.Empty(r.Params)

	b, err := json.Marshal(r)
	t.NoError(err)
	t.NotContains(string(b), "params")

	r, err = NewRequest("query", map[string]string{"request_type": "view_account"})
	t.NoError(err)
	t.Equal(`{"request_type":"view_account"}`, string(r.Params))

	other, err := NewRequest("query", nil)
	t.NoError(err)
	t.NotEqual(r.ID, other.ID)

	_, err = NewRequest("bad", make(chan int))
	t.Error(err)
}

func (t *testClient) TestCall() {
	srv := t.echoServer(func(req Request) Response {
		t.Equal("query", req.Method)
		t.JSONEq(`{"finality":"final","account_id":"alice.near"}`, string(req.Params))

		return Response{Result: json.RawMessage(`{"amount":"100","block_height":7}`)}
	})
	defer srv.Close()

	c := NewClient(srv.URL)

	var result struct {
		Amount      string `json:"amount"`
		BlockHeight uint64 `json:"block_height"`
	}

	err := c.Call(context.Background(), "query", map[string]string{
		"finality":   "final",
		"account_id": "alice.near",
	}, &result)
	t.NoError(err)
	t.Equal("100", result.Amount)
	t.Equal(uint64(7), result.BlockHeight)
}

func (t *testClient) TestRPCError() {
	srv := t.echoServer(func(Request) Response {
		return Response{Error: &Error{
			Code:    -32000,
			Message: "Server error",
			Name:    "HANDLER_ERROR",
			Cause:   json.RawMessage(`{"name":"UNKNOWN_ACCOUNT"}`),
		}}
	})
	defer srv.Close()

	err := NewClient(srv.URL).Call(context.Background(), "query", nil, nil)

	var re *Error
	t.True(xerrors.As(err, &re))
	t.Equal(-32000, re.Code)
	t.Equal("HANDLER_ERROR", re.Name)
	t.Contains(err.Error(), "UNKNOWN_ACCOUNT")
}

func (t *testClient) TestHTTPStatus() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Call(context.Background(), "status", nil, nil)
	t.True(xerrors.Is(err, RPCFailedError))
	t.Contains(err.Error(), "502")
}

func (t *testClient) TestErrorWithHTTPStatus() {
	var id atomic.Value
	id.Store("")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		_ = json.NewDecoder(r.Body).Decode(&req)

		resID := req.ID
		if s := id.Load().(string); len(s) > 0 {
			resID = s
		}

		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(Response{
			JSONRPC: Version,
			ID:      resID,
			Error:   &Error{Code: -32000, Message: "Server error", Name: "HANDLER_ERROR"},
		})
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Call(context.Background(), "query", nil, nil)

	var re *Error
	t.True(xerrors.As(err, &re))
	t.Equal("HANDLER_ERROR", re.Name)

	id.Store("other")

	err = NewClient(srv.URL).Call(context.Background(), "query", nil, nil)
	t.True(xerrors.Is(err, InvalidResponseError))
	t.False(xerrors.As(err, &re))
}

func (t *testClient) TestHeaders() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Equal("findme", r.Header.Get("X-Api-Key"))
		t.True(strings.HasPrefix(r.Header.Get("User-Agent"), "nearanywhere/"))

		var req Request
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(Response{JSONRPC: Version, ID: req.ID, Result: json.RawMessage(`true`)})
	}))
	defer srv.Close()

	var ok bool
	t.NoError(NewClient(srv.URL, WithHeader("X-Api-Key", "findme")).Call(context.Background(), "status", nil, &ok))
	t.True(ok)
}

func (t *testClient) TestTimeout() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second * 2):
		}
	}))
	defer srv.Close()

	err := NewClient(srv.URL, WithTimeout(time.Millisecond*50)).Call(context.Background(), "status", nil, nil)
	t.True(xerrors.Is(err, RPCFailedError))
}

func (t *testClient) TestIDMismatch() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Response{JSONRPC: Version, ID: "other", Result: json.RawMessage(`1`)})
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Call(context.Background(), "status", nil, nil)
	t.True(xerrors.Is(err, InvalidResponseError))
}

func (t *testClient) TestSendAll() {
	var count int32
	srv := t.echoServer(func(req Request) Response {
		atomic.AddInt32(&count, 1)
		return Response{Result: json.RawMessage(`"` + req.Method + `"`)}
	})
	defer srv.Close()

	var reqs []Request
	for _, m := range []string{"a", "b", "c", "d"} {
		r, err := NewRequest(m, nil)
		t.NoError(err)
		reqs = append(reqs, r)
	}

	responses, err := NewClient(srv.URL).SendAll(context.Background(), reqs)
	t.NoError(err)
	t.Equal(int32(4), atomic.LoadInt32(&count))

	for i, r := range responses {
		t.Equal(reqs[i].ID, r.ID)

		var m string
		t.NoError(r.Decode(&m))
		t.Equal(reqs[i].Method, m)
	}
}

func TestClient(t *testing.T) {
	suite.Run(t, new(testClient))
}
