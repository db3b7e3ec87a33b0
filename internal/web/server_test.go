package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chongchonghe/acap/internal/engine"
)

func newTestServer() (*Server, *httptest.Server) {
	srv := NewServer(engine.New(nil, engine.DefaultOptions()), 0)
	return srv, httptest.NewServer(srv.Handler())
}

func postCalculate(t *testing.T, ts *httptest.Server, cookies []*http.Cookie, input string) (CalculateResponse, []*http.Cookie) {
	t.Helper()

	body, err := json.Marshal(CalculateRequest{Input: input})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/calculate", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp CalculateResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

	if got := res.Cookies(); len(got) > 0 {
		return resp, got
	}
	return resp, cookies
}

func TestHealthEndpoint(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestIndexSetsSessionCookie(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))

	var found bool
	for _, c := range res.Cookies() {
		if c.Name == sessionCookie {
			found = true
		}
	}
	assert.True(t, found, "expected a session cookie")
}

func TestCalculate(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	resp, _ := postCalculate(t, ts, nil, "2 pc")
	assert.Equal(t, "2*pc", resp.Parsed)
	assert.Contains(t, resp.SI, " m")
	assert.Contains(t, resp.CGS, " cm")
	assert.Empty(t, resp.Error)
}

func TestCalculateError(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	resp, _ := postCalculate(t, ts, nil, "nope")
	assert.Equal(t, "name", resp.ErrorKind)
	assert.Contains(t, resp.Error, "nope")
}

func TestSessionsAreIsolatedByCookie(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	// First browser binds x and keeps its cookie.
	resp, cookies := postCalculate(t, ts, nil, "x = 9, x")
	require.Empty(t, resp.Error)
	require.NotEmpty(t, cookies)

	resp, _ = postCalculate(t, ts, cookies, "x")
	assert.Equal(t, "9", resp.SI)

	// A cookie-less request gets a fresh namespace.
	resp, _ = postCalculate(t, ts, nil, "x")
	assert.Equal(t, "name", resp.ErrorKind)
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, res, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	res.Body.Close()
	return conn
}

func TestWebSocketCalculate(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(Message{Type: MessageTypeInput, Input: "1 + 1"}))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, MessageTypeResult, msg.Type)
	assert.Equal(t, "2", msg.SI)
}

func TestWebSocketShutdownWhileSending(t *testing.T) {
	srv, ts := newTestServer()
	defer ts.Close()

	conn := dialWS(t, ts)
	defer conn.Close()

	// Keep inputs flowing while the hub is stopped so an in-flight response
	// overlaps the shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if err := conn.WriteJSON(Message{Type: MessageTypeInput, Input: "1 + 1"}); err != nil {
				return
			}
		}
	}()

	srv.hub.Stop()
	<-done

	// The connection was closed by the hub; reads fail instead of hanging.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var err error
	for err == nil {
		_, _, err = conn.ReadMessage()
	}
	assert.Error(t, err)

	// A client arriving after shutdown is dropped before its pumps start.
	late := dialWS(t, ts)
	defer late.Close()
	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = late.ReadMessage()
	assert.Error(t, err)
}

func TestCalculateRejectsBadJSON(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/calculate", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
