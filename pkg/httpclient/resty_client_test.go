package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/pwinty/pkg/httpclient"
)

func TestRestyClient_Do_SendsMethodHeadersAndBody(t *testing.T) {
	var (
		gotMethod string
		gotHeader string
		gotUA     string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Test")
		gotUA = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := httpclient.NewRestyClient(5*time.Second, "pwinty-test/1.0")
	resp, err := client.Do(context.Background(), &httpclient.Request{
		Method:  http.MethodPost,
		URL:     srv.URL + "/things",
		Headers: map[string]string{"X-Test": "yes", "Content-Type": "application/json"},
		Body:    []byte(`{"a":1}`),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body()))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "yes", gotHeader)
	assert.Equal(t, "pwinty-test/1.0", gotUA)
	assert.JSONEq(t, `{"a":1}`, string(gotBody))
}

func TestRestyClient_Do_NonSuccessIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := httpclient.NewRestyClient(5*time.Second, "")
	resp, err := client.Do(context.Background(), &httpclient.Request{
		Method: http.MethodGet,
		URL:    srv.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestRestyClient_Do_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := httpclient.NewRestyClient(time.Second, "")
	_, err := client.Do(context.Background(), &httpclient.Request{
		Method: http.MethodGet,
		URL:    url,
	})

	assert.Error(t, err)
}

func TestRestyClient_Do_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := httpclient.NewRestyClient(0, "")
	_, err := client.Do(ctx, &httpclient.Request{Method: http.MethodGet, URL: srv.URL})

	assert.Error(t, err)
}
