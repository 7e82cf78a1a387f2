package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	gohttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/yama6a/zip-tax-rates/internal/pkg/http"
	"github.com/yama6a/zip-tax-rates/internal/pkg/http/httpmock"
	"go.uber.org/zap"
)

func TestDaprStore_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    *http.Response
		respErr error
		want    string
		wantErr error
		anyErr  bool
	}{
		{
			name: "json string is a hit",
			resp: &http.Response{StatusCode: gohttp.StatusOK, Body: []byte(`"0.0825"`)},
			want: "0.0825",
		},
		{
			name:    "no content is a miss",
			resp:    &http.Response{StatusCode: gohttp.StatusNoContent},
			wantErr: ErrNotFound,
		},
		{
			name:    "empty body is a miss",
			resp:    &http.Response{StatusCode: gohttp.StatusOK},
			wantErr: ErrNotFound,
		},
		{
			name:    "json null is a miss",
			resp:    &http.Response{StatusCode: gohttp.StatusOK, Body: []byte(`null`)},
			wantErr: ErrNotFound,
		},
		{
			name:    "json number is a miss",
			resp:    &http.Response{StatusCode: gohttp.StatusOK, Body: []byte(`0.0825`)},
			wantErr: ErrNotFound,
		},
		{
			name:   "invalid json is an error",
			resp:   &http.Response{StatusCode: gohttp.StatusOK, Body: []byte(`{broken`)},
			anyErr: true,
		},
		{
			name:   "sidecar error status",
			resp:   &http.Response{StatusCode: gohttp.StatusInternalServerError, Body: []byte(`{"errorCode":"ERR_STATE_GET"}`)},
			anyErr: true,
		},
		{
			name:    "transport error",
			respErr: errors.New("connection refused"),
			anyErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockClient := &httpmock.ClientMock{
				DoFunc: func(_ context.Context, _ http.Request) (*http.Response, error) {
					return tt.resp, tt.respErr
				},
			}
			s := NewDaprStore(mockClient, "http://localhost:3501", zap.NewNop())

			got, err := s.Get(context.Background(), DefaultName, "78701")
			if tt.anyErr {
				if err == nil || errors.Is(err, ErrNotFound) {
					t.Fatalf("Get() error = %v, want non-miss error", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}

			calls := mockClient.DoCalls()
			if len(calls) != 1 {
				t.Fatalf("Do() called %d times, want 1", len(calls))
			}
			if calls[0].Req.Method != gohttp.MethodGet {
				t.Errorf("method = %s, want GET", calls[0].Req.Method)
			}
			if want := "http://localhost:3501/v1.0/state/statestore/78701"; calls[0].Req.URL != want {
				t.Errorf("url = %s, want %s", calls[0].Req.URL, want)
			}
		})
	}
}

func TestDaprStore_Get_EmptyKey(t *testing.T) {
	t.Parallel()

	mockClient := &httpmock.ClientMock{
		DoFunc: func(_ context.Context, _ http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: gohttp.StatusNotFound}, nil
		},
	}
	s := NewDaprStore(mockClient, "http://localhost:3501", zap.NewNop())

	got, err := s.Get(context.Background(), DefaultName, "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
	if n := len(mockClient.DoCalls()); n != 0 {
		t.Errorf("Do() called %d times, want 0", n)
	}
}

func TestDaprStore_Put(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    *http.Response
		respErr error
		wantErr bool
	}{
		{
			name: "no content",
			resp: &http.Response{StatusCode: gohttp.StatusNoContent},
		},
		{
			name:    "sidecar rejects",
			resp:    &http.Response{StatusCode: gohttp.StatusBadRequest, Body: []byte(`{"errorCode":"ERR_STATE_STORE_NOT_FOUND"}`)},
			wantErr: true,
		},
		{
			name:    "transport error",
			respErr: errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockClient := &httpmock.ClientMock{
				DoFunc: func(_ context.Context, _ http.Request) (*http.Response, error) {
					return tt.resp, tt.respErr
				},
			}
			s := NewDaprStore(mockClient, "http://localhost:3501", zap.NewNop())

			err := s.Put(context.Background(), DefaultName, "01001", "0.0625")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Put() error = %v, wantErr %v", err, tt.wantErr)
			}

			calls := mockClient.DoCalls()
			if len(calls) != 1 {
				t.Fatalf("Do() called %d times, want 1", len(calls))
			}
			req := calls[0].Req
			if req.Method != gohttp.MethodPost {
				t.Errorf("method = %s, want POST", req.Method)
			}
			if want := "http://localhost:3501/v1.0/state/statestore"; req.URL != want {
				t.Errorf("url = %s, want %s", req.URL, want)
			}
			var items []daprStateItem
			if err := json.Unmarshal(req.Body, &items); err != nil {
				t.Fatalf("request body is not json: %v", err)
			}
			if len(items) != 1 || items[0].Key != "01001" || items[0].Value != "0.0625" {
				t.Errorf("request items = %+v", items)
			}
		})
	}
}

// TestDaprStore_RoundTrip runs Put and Get against a fake sidecar speaking the state API.
func TestDaprStore_RoundTrip(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	state := map[string]json.RawMessage{}

	mux := gohttp.NewServeMux()
	mux.HandleFunc("POST /v1.0/state/statestore", func(w gohttp.ResponseWriter, r *gohttp.Request) {
		body, _ := io.ReadAll(r.Body)
		var items []struct {
			Key   string          `json:"key"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(body, &items); err != nil {
			w.WriteHeader(gohttp.StatusBadRequest)
			return
		}
		mu.Lock()
		for _, item := range items {
			state[item.Key] = item.Value
		}
		mu.Unlock()
		w.WriteHeader(gohttp.StatusNoContent)
	})
	mux.HandleFunc("GET /v1.0/state/statestore/{key}", func(w gohttp.ResponseWriter, r *gohttp.Request) {
		mu.Lock()
		value, ok := state[r.PathValue("key")]
		mu.Unlock()
		if !ok {
			w.WriteHeader(gohttp.StatusNoContent)
			return
		}
		_, _ = w.Write(value)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := http.NewClient(&gohttp.Client{Timeout: 5 * time.Second}, 5*time.Second)
	s := NewDaprStore(client, server.URL, zap.NewNop())
	ctx := context.Background()

	if err := s.Put(ctx, DefaultName, "78701", "0.0825"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, DefaultName, "78701")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "0.0825" {
		t.Errorf("Get() = %q, want %q", got, "0.0825")
	}

	for _, key := range []string{"00000", ""} {
		if _, err := s.Get(ctx, DefaultName, key); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q) error = %v, want ErrNotFound", key, err)
		}
	}
}
