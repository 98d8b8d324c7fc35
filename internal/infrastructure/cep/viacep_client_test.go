package cep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prevencar_vistorias/internal/usecase/interfaces"
)

func newTestClient(srv *httptest.Server) *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func TestViaCEPClient_Lookup(t *testing.T) {
	t.Run("resolves a known cep", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/01310100/json/" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"logradouro":"Avenida Paulista","bairro":"Bela Vista","complemento":"de 612 a 1510"}`))
		}))
		defer srv.Close()

		addr, err := newTestClient(srv).Lookup(context.Background(), "01310-100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if addr.Street != "Avenida Paulista" || addr.Neighborhood != "Bela Vista" {
			t.Fatalf("unexpected address: %+v", addr)
		}
	})

	t.Run("unknown cep flagged via erro field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"erro":true}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).Lookup(context.Background(), "99999999")
		if !errors.Is(err, interfaces.ErrCEPNotFound) {
			t.Fatalf("expected ErrCEPNotFound, got %v", err)
		}
	})

	t.Run("malformed cep rejected without a request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("no request expected")
		}))
		defer srv.Close()

		_, err := newTestClient(srv).Lookup(context.Background(), "123")
		if !errors.Is(err, interfaces.ErrCEPNotFound) {
			t.Fatalf("expected ErrCEPNotFound, got %v", err)
		}
	})

	t.Run("provider 400 treated as not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		_, err := newTestClient(srv).Lookup(context.Background(), "01310100")
		if !errors.Is(err, interfaces.ErrCEPNotFound) {
			t.Fatalf("expected ErrCEPNotFound, got %v", err)
		}
	})
}
