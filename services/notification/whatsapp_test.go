package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"formatted local number", "(21) 97948-5161", "5521979485161"},
		{"bare digits", "21979485161", "5521979485161"},
		{"already has country code", "5521979485161", "5521979485161"},
		{"short landline", "3832-1000", "5538321000"},
		{"empty", "", "55"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.raw, "55"))
		})
	}
}

func TestWhatsAppService_SendMessage(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/send-message", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	svc := &WhatsAppService{
		apiURL: srv.URL,
		apiKey: "key",
		sender: "5521900000000",
		client: &http.Client{Timeout: time.Second},
	}

	err := svc.SendMessage(context.Background(), "5521979485161", "Olá!", "Sistema de Agendamento")
	require.NoError(t, err)
	assert.Equal(t, "key", got["api_key"])
	assert.Equal(t, "5521979485161", got["number"])
	assert.Equal(t, "Olá!", got["message"])
	assert.Equal(t, "Sistema de Agendamento", got["footer"])
}

func TestWhatsAppService_SendVCard(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/send-vcard", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	svc := &WhatsAppService{
		apiURL: srv.URL,
		apiKey: "key",
		sender: "5521900000000",
		client: &http.Client{Timeout: time.Second},
	}

	err := svc.SendVCard(context.Background(), "5521900000001", "Maria", "5521979485161")
	require.NoError(t, err)
	assert.Equal(t, "Maria", got["name"])
	assert.Equal(t, "5521979485161", got["phone"])
}

func TestWhatsAppService_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := &WhatsAppService{
		apiURL: srv.URL,
		apiKey: "key",
		sender: "s",
		client: &http.Client{Timeout: time.Second},
	}

	err := svc.SendMessage(context.Background(), "n", "m", "")
	assert.Error(t, err)
}
