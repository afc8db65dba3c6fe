package whatsapp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiadoapp/backend/internal/clients/whatsapp"
	"github.com/fiadoapp/backend/internal/entity"
	"github.com/fiadoapp/backend/pkg/config"
)

func TestClient_Send(t *testing.T) {
	t.Parallel()

	var got struct {
		MessagingProduct string `json:"messaging_product"`
		To               string `json:"to"`
		Type             string `json:"type"`
		Text             struct {
			Body string `json:"body"`
		} `json:"text"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/123456/messages", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.test"}]}`))
	}))
	defer server.Close()

	client := whatsapp.New(config.WhatsApp{
		BaseURL:       server.URL,
		PhoneNumberID: "123456",
		AccessToken:   "test-token",
	})

	err := client.Send(context.Background(), "+57 (300) 123-4567", "Hola")
	require.NoError(t, err)

	require.Equal(t, "whatsapp", got.MessagingProduct)
	require.Equal(t, "573001234567", got.To)
	require.Equal(t, "text", got.Type)
	require.Equal(t, "Hola", got.Text.Body)
}

func TestClient_Send_NotConfigured(t *testing.T) {
	t.Parallel()

	client := whatsapp.New(config.WhatsApp{BaseURL: "https://example.com"})

	err := client.Send(context.Background(), "+573001234567", "Hola")
	require.ErrorIs(t, err, entity.ErrDelivery)
}

func TestClient_Send_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	client := whatsapp.New(config.WhatsApp{
		BaseURL:       server.URL,
		PhoneNumberID: "123456",
		AccessToken:   "expired",
	})

	err := client.Send(context.Background(), "+573001234567", "Hola")
	require.ErrorIs(t, err, entity.ErrDelivery)
	require.Contains(t, err.Error(), "Invalid OAuth access token")
}
