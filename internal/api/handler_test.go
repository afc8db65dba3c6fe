package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiadoapp/backend/internal/api"
	"github.com/fiadoapp/backend/internal/entity"
	"github.com/fiadoapp/backend/internal/mocks"
)

type testAPI struct {
	service *mocks.MockService
	server  *httptest.Server
	userID  uuid.UUID
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	handler := api.NewHandler(service)
	mw := api.NewMiddleware(false, "")

	server := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(server.Close)

	return &testAPI{
		service: service,
		server:  server,
		userID:  uuid.Must(uuid.NewV4()),
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var payload bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req, err := http.NewRequest(method, a.server.URL+path, &payload)
	require.NoError(t, err)

	req.Header.Set("X-User-Id", a.userID.String())
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHandler_CreateClient(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	client := entity.Client{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      a.userID,
		Name:        "Ana María",
		Cedula:      "1234567890",
		CreditLimit: decimal.New(500_000, -2),
		Status:      entity.ClientStatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	a.service.EXPECT().CreateClient(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req entity.NewClient) (entity.Client, error) {
			require.Equal(t, "Ana María", req.Name)
			require.Equal(t, "1234567890", req.Cedula)
			require.True(t, req.CreditLimit.Equal(decimal.New(500_000, -2)))
			return client, nil
		})

	resp := a.do(t, http.MethodPost, "/api/clients", map[string]any{
		"name":        "Ana María",
		"cedula":      "1234567890",
		"creditLimit": "5000",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.ClientResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, client.ID, got.ID)
	require.Equal(t, "Ana María", got.Name)
}

func TestHandler_CreateClient_DuplicateCedula(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.service.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
		Return(entity.Client{}, entity.ErrConflict)

	resp := a.do(t, http.MethodPost, "/api/clients", map[string]any{
		"name":   "Otro",
		"cedula": "1234567890",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_CreatePayment(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	creditID := uuid.Must(uuid.NewV4())

	payment := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		CreditID:  creditID,
		ClientID:  uuid.Must(uuid.NewV4()),
		Amount:    decimal.New(40_000, -2),
		Method:    entity.PaymentMethodCash,
		CreatedAt: time.Now(),
	}

	a.service.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req entity.NewPayment) (entity.Payment, error) {
			require.Equal(t, creditID, req.CreditID)
			require.True(t, req.Amount.Equal(decimal.New(40_000, -2)))
			require.Equal(t, entity.PaymentMethodCash, req.Method)
			require.Equal(t, "abono", req.Notes)
			return payment, nil
		})

	resp := a.do(t, http.MethodPost, "/api/credits/"+creditID.String()+"/payments", map[string]any{
		"amount":        "400",
		"paymentMethod": "cash",
		"notes":         "abono",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.PaymentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, payment.ID, got.ID)
	require.Equal(t, "cash", got.PaymentMethod)
}

func TestHandler_CreatePayment_ExceedsBalance(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	creditID := uuid.Must(uuid.NewV4())

	a.service.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).
		Return(entity.Payment{}, entity.ErrInvalidAmount)

	resp := a.do(t, http.MethodPost, "/api/credits/"+creditID.String()+"/payments", map[string]any{
		"amount":        "9000",
		"paymentMethod": "cash",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_CreateGeneralPayment_NoActiveDebt(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())

	a.service.EXPECT().RecordGeneralPayment(gomock.Any(), gomock.Any()).
		Return(entity.GeneralPaymentResult{}, entity.ErrNoActiveDebt)

	resp := a.do(t, http.MethodPost, "/api/clients/"+clientID.String()+"/payments", map[string]any{
		"amount":        "100",
		"paymentMethod": "cash",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_CreditHistory(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	creditID := uuid.Must(uuid.NewV4())

	entries := []entity.LedgerEntry{
		{
			PaymentID:       uuid.Must(uuid.NewV4()),
			CreditID:        creditID,
			Date:            time.Now(),
			Concept:         "Mercado",
			Method:          entity.PaymentMethodCash,
			PreviousBalance: decimal.New(500_000, -2),
			Amount:          decimal.New(100_000, -2),
			NewBalance:      decimal.New(400_000, -2),
		},
	}

	a.service.EXPECT().PaymentHistory(gomock.Any(), creditID).Return(entries, nil)

	resp := a.do(t, http.MethodGet, "/api/credits/"+creditID.String()+"/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []api.LedgerEntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	require.True(t, got[0].PreviousBalance.Equal(decimal.New(500_000, -2)))
	require.True(t, got[0].NewBalance.Equal(decimal.New(400_000, -2)))
}

func TestHandler_ClientHistory(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())

	entries := []entity.LedgerEntry{
		{
			PaymentID:       uuid.Must(uuid.NewV4()),
			CreditID:        uuid.Must(uuid.NewV4()),
			Date:            time.Now().Add(-time.Hour),
			Concept:         "Mercado",
			Method:          entity.PaymentMethodCash,
			PreviousBalance: decimal.New(100_000, -2),
			Amount:          decimal.New(40_000, -2),
			NewBalance:      decimal.New(60_000, -2),
		},
		{
			PaymentID:       uuid.Must(uuid.NewV4()),
			CreditID:        uuid.Must(uuid.NewV4()),
			Date:            time.Now(),
			Concept:         "Ferretería",
			Method:          entity.PaymentMethodTransfer,
			PreviousBalance: decimal.New(50_000, -2),
			Amount:          decimal.New(50_000, -2),
			NewBalance:      decimal.Zero,
		},
	}

	a.service.EXPECT().ClientHistory(gomock.Any(), clientID).Return(entries, nil)

	resp := a.do(t, http.MethodGet, "/api/clients/"+clientID.String()+"/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []api.LedgerEntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	require.Equal(t, "Mercado", got[0].Concept)
	require.Equal(t, "Ferretería", got[1].Concept)
	require.True(t, got[1].NewBalance.IsZero())
}

func TestHandler_Credit_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	creditID := uuid.Must(uuid.NewV4())

	a.service.EXPECT().Credit(gomock.Any(), creditID).Return(entity.CreditDetail{}, entity.ErrNotFound)

	resp := a.do(t, http.MethodGet, "/api/credits/"+creditID.String(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Credit_BadID(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/credits/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_SendStatement(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())

	n := entity.Notification{
		ID:          uuid.Must(uuid.NewV4()),
		ClientID:    clientID,
		Kind:        entity.NotificationKindManualStatement,
		Destination: "+573001234567",
		Status:      entity.NotificationStatusPending,
		CreatedAt:   time.Now(),
	}

	a.service.EXPECT().SendStatement(gomock.Any(), clientID).Return(n, nil)

	resp := a.do(t, http.MethodPost, "/api/clients/"+clientID.String()+"/statement", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var got api.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "pending", got.Status)
}

func TestHandler_MissingIdentity(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	req, err := http.NewRequest(http.MethodGet, a.server.URL+"/api/clients", nil)
	require.NoError(t, err)

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp, err := a.server.Client().Get(a.server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
