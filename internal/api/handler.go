package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fiadoapp/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	CreateClient(ctx context.Context, req entity.NewClient) (entity.Client, error)
	Client(ctx context.Context, clientID uuid.UUID) (entity.Client, error)
	SearchClients(ctx context.Context, query string) ([]entity.Client, error)
	UpdateClient(ctx context.Context, clientID uuid.UUID, upd entity.ClientUpdate) (entity.Client, error)
	ClientSummary(ctx context.Context, clientID uuid.UUID) (entity.ClientSummary, error)
	DashboardSummary(ctx context.Context) (entity.DashboardSummary, error)

	CreateCredit(ctx context.Context, req entity.NewCredit) (entity.Credit, error)
	Credit(ctx context.Context, creditID uuid.UUID) (entity.CreditDetail, error)
	CreditsByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Credit, error)
	ResetClientAccount(ctx context.Context, clientID uuid.UUID) error

	RecordPayment(ctx context.Context, req entity.NewPayment) (entity.Payment, error)
	RecordGeneralPayment(ctx context.Context, req entity.NewGeneralPayment) (entity.GeneralPaymentResult, error)
	PaymentHistory(ctx context.Context, creditID uuid.UUID) ([]entity.LedgerEntry, error)
	ClientHistory(ctx context.Context, clientID uuid.UUID) ([]entity.LedgerEntry, error)
	ClientPayments(ctx context.Context, clientID uuid.UUID) ([]entity.Payment, error)

	SendStatement(ctx context.Context, clientID uuid.UUID) (entity.Notification, error)
	NotificationsByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Notification, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type ClientResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Cedula         string          `json:"cedula"`
	WhatsappNumber string          `json:"whatsappNumber"`
	Email          string          `json:"email"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type CreateClientRequest struct {
	Name           string          `json:"name"`
	Cedula         string          `json:"cedula"`
	WhatsappNumber string          `json:"whatsappNumber"`
	Email          string          `json:"email"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	client, err := h.s.CreateClient(ctx, entity.NewClient{
		Name:           req.Name,
		Cedula:         req.Cedula,
		WhatsappNumber: req.WhatsappNumber,
		Email:          req.Email,
		CreditLimit:    req.CreditLimit,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			SendJSONErr(ctx, w, http.StatusConflict, err, "Ya existe un cliente con esa cédula")
			return
		}

		sendServiceErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, clientResponse(client))
}

func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.SearchClients(ctx, r.URL.Query().Get("q"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, clientResponse(c))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) Client(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	client, err := h.s.Client(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, clientResponse(client))
}

type UpdateClientRequest struct {
	Name           *string          `json:"name"`
	WhatsappNumber *string          `json:"whatsappNumber"`
	Email          *string          `json:"email"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	Status         *string          `json:"status"`
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	var req UpdateClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	upd := entity.ClientUpdate{
		Name:           req.Name,
		WhatsappNumber: req.WhatsappNumber,
		Email:          req.Email,
		CreditLimit:    req.CreditLimit,
	}

	if req.Status != nil {
		status := entity.ClientStatus(*req.Status)
		upd.Status = &status
	}

	client, err := h.s.UpdateClient(ctx, clientID, upd)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, clientResponse(client))
}

type ClientSummaryResponse struct {
	Client         ClientResponse  `json:"client"`
	ActiveCredits  int             `json:"activeCredits"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	PendingBalance decimal.Decimal `json:"pendingBalance"`
	AvailableQuota decimal.Decimal `json:"availableQuota"`
}

func (h *Handler) ClientSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	summary, err := h.s.ClientSummary(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ClientSummaryResponse{
		Client:         clientResponse(summary.Client),
		ActiveCredits:  summary.ActiveCredits,
		TotalCredit:    summary.TotalCredit,
		PendingBalance: summary.PendingBalance,
		AvailableQuota: summary.AvailableQuota,
	})
}

type DashboardSummaryResponse struct {
	TotalClients        int             `json:"totalClients"`
	TotalActiveCredits  int             `json:"totalActiveCredits"`
	TotalActiveAmount   decimal.Decimal `json:"totalActiveAmount"`
	TotalPendingBalance decimal.Decimal `json:"totalPendingBalance"`
}

func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.DashboardSummary(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, DashboardSummaryResponse{
		TotalClients:        summary.TotalClients,
		TotalActiveCredits:  summary.TotalActiveCredits,
		TotalActiveAmount:   summary.TotalActiveAmount,
		TotalPendingBalance: summary.TotalPendingBalance,
	})
}

type CreditResponse struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"clientId"`
	Concept    string          `json:"concept"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"`
	CreditDays int32           `json:"creditDays"`
	DueDate    *time.Time      `json:"dueDate,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type CreateCreditRequest struct {
	ClientID   uuid.UUID       `json:"clientId"`
	Concept    string          `json:"concept"`
	Amount     decimal.Decimal `json:"amount"`
	CreditDays int32           `json:"creditDays"`
}

func (h *Handler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCreditRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	credit, err := h.s.CreateCredit(ctx, entity.NewCredit{
		ClientID:   req.ClientID,
		Concept:    req.Concept,
		Amount:     req.Amount,
		CreditDays: req.CreditDays,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, creditResponse(credit))
}

type CreditDetailResponse struct {
	CreditResponse
	TotalPaid decimal.Decimal `json:"totalPaid"`
}

func (h *Handler) Credit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creditID, ok := pathID(ctx, w, r, "credit_id")
	if !ok {
		return
	}

	detail, err := h.s.Credit(ctx, creditID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, CreditDetailResponse{
		CreditResponse: creditResponse(detail.Credit),
		TotalPaid:      detail.TotalPaid,
	})
}

func (h *Handler) ClientCredits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	credits, err := h.s.CreditsByClient(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]CreditResponse, 0, len(credits))
	for _, c := range credits {
		resp = append(resp, creditResponse(c))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	CreditID      uuid.UUID       `json:"creditId"`
	ClientID      uuid.UUID       `json:"clientId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"paymentMethod"`
	Notes  string          `json:"notes"`
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creditID, ok := pathID(ctx, w, r, "credit_id")
	if !ok {
		return
	}

	var req CreatePaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	payment, err := h.s.RecordPayment(ctx, entity.NewPayment{
		CreditID: creditID,
		Amount:   req.Amount,
		Method:   entity.PaymentMethod(req.Method),
		Notes:    req.Notes,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, paymentResponse(payment))
}

type GeneralPaymentResponse struct {
	PaymentsCreated int             `json:"paymentsCreated"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
}

func (h *Handler) CreateGeneralPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	var req CreatePaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	result, err := h.s.RecordGeneralPayment(ctx, entity.NewGeneralPayment{
		ClientID: clientID,
		Amount:   req.Amount,
		Method:   entity.PaymentMethod(req.Method),
		Notes:    req.Notes,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, GeneralPaymentResponse{
		PaymentsCreated: result.PaymentsCreated,
		TotalPaid:       result.TotalPaid,
	})
}

type LedgerEntryResponse struct {
	PaymentID       uuid.UUID       `json:"paymentId"`
	CreditID        uuid.UUID       `json:"creditId"`
	Date            time.Time       `json:"date"`
	Concept         string          `json:"concept"`
	PaymentMethod   string          `json:"paymentMethod"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	Amount          decimal.Decimal `json:"amount"`
	NewBalance      decimal.Decimal `json:"newBalance"`
}

func (h *Handler) CreditHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creditID, ok := pathID(ctx, w, r, "credit_id")
	if !ok {
		return
	}

	entries, err := h.s.PaymentHistory(ctx, creditID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, LedgerEntryResponse{
			PaymentID:       e.PaymentID,
			CreditID:        e.CreditID,
			Date:            e.Date,
			Concept:         e.Concept,
			PaymentMethod:   e.Method.String(),
			PreviousBalance: e.PreviousBalance,
			Amount:          e.Amount,
			NewBalance:      e.NewBalance,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ClientHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	entries, err := h.s.ClientHistory(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, LedgerEntryResponse{
			PaymentID:       e.PaymentID,
			CreditID:        e.CreditID,
			Date:            e.Date,
			Concept:         e.Concept,
			PaymentMethod:   e.Method.String(),
			PreviousBalance: e.PreviousBalance,
			Amount:          e.Amount,
			NewBalance:      e.NewBalance,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ClientPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	payments, err := h.s.ClientPayments(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, paymentResponse(p))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type NotificationResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"clientId"`
	CreditID    *uuid.UUID      `json:"creditId,omitempty"`
	Kind        string          `json:"kind"`
	Destination string          `json:"destination"`
	Body        string          `json:"body,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Status      string          `json:"status"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	SentAt      *time.Time      `json:"sentAt,omitempty"`
}

func (h *Handler) SendStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	n, err := h.s.SendStatement(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusAccepted, notificationResponse(n))
}

func (h *Handler) ClientNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	notifications, err := h.s.NotificationsByClient(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, notificationResponse(n))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ResetClientAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(ctx, w, r, "client_id")
	if !ok {
		return
	}

	err := h.s.ResetClientAccount(ctx, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]string{"message": "Cuenta reiniciada"})
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "No encontrado")
	case errors.Is(err, entity.ErrConflict):
		SendJSONErr(ctx, w, http.StatusConflict, err, "El registro ya existe")
	case errors.Is(err, entity.ErrNoActiveDebt):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "El cliente no tiene deudas activas")
	case errors.Is(err, entity.ErrInvalidAmount):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Monto inválido")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Solicitud inválida")
	case errors.Is(err, entity.ErrUnauthorized):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "No autorizado")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Error interno")
	}
}

func pathID(ctx context.Context, w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, param))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Identificador inválido")
		return uuid.UUID{}, false
	}

	return id, true
}

func clientResponse(c entity.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Cedula:         c.Cedula,
		WhatsappNumber: c.WhatsappNumber,
		Email:          c.Email,
		CreditLimit:    c.CreditLimit,
		Status:         c.Status.String(),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func creditResponse(c entity.Credit) CreditResponse {
	return CreditResponse{
		ID:         c.ID,
		ClientID:   c.ClientID,
		Concept:    c.Concept,
		Amount:     c.Amount,
		Balance:    c.Balance,
		CreditDays: c.CreditDays,
		DueDate:    c.DueDate,
		Status:     c.EffectiveStatus(time.Now()).String(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func paymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		CreditID:      p.CreditID,
		ClientID:      p.ClientID,
		Amount:        p.Amount,
		PaymentMethod: p.Method.String(),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

func notificationResponse(n entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:          n.ID,
		ClientID:    n.ClientID,
		Kind:        n.Kind.String(),
		Destination: n.Destination,
		Body:        n.Body,
		Status:      n.Status.String(),
		Error:       n.Error,
		CreatedAt:   n.CreatedAt,
		SentAt:      n.SentAt,
	}

	if n.CreditID.Valid {
		id := n.CreditID.UUID
		resp.CreditID = &id
	}

	if n.Amount.Valid {
		amount := n.Amount.Decimal
		resp.Amount = &amount
	}

	return resp
}
