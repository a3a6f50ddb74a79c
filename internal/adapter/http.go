package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/internal/utils"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathLogin          = "/users/loginUser"
	pathRegister       = "/users/registerUser"
	pathLogout         = "/users/logoutUser"
	pathProfile        = "/users/getProfile"
	pathForgotPassword = "/users/forgot-password"
	pathResetPassword  = "/users/reset-password/{token}"
	pathClients        = "/clients"
	pathClient         = "/clients/{id}"
	pathClientByEmail  = "/clients/email/{email}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewAPIClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. POST /users/loginUser.
func (h *httpServerAdapter) Login(ctx context.Context, s *session.Session, email, password string) (models.User, error) {
	return h.authenticate(ctx, s, "login", pathLogin, models.LoginRequest{Email: email, Password: password})
}

// Register implements [ServerAdapter]. POST /users/registerUser.
func (h *httpServerAdapter) Register(ctx context.Context, s *session.Session, name, email, password string) (models.User, error) {
	return h.authenticate(ctx, s, "register", pathRegister, models.RegisterRequest{Name: name, Email: email, Password: password})
}

func (h *httpServerAdapter) authenticate(ctx context.Context, s *session.Session, op, path string, body any) (models.User, error) {
	resp, err := h.request(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return models.User{}, networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decodeResult(resp, &user); err != nil {
		return models.User{}, err
	}
	if strings.TrimSpace(user.Token) == "" {
		return models.User{}, &APIError{
			Kind:    KindServer,
			Status:  resp.StatusCode(),
			Message: invalidPayloadMessage,
			Err:     errors.New("response carries no token"),
		}
	}

	if err = s.Begin(ctx, user); err != nil {
		// the in-memory session is already set; only the local copy is missing
		h.logger.Warn().Err(err).Str("op", op).Msg("session was not persisted")
	}

	return user, nil
}

// Logout implements [ServerAdapter]. POST /users/logoutUser.
//
// The remote call is skipped when there is no token. Its failure is logged
// and swallowed. The session is cleared in every case.
func (h *httpServerAdapter) Logout(ctx context.Context, s *session.Session) {
	defer func() {
		if err := s.Clear(context.WithoutCancel(ctx)); err != nil {
			h.logger.Warn().Err(err).Msg("local session was not removed")
		}
	}()

	if !s.Authenticated() {
		return
	}

	resp, err := h.authedRequest(ctx, s).Post(pathLogout)
	if err != nil {
		h.logger.Warn().Err(networkError("logout", err)).Msg("logout API call failed")
		return
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Msg("logout API call failed")
	}
}

// Profile implements [ServerAdapter]. GET /users/getProfile.
func (h *httpServerAdapter) Profile(ctx context.Context, s *session.Session) (models.User, error) {
	var user models.User
	if err := h.do(h.authedRequest(ctx, s), "profile", resty.MethodGet, pathProfile, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ForgotPassword implements [ServerAdapter]. POST /users/forgot-password.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error) {
	var msg models.MessageResponse
	req := h.request(ctx).SetBody(models.ForgotPasswordRequest{Email: email})
	if err := h.do(req, "forgot password", resty.MethodPost, pathForgotPassword, &msg); err != nil {
		return models.MessageResponse{}, err
	}
	return msg, nil
}

// ResetPassword implements [ServerAdapter]. POST /users/reset-password/{token}.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, resetToken, password string) (models.MessageResponse, error) {
	var msg models.MessageResponse
	req := h.request(ctx).
		SetPathParam("token", resetToken).
		SetBody(models.ResetPasswordRequest{Password: password})
	if err := h.do(req, "reset password", resty.MethodPost, pathResetPassword, &msg); err != nil {
		return models.MessageResponse{}, err
	}
	return msg, nil
}

// ListClients implements [ServerAdapter]. GET /clients.
func (h *httpServerAdapter) ListClients(ctx context.Context, s *session.Session) ([]models.Client, error) {
	var clients []models.Client
	if err := h.do(h.authedRequest(ctx, s), "list clients", resty.MethodGet, pathClients, &clients); err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

// GetClient implements [ServerAdapter]. GET /clients/{id}.
func (h *httpServerAdapter) GetClient(ctx context.Context, s *session.Session, id string) (models.Client, error) {
	var client models.Client
	req := h.authedRequest(ctx, s).SetPathParam("id", id)
	if err := h.do(req, "get client", resty.MethodGet, pathClient, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// GetClientByEmail implements [ServerAdapter]. GET /clients/email/{email}.
func (h *httpServerAdapter) GetClientByEmail(ctx context.Context, s *session.Session, email string) (models.Client, error) {
	var client models.Client
	req := h.authedRequest(ctx, s).SetPathParam("email", email)
	if err := h.do(req, "get client by email", resty.MethodGet, pathClientByEmail, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// CreateClient implements [ServerAdapter]. POST /clients.
func (h *httpServerAdapter) CreateClient(ctx context.Context, s *session.Session, data models.ClientData) (models.Client, error) {
	var client models.Client
	req := h.authedRequest(ctx, s).SetBody(data)
	if err := h.do(req, "create client", resty.MethodPost, pathClients, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// ReplaceClient implements [ServerAdapter]. PUT /clients/{id}.
func (h *httpServerAdapter) ReplaceClient(ctx context.Context, s *session.Session, id string, data models.ClientData) (models.Client, error) {
	var client models.Client
	req := h.authedRequest(ctx, s).SetPathParam("id", id).SetBody(data)
	if err := h.do(req, "replace client", resty.MethodPut, pathClient, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// PatchClient implements [ServerAdapter]. PATCH /clients/{id}.
func (h *httpServerAdapter) PatchClient(ctx context.Context, s *session.Session, id string, patch models.ClientPatch) (models.Client, error) {
	var client models.Client
	req := h.authedRequest(ctx, s).SetPathParam("id", id).SetBody(patch)
	if err := h.do(req, "patch client", resty.MethodPatch, pathClient, &client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// DeleteClient implements [ServerAdapter]. DELETE /clients/{id}.
func (h *httpServerAdapter) DeleteClient(ctx context.Context, s *session.Session, id string) (models.MessageResponse, error) {
	var msg models.MessageResponse
	req := h.authedRequest(ctx, s).SetPathParam("id", id)
	if err := h.do(req, "delete client", resty.MethodDelete, pathClient, &msg); err != nil {
		return models.MessageResponse{}, err
	}
	return msg, nil
}

// do executes req and decodes a successful JSON body into result.
func (h *httpServerAdapter) do(req *resty.Request, op, method, path string, result any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("request failed")
		return err
	}

	return decodeResult(resp, result)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, s *session.Session) *resty.Request {
	req := h.request(ctx)
	if token := s.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
