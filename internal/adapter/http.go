// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-equip-keeper/internal/config"
	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/utils"
	"github.com/MKhiriev/go-equip-keeper/models"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// A base URL without a scheme is treated as http. Every request carries a
// fresh X-Request-ID and is logged with its status and duration.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}

	h.client.
		OnBeforeRequest(h.tagRequest).
		OnAfterResponse(h.logResponse).
		OnError(h.logError)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, transportError("login", err)
	}

	return h.signIn(resp, "login")
}

func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, transportError("register", err)
	}

	return h.signIn(resp, "register")
}

func (h *httpServerAdapter) signIn(resp *resty.Response, op string) (models.AuthResponse, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err := decode(resp, &auth, op); err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: %w: no token in response", op, ErrDecode)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) (models.MessageResponse, error) {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return models.MessageResponse{}, transportError("logout", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	var msg models.MessageResponse
	return msg, decodeOptional(resp, &msg, "logout")
}

func (h *httpServerAdapter) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	resp, err := h.authedRequest(ctx).Get("/api/laptops")
	if err != nil {
		return nil, transportError("list laptops", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	laptops := make([]models.Laptop, 0)
	if err = decode(resp, &laptops, "list laptops"); err != nil {
		return nil, err
	}
	return laptops, nil
}

func (h *httpServerAdapter) CreateLaptop(ctx context.Context, input models.LaptopInput) (models.Laptop, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/laptops")
	if err != nil {
		return models.Laptop{}, transportError("create laptop", err)
	}

	return decodeLaptop(resp, "create laptop")
}

func (h *httpServerAdapter) UpdateLaptop(ctx context.Context, id string, input models.LaptopInput) (models.Laptop, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(input).
		Put("/api/laptops/{id}")
	if err != nil {
		return models.Laptop{}, transportError("update laptop", err)
	}

	return decodeLaptop(resp, "update laptop")
}

func (h *httpServerAdapter) DeleteLaptop(ctx context.Context, id string) (models.MessageResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/laptops/{id}")
	if err != nil {
		return models.MessageResponse{}, transportError("delete laptop", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	var msg models.MessageResponse
	return msg, decodeOptional(resp, &msg, "delete laptop")
}

func (h *httpServerAdapter) DistributeLaptop(ctx context.Context, req models.DistributeRequest) (models.LaptopResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/laptops/distribute")
	if err != nil {
		return models.LaptopResponse{}, transportError("distribute laptop", err)
	}

	return decodeLaptopResponse(resp, "distribute laptop")
}

func (h *httpServerAdapter) ReturnLaptop(ctx context.Context, req models.ReturnRequest) (models.LaptopResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/laptops/return")
	if err != nil {
		return models.LaptopResponse{}, transportError("return laptop", err)
	}

	return decodeLaptopResponse(resp, "return laptop")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) tagRequest(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(requestIDHeader) == "" {
		r.SetHeader(requestIDHeader, h.ids.Generate())
	}
	return nil
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api call")
	return nil
}

func (h *httpServerAdapter) logError(r *resty.Request, err error) {
	h.logger.Err(err).
		Str("request_id", r.Header.Get(requestIDHeader)).
		Str("method", r.Method).
		Str("url", r.URL).
		Msg("api call failed")
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %w", op, ErrTransport, err)
}

func decode(resp *resty.Response, v any, op string) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode %s response: %w: %w", op, ErrDecode, err)
	}
	return nil
}

// decodeOptional accepts an empty body.
func decodeOptional(resp *resty.Response, v any, op string) error {
	if len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return nil
	}
	return decode(resp, v, op)
}

func decodeLaptop(resp *resty.Response, op string) (models.Laptop, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Laptop{}, err
	}

	var laptop models.Laptop
	if err := decode(resp, &laptop, op); err != nil {
		return models.Laptop{}, err
	}
	return laptop, nil
}

func decodeLaptopResponse(resp *resty.Response, op string) (models.LaptopResponse, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.LaptopResponse{}, err
	}

	var out models.LaptopResponse
	if err := decode(resp, &out, op); err != nil {
		return models.LaptopResponse{}, err
	}
	return out, nil
}
