// Package client is a typed HTTP client for the usuarios API. Every method is
// one request awaited to completion; nothing is cached. A request rejected
// with 401 is retried once after refreshing the access token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"gestionusuarios/internal/model"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

var errNoRefreshToken = errors.New("no refresh token; log in first")

// Client talks to the usuarios API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// New creates a client for baseURL, e.g. http://localhost:8080.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Authenticated reports whether write calls will carry a token.
func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken != ""
}

type tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login obtains a token pair for the operator and keeps it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out tokens
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return err
	}
	c.mu.Lock()
	c.accessToken, c.refreshToken = out.AccessToken, out.RefreshToken
	c.mu.Unlock()
	return nil
}

// Refresh exchanges the stored refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()

	if refresh == "" {
		return errNoRefreshToken
	}

	var out tokens
	if _, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, map[string]string{"refresh_token": refresh}, &out); err != nil {
		return err
	}
	c.mu.Lock()
	c.accessToken = out.AccessToken
	c.mu.Unlock()
	return nil
}

// Logout revokes the refresh token and forgets both tokens.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()
	if refresh == "" {
		return nil
	}
	_, err := c.send(ctx, http.MethodPost, "/auth/logout", nil, map[string]string{"refresh_token": refresh}, nil)
	c.mu.Lock()
	c.accessToken, c.refreshToken = "", ""
	c.mu.Unlock()
	return err
}

func (c *Client) ListarUsuarios(ctx context.Context) ([]model.Usuario, error) {
	return c.consulta(ctx, "/usuarios", nil)
}

func (c *Client) ObtenerUsuario(ctx context.Context, id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := c.do(ctx, http.MethodGet, "/usuarios/"+strconv.FormatUint(uint64(id), 10), nil, nil, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (c *Client) AgregarUsuario(ctx context.Context, form model.UsuarioFormData) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := c.do(ctx, http.MethodPost, "/usuarios", nil, form, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (c *Client) ModificarUsuario(ctx context.Context, id uint, form model.UsuarioFormData) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := c.do(ctx, http.MethodPut, "/usuarios/"+strconv.FormatUint(uint64(id), 10), nil, form, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (c *Client) EliminarUsuario(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/usuarios/"+strconv.FormatUint(uint64(id), 10), nil, nil, nil)
}

func (c *Client) ListarCargos(ctx context.Context) ([]model.Cargo, error) {
	cargos := []model.Cargo{}
	if err := c.do(ctx, http.MethodGet, "/cargos", nil, nil, &cargos); err != nil {
		return nil, err
	}
	return cargos, nil
}

func (c *Client) CrearCargo(ctx context.Context, cargo model.Cargo) (*model.Cargo, error) {
	var created model.Cargo
	if err := c.do(ctx, http.MethodPost, "/cargos", nil, cargo, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) RegistrarAsistencia(ctx context.Context, form model.AsistenciaFormData) (*model.Asistencia, error) {
	var asistencia model.Asistencia
	if err := c.do(ctx, http.MethodPost, "/asistencias", nil, form, &asistencia); err != nil {
		return nil, err
	}
	return &asistencia, nil
}

func (c *Client) UsuariosSueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error) {
	q := url.Values{"monto": {monto.String()}}
	return c.consulta(ctx, "/consultas/sueldo-mayor", q)
}

func (c *Client) UsuariosSueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error) {
	q := url.Values{"min": {min.String()}, "max": {max.String()}}
	return c.consulta(ctx, "/consultas/sueldo-entre", q)
}

func (c *Client) UsuariosLlegaronTarde(ctx context.Context) ([]model.Usuario, error) {
	return c.consulta(ctx, "/consultas/llegaron-tarde", nil)
}

func (c *Client) UsuariosSalieronTemprano(ctx context.Context) ([]model.Usuario, error) {
	return c.consulta(ctx, "/consultas/salieron-temprano", nil)
}

// consulta GETs a list of usuario projections.
func (c *Client) consulta(ctx context.Context, path string, q url.Values) ([]model.Usuario, error) {
	usuarios := []model.Usuario{}
	if err := c.do(ctx, http.MethodGet, path, q, nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// Cargar fetches usuarios and cargos concurrently, the initial page load.
func (c *Client) Cargar(ctx context.Context) ([]model.Usuario, []model.Cargo, error) {
	var (
		usuarios []model.Usuario
		cargos   []model.Cargo
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		usuarios, err = c.ListarUsuarios(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cargos, err = c.ListarCargos(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return usuarios, cargos, nil
}

// do sends one request. A 401 on a non-auth path triggers a single token
// refresh and a retry with the new access token.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	sentToken, err := c.send(ctx, method, path, query, in, out)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized ||
		sentToken == "" || strings.HasPrefix(path, "/auth/") {
		return err
	}
	if rerr := c.Refresh(ctx); rerr != nil {
		return err
	}
	_, err = c.send(ctx, method, path, query, in, out)
	return err
}

// send performs a single attempt and returns the access token it carried.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, in, out interface{}) (string, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return "", fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	token := c.accessToken
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return token, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		var generic struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Message == "" {
			if json.Unmarshal(raw, &generic) == nil && generic.Message != "" {
				apiErr.Message = generic.Message
			} else {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
		}
		return token, apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return token, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return token, fmt.Errorf("decode response: %w", err)
	}
	return token, nil
}
