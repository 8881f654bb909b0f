// Package upstream implementa el cliente HTTP del API remoto del portal.
// El API es el colaborador externo dueño de los datos y la lógica de
// negocio (personas, facturas, KYC, pagos); este cliente solo arma
// peticiones JSON y materializa respuestas.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// APIError es el error que entrega el API remoto: status HTTP más un
// mensaje legible. El gateway nunca interpreta el código más allá de
// éxito/fracaso; el mensaje se propaga tal cual.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api remoto (%d %s): %s", e.Status, e.Code, e.Message)
}

// LoginResult respuesta de login/registro del API remoto.
type LoginResult struct {
	User       *entity.User `json:"user"`
	Token      string       `json:"token"`
	RedirectTo string       `json:"redirectTo,omitempty"`
}

// CheckoutOrder orden creada por el API remoto para el widget de pago.
type CheckoutOrder struct {
	OrderID   string `json:"orderId"`
	InvoiceID string `json:"invoiceId"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// RegisterPayload cuerpo de registro reenviado al API remoto.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Client cliente HTTP del API remoto del portal.
type Client struct {
	baseURL string
	http    *http.Client
}

// New construye el cliente. baseURL sin slash final (ej.
// "https://api.nivasa.example"). Sin timeout se usan 15s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// do ejecuta una petición JSON autenticada (token vacío = endpoint
// público) y decodifica la respuesta en out si no es nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("petición %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Code: "UPSTREAM_ERROR", Message: resp.Status}
		// El cuerpo de error es best-effort: si no es JSON queda el status.
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(apiErr)
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// GetMe valida el token y devuelve la identidad vigente. Falla con
// *APIError cuando el token es inválido o expiró.
func (c *Client) GetMe(ctx context.Context, token string) (*entity.User, error) {
	var u entity.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login autentica email/password y devuelve el par user+token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	in := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register crea la cuenta y devuelve el par user+token ya autenticado.
func (c *Client) Register(ctx context.Context, in RegisterPayload) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRoleAccess devuelve los grants de navegación por rol.
func (c *Client) GetRoleAccess(ctx context.Context, token string) ([]entity.RoleAccess, error) {
	var out []entity.RoleAccess
	if err := c.do(ctx, http.MethodGet, "/api/admin/role-access", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateRoleAccess reemplaza los grants de navegación de un rol.
func (c *Client) UpdateRoleAccess(ctx context.Context, token string, role entity.Role, navItems []entity.NavKey) error {
	in := entity.RoleAccess{Role: role, NavItems: navItems}
	return c.do(ctx, http.MethodPut, "/api/admin/role-access", token, in, nil)
}

// ListInvoices devuelve las facturas del usuario del token.
func (c *Client) ListInvoices(ctx context.Context, token string) ([]entity.Invoice, error) {
	var out []entity.Invoice
	if err := c.do(ctx, http.MethodGet, "/api/billing/invoices", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCheckoutOrder pide al API remoto una orden de pago para la
// factura; la orden la consume el widget de checkout en el navegador.
func (c *Client) CreateCheckoutOrder(ctx context.Context, token, invoiceID string) (*CheckoutOrder, error) {
	in := map[string]string{"invoiceId": invoiceID}
	var out CheckoutOrder
	if err := c.do(ctx, http.MethodPost, "/api/billing/checkout", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListComplaints devuelve las quejas visibles para el usuario del token
// (el API aplica el alcance por rol: propias, asignadas o todas).
func (c *Client) ListComplaints(ctx context.Context, token string, limit, offset int) ([]entity.Complaint, error) {
	path := fmt.Sprintf("/api/complaints?limit=%d&offset=%d", limit, offset)
	var out []entity.Complaint
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComplaint registra una queja nueva.
func (c *Client) CreateComplaint(ctx context.Context, token string, in map[string]string) (*entity.Complaint, error) {
	var out entity.Complaint
	if err := c.do(ctx, http.MethodPost, "/api/complaints", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetComplaint devuelve una queja por id.
func (c *Client) GetComplaint(ctx context.Context, token, id string) (*entity.Complaint, error) {
	var out entity.Complaint
	if err := c.do(ctx, http.MethodGet, "/api/complaints/"+id, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitOnboardingStep envía un paso del onboarding PG_TENANT y devuelve
// el estado resultante del flujo.
func (c *Client) SubmitOnboardingStep(ctx context.Context, token, step string, payload any) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tenant/onboarding/"+step, token, payload, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// ListProperties devuelve las propiedades del propietario del token.
func (c *Client) ListProperties(ctx context.Context, token string) ([]entity.Property, error) {
	var out []entity.Property
	if err := c.do(ctx, http.MethodGet, "/api/properties", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
