package registryhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"keywarden/internal/domain"
)

// Client talks to a registryd server. It implements domain.Registry so CLI
// commands run unchanged against a local store or a remote daemon.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for the given base URL.
func NewClient(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

// Register creates the record for self on the remote registry.
func (c *Client) Register(ctx context.Context, self, mainKey, backupKey domain.Address) error {
	return c.post(ctx, "/v1/register", registerRequest{
		Caller:    self,
		MainKey:   mainKey,
		BackupKey: backupKey,
	}, nil)
}

// BindPartner mutually links self and partner on the remote registry.
func (c *Client) BindPartner(ctx context.Context, self, partner domain.Address) error {
	return c.post(ctx, "/v1/bind", bindRequest{Caller: self, Partner: partner}, nil)
}

// UpdateBackupKey replaces self's standby credential on the remote registry.
func (c *Client) UpdateBackupKey(ctx context.Context, self, newBackupKey domain.Address) error {
	return c.post(ctx, "/v1/backup-key", backupKeyRequest{Caller: self, BackupKey: newBackupKey}, nil)
}

// GetDetails fetches the record for addr.
func (c *Client) GetDetails(ctx context.Context, addr domain.Address) (domain.User, error) {
	var out userResponse
	if err := c.get(ctx, "/v1/users/"+url.PathEscape(addr.Hex()), &out); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

// Activate submits an activation signature for target.
func (c *Client) Activate(ctx context.Context, self, target domain.Address, sig []byte) error {
	return c.post(ctx, "/v1/activate", activateRequest{
		Caller:    self,
		Target:    target,
		Signature: sig,
	}, nil)
}

// Digest fetches the activation digest and deployment context for target.
func (c *Client) Digest(ctx context.Context, target domain.Address) ([]byte, domain.ContextID, error) {
	var out digestResponse
	if err := c.get(ctx, "/v1/digest/"+url.PathEscape(target.Hex()), &out); err != nil {
		return nil, "", err
	}
	return out.Digest, out.ContextID, nil
}

// Events fetches the audit log.
func (c *Client) Events(ctx context.Context) ([]domain.Event, error) {
	var out eventsResponse
	if err := c.get(ctx, "/v1/events", &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			if sentinel := codeError(apiErr.Code); sentinel != nil {
				return sentinel
			}
			if apiErr.Error != "" {
				return fmt.Errorf("registry %s: %s", path, apiErr.Error)
			}
		}
		return fmt.Errorf("registry %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Compile-time assertion that Client implements domain.Registry.
var _ domain.Registry = (*Client)(nil)
