// Package rpc implements the read-only on-chain data collaborator over
// JSON-RPC.
package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Account layouts of the upgradeable loader. Program-data accounts carry a
// 45-byte metadata header (discriminant, deploy slot, upgrade authority);
// buffer accounts carry 37 bytes (discriminant, authority). Executable bytes
// start right after.
const (
	programDataMetadataLen = 45
	bufferMetadataLen      = 37
)

// Client implements ports.ChainReader against a JSON-RPC endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   ports.Logger
}

var _ ports.ChainReader = (*Client)(nil)

// NewClient creates a reader for the given RPC endpoint.
func NewClient(endpoint string, logger ports.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		logger:   logger,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// WithHTTPClient overrides the underlying HTTP client. Used in tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// ProgramData derives the program-data address for a deployed program and
// returns its executable bytes with the metadata header stripped.
func (c *Client) ProgramData(ctx context.Context, programID domain.Pubkey) ([]byte, error) {
	address, err := domain.ProgramDataAddress(programID)
	if err != nil {
		return nil, err
	}

	data, err := c.accountData(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(data) < programDataMetadataLen {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrAccountNotFound, ""),
			"address", address.String()),
			"reason", "account smaller than program-data metadata",
		)
	}
	return data[programDataMetadataLen:], nil
}

// BufferData returns the executable bytes of a buffer account with the
// metadata header stripped.
func (c *Client) BufferData(ctx context.Context, address domain.Pubkey) ([]byte, error) {
	data, err := c.accountData(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(data) < bufferMetadataLen {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrAccountNotFound, ""),
			"address", address.String()),
			"reason", "account smaller than buffer metadata",
		)
	}
	return data[bufferMetadataLen:], nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result *struct {
		Value *struct {
			Data []string `json:"data"`
		} `json:"value"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) accountData(ctx context.Context, address domain.Pubkey) ([]byte, error) {
	payload := rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getAccountInfo",
		Params: []any{
			address.String(),
			map[string]string{"encoding": "base64"},
		},
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return nil, zerr.Wrap(err, "failed to encode rpc request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create rpc request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrRPCFailure, err.Error())
	}
	defer res.Body.Close() //nolint:errcheck // Best effort close in defer

	if res.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(res.Body)
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrRPCFailure, ""),
			"status_code", res.StatusCode),
			"body", string(raw),
		)
	}

	var decoded rpcResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, zerr.Wrap(err, "failed to decode rpc response")
	}
	if decoded.Error != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrRPCFailure, ""),
			"code", decoded.Error.Code),
			"message", decoded.Error.Message,
		)
	}
	if decoded.Result == nil || decoded.Result.Value == nil || len(decoded.Result.Value.Data) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrAccountNotFound, ""), "address", address.String())
	}

	data, err := base64.StdEncoding.DecodeString(decoded.Result.Value.Data[0])
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode account data")
	}
	return data, nil
}
