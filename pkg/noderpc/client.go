// Copyright (C) 2025, Strata Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package noderpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stratalabs/sequencer-cli/pkg/constants"
)

// Client implements the sequencer node's admin JSON-RPC API. Read-only:
// nothing here mutates node or deployment state.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new node RPC client.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: constants.APIRequestTimeout,
		},
	}
}

// RPCRequest represents a JSON-RPC 2.0 request.
type RPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// RPCResponse represents a JSON-RPC 2.0 response.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC error.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("RPC error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// call makes a single-shot RPC call to the node endpoint. No retries.
func (c *Client) call(ctx context.Context, method string, params interface{}, result interface{}) error {
	req := RPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("RPC call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var rpcResp RPCResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if result != nil && len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
	}

	return nil
}

// Tip is one chain tip entry in the node_getL2Tips result. Number is a
// pointer so a null from a node that has proven nothing yet is
// distinguishable from zero.
type Tip struct {
	Number *uint64 `json:"number"`
	Hash   string  `json:"hash,omitempty"`
}

// L2Tips is the node_getL2Tips result.
type L2Tips struct {
	Latest    Tip `json:"latest"`
	Proven    Tip `json:"proven"`
	Finalized Tip `json:"finalized"`
}

// GetL2Tips fetches the node's view of the chain tips.
func (c *Client) GetL2Tips(ctx context.Context) (*L2Tips, error) {
	var tips L2Tips
	if err := c.call(ctx, "node_getL2Tips", nil, &tips); err != nil {
		return nil, fmt.Errorf("%w: node_getL2Tips: %v", constants.ErrQuery, err)
	}
	return &tips, nil
}

// ProvenBlockNumber returns the proven chain height. A null or missing
// proven number is a query failure, not a zero height.
func (c *Client) ProvenBlockNumber(ctx context.Context) (uint64, error) {
	tips, err := c.GetL2Tips(ctx)
	if err != nil {
		return 0, err
	}
	if tips.Proven.Number == nil {
		return 0, fmt.Errorf("%w: node returned a null proven block number", constants.ErrQuery)
	}
	return *tips.Proven.Number, nil
}

// GetArchiveSiblingPath fetches the Merkle sibling-path proof attesting
// to archive inclusion at the given block height. The node expects the
// block number twice.
func (c *Client) GetArchiveSiblingPath(ctx context.Context, blockNumber uint64) (string, error) {
	var proof string
	if err := c.call(ctx, "node_getArchiveSiblingPath", []uint64{blockNumber, blockNumber}, &proof); err != nil {
		return "", fmt.Errorf("%w: node_getArchiveSiblingPath: %v", constants.ErrQuery, err)
	}
	if proof == "" {
		return "", fmt.Errorf("%w: node returned an empty sibling path", constants.ErrQuery)
	}
	return proof, nil
}
