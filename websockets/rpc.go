package websockets

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anyswap/ripple-signer/log"
	"github.com/go-resty/resty/v2"
)

const defaultRPCTimeout = 10 * time.Second

// RPCClient submits through rippled's JSON-RPC interface.
type RPCClient struct {
	endpoint string
	client   *resty.Client
}

var _ Submitter = (*RPCClient)(nil)

type rpcRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type rpcSubmitResponse struct {
	Result struct {
		SubmitResult
		CommandError
		Status string `json:"status"`
	} `json:"result"`
}

// NewRPCClient new json rpc client of endpoint
func NewRPCClient(endpoint string, timeout time.Duration) *RPCClient {
	if timeout <= 0 {
		timeout = defaultRPCTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &RPCClient{
		endpoint: endpoint,
		client:   client,
	}
}

func (c *RPCClient) String() string {
	return c.endpoint
}

// Submit calls the submit method with the hex encoded blob.
func (c *RPCClient) Submit(blob []byte) (*SubmitResult, error) {
	req := rpcRequest{
		Method: "submit",
		Params: []interface{}{
			map[string]string{"tx_blob": fmt.Sprintf("%X", blob)},
		},
	}
	resp, err := c.client.R().SetBody(req).Post(c.endpoint)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("json rpc %v: http status %v", c.endpoint, resp.Status())
	}
	log.Trace("json rpc response", "endpoint", c.endpoint, "body", string(resp.Body()))
	var result rpcSubmitResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("json rpc %v: %w", c.endpoint, err)
	}
	if result.Result.Status == "error" || result.Result.Name != "" {
		cmdErr := result.Result.CommandError
		return nil, &cmdErr
	}
	submitResult := result.Result.SubmitResult
	return &submitResult, nil
}
