package simplybook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"bitbucket.org/planbgroup/booking-notifier/internal/tools/requesting"
	"github.com/google/uuid"
)

// ErrCorrelationMismatch signals a misrouted or replayed RPC response. The
// call is treated as failed, never retried.
var ErrCorrelationMismatch = errors.New("rpc response id does not match request id")

// RPCError is a remote-reported JSON-RPC error, propagated verbatim.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error: %s (code %d)", e.Message, e.Code)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      string `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
	ID     json.RawMessage `json:"id"`
}

// call issues a single JSON-RPC POST and binds the result payload into
// result. Caller headers are merged on top of the content-type header; one
// attempt only, no retry policy beyond the transport's.
func (c *Client) call(ctx context.Context, endpoint string, method string, params any, headers map[string]string, result any) error {
	correlationID := uuid.New().String()

	requestBody, err := json.Marshal(&rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      correlationID,
	})
	if err != nil {
		return err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	httpRequest.Header.Set("Content-Type", "application/json")
	for name, value := range headers {
		httpRequest.Header.Set(name, value)
	}

	client := &http.Client{
		Timeout: c.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: c.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(c.logger),
			},
		},
	}

	httpResponse, err := requesting.RequestErrors(client.Do(httpRequest))
	if err != nil {
		return err
	}

	bodyBytes, _ := io.ReadAll(httpResponse.Body)
	httpResponse.Body.Close()

	var response rpcResponse
	err = json.Unmarshal(bodyBytes, &response)
	if err != nil {
		return fmt.Errorf("unparseable rpc response for %s: %w", method, err)
	}

	if response.Error != nil {
		return response.Error
	}

	echoedID := echoedCorrelationID(response.ID)
	if echoedID != correlationID {
		return fmt.Errorf("%w: sent %q, got %q", ErrCorrelationMismatch, correlationID, echoedID)
	}

	if result == nil {
		return nil
	}

	err = json.Unmarshal(response.Result, result)
	if err != nil {
		return fmt.Errorf("unparseable rpc result for %s: %w", method, err)
	}

	return nil
}

// The id comes back as whatever JSON scalar the server chose to echo.
func echoedCorrelationID(raw json.RawMessage) string {
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return string(raw)
	}

	return id
}
