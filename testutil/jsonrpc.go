package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *jsonRPCError   `json:"error,omitempty"`
}

// MockJSONRPCServer replies to each request with the next canned response.  Once the responses
// run out the last one is repeated.
type MockJSONRPCServer struct {
	*httptest.Server
	mu        sync.Mutex
	responses []any
	Counter   int
	Requests  []JSONRPCRequest
}

// MockJSONRPC starts a server.  A response is a string (a bare result, or a full JSON-RPC envelope),
// an error (sent as a JSON-RPC error), or a []string / []any sequence of those.
func MockJSONRPC(t *testing.T, response any) (*MockJSONRPCServer, func()) {
	mock := &MockJSONRPCServer{}
	switch r := response.(type) {
	case []string:
		for _, s := range r {
			mock.responses = append(mock.responses, s)
		}
	case []any:
		mock.responses = r
	default:
		mock.responses = []any{r}
	}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			t.Errorf("could not read request: %v", err)
			return
		}
		var rpcReq JSONRPCRequest
		if err := json.Unmarshal(body, &rpcReq); err != nil {
			t.Errorf("could not decode json-rpc request %s: %v", string(body), err)
			return
		}

		mock.mu.Lock()
		mock.Requests = append(mock.Requests, rpcReq)
		index := mock.Counter
		if index >= len(mock.responses) {
			index = len(mock.responses) - 1
		}
		mock.Counter++
		next := mock.responses[index]
		mock.mu.Unlock()

		reply := jsonRPCResponse{JSONRPC: "2.0", ID: rpcReq.ID}
		switch next := next.(type) {
		case error:
			reply.Error = &jsonRPCError{Code: -32000, Message: next.Error()}
		case string:
			var envelope jsonRPCResponse
			if err := json.Unmarshal([]byte(next), &envelope); err == nil && envelope.JSONRPC != "" {
				reply.Result = envelope.Result
				reply.Error = envelope.Error
			} else {
				reply.Result = json.RawMessage(next)
			}
		default:
			t.Errorf("unsupported mock response %T", next)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	}))
	return mock, mock.Server.Close
}

// Methods lists the method of every request received so far.
func (mock *MockJSONRPCServer) Methods() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	methods := make([]string, len(mock.Requests))
	for i, req := range mock.Requests {
		methods[i] = req.Method
	}
	return methods
}
