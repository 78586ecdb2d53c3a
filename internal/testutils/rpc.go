// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// AnyMethod keys the handler used for methods without their own entry.
const AnyMethod = "*"

// RPCHandler answers one JSON-RPC method. A non-nil error is sent back as a
// JSON-RPC error object.
type RPCHandler func(params json.RawMessage) (any, error)

// RPCServer is a JSON-RPC 2.0 stub that dispatches on method name regardless
// of the request path, so one server can stand in for the info API and the
// C-chain RPC at once.
type RPCServer struct {
	*httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

func NewRPCServer(t testing.TB, handlers map[string]RPCHandler) *RPCServer {
	t.Helper()

	s := &RPCServer{calls: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.calls[req.Method]++
		s.mu.Unlock()

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		handler, ok := handlers[req.Method]
		if !ok {
			handler, ok = handlers[AnyMethod]
		}
		if !ok {
			resp["error"] = map[string]any{"code": -32601, "message": "the method " + req.Method + " does not exist"}
		} else if result, err := handler(req.Params); err != nil {
			resp["error"] = map[string]any{"code": -32000, "message": err.Error()}
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(s.Close)
	return s
}

// Calls reports how many times method was invoked.
func (s *RPCServer) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// RPCResult returns a handler that always answers with result.
func RPCResult(result any) RPCHandler {
	return func(json.RawMessage) (any, error) {
		return result, nil
	}
}
