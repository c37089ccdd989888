package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/vvka-141/picview/internal/ipc"
)

// handleWebSocket reads one request per text frame and answers each on the
// same connection. Requests run concurrently so a slow image load does not
// hold up a listing; replies may therefore arrive out of order and are
// matched by ID.
func (s *Server) handleWebSocket(conn *websocket.Conn) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		writeMu sync.Mutex
		wg      sync.WaitGroup
	)
	reply := func(resp ipc.Response) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Verbose("WebSocket write failed: %v", err)
		}
	}

	s.logger.Verbose("WebSocket connected from %s", conn.RemoteAddr())
	defer wg.Wait()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			s.logger.Verbose("WebSocket closed: %v", err)
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var req ipc.Request
		if err := json.Unmarshal(data, &req); err != nil {
			reply(ipc.Response{
				ID:    ipc.NewRequestID(),
				Error: "malformed request: " + err.Error(),
				Kind:  ipc.KindInvalidArguments,
			})
			continue
		}

		wg.Add(1)
		go func(req ipc.Request) {
			defer wg.Done()
			resp := s.dispatcher.Handle(ctx, req)
			if !resp.OK {
				s.logger.Error("%s failed: %s", req.Command, resp.Error)
			}
			reply(resp)
		}(req)
	}
}
