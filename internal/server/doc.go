// Package server carries the ipc.Dispatcher over HTTP and WebSocket so a
// webview shell (or any local client) can invoke picview commands.
//
// Routes:
//
//	POST /invoke/:command   JSON args in, JSON result or {"error","kind"} out
//	GET  /ws                one ipc.Request per text frame, one ipc.Response back
//	GET  /healthz           liveness
//	GET  /                  command catalogue
package server
