// Package ipc exposes the picview operations as named commands with JSON
// arguments and results, the shape a webview shell invokes them in.
//
// The Dispatcher is transport-neutral. internal/server carries it over HTTP
// and WebSocket; tests call it directly.
//
//	d := ipc.NewDispatcher(lister, loader, history, logger)
//	result, err := d.Invoke(ctx, ipc.CmdGetPathItems, json.RawMessage(`{"basePath":"/srv/photos"}`))
//
// Failures are classified by KindOf into stable strings that clients switch on.
package ipc
