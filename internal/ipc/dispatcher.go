package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vvka-141/picview/pkg/picview"
)

// Command names, matching what the webview shell invokes.
const (
	CmdGetPathItems   = "get_path_items"
	CmdGetParentPath  = "get_parent_path"
	CmdGetImageBase64 = "get_image_base64"
	CmdReadHistory    = "read_history"
	CmdWriteHistory   = "write_history"
)

type handlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Dispatcher routes named commands to the lister, loader and history store.
// It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	lister   picview.DirectoryLister
	loader   picview.ImageLoader
	history  picview.HistoryStore
	logger   picview.Logger
	handlers map[string]handlerFunc
}

// NewDispatcher creates a Dispatcher. Panics on nil dependencies.
func NewDispatcher(
	lister picview.DirectoryLister,
	loader picview.ImageLoader,
	history picview.HistoryStore,
	logger picview.Logger,
) *Dispatcher {
	if lister == nil {
		panic("lister cannot be nil")
	}
	if loader == nil {
		panic("loader cannot be nil")
	}
	if history == nil {
		panic("history cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	d := &Dispatcher{
		lister:  lister,
		loader:  loader,
		history: history,
		logger:  logger,
	}
	d.handlers = map[string]handlerFunc{
		CmdGetPathItems:   d.getPathItems,
		CmdGetParentPath:  d.getParentPath,
		CmdGetImageBase64: d.getImageBase64,
		CmdReadHistory:    d.readHistory,
		CmdWriteHistory:   d.writeHistory,
	}
	return d
}

// Commands returns the registered command names in sorted order.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs command with JSON args. Empty or null args decode as {}.
func (d *Dispatcher) Invoke(ctx context.Context, command string, args json.RawMessage) (any, error) {
	handler, ok := d.handlers[command]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	d.logger.Verbose("Invoking %s", command)
	return handler(ctx, args)
}

// Handle runs req and wraps the outcome in a Response. A missing request ID
// is replaced with a generated one so replies can always be correlated.
func (d *Dispatcher) Handle(ctx context.Context, req Request) Response {
	id := req.ID
	if id == "" {
		id = NewRequestID()
	}

	result, err := d.Invoke(ctx, req.Command, req.Args)
	if err != nil {
		return Response{ID: id, Error: err.Error(), Kind: KindOf(err)}
	}
	return Response{ID: id, OK: true, Result: result}
}

type pathItemsArgs struct {
	BasePath *string `json:"basePath"`
}

type pathArgs struct {
	Path *string `json:"path"`
}

func (d *Dispatcher) getPathItems(ctx context.Context, raw json.RawMessage) (any, error) {
	var args pathItemsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.BasePath == nil {
		return nil, missingArg("basePath")
	}
	return d.lister.List(ctx, *args.BasePath), nil
}

func (d *Dispatcher) getParentPath(_ context.Context, raw json.RawMessage) (any, error) {
	path, err := requirePath(raw)
	if err != nil {
		return nil, err
	}
	return d.lister.Parent(path), nil
}

func (d *Dispatcher) getImageBase64(ctx context.Context, raw json.RawMessage) (any, error) {
	path, err := requirePath(raw)
	if err != nil {
		return nil, err
	}
	payload, err := d.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return payload.DataURI(), nil
}

func (d *Dispatcher) readHistory(ctx context.Context, raw json.RawMessage) (any, error) {
	if err := decodeArgs(raw, &struct{}{}); err != nil {
		return nil, err
	}
	return d.history.Read(ctx)
}

func (d *Dispatcher) writeHistory(ctx context.Context, raw json.RawMessage) (any, error) {
	path, err := requirePath(raw)
	if err != nil {
		return nil, err
	}
	return nil, d.history.Write(ctx, path)
}

func requirePath(raw json.RawMessage) (string, error) {
	var args pathArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}
	if args.Path == nil {
		return "", missingArg("path")
	}
	return *args.Path, nil
}

func decodeArgs(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return nil
}

func missingArg(name string) error {
	return fmt.Errorf("%w: missing %q", ErrInvalidArguments, name)
}
