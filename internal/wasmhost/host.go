// Package wasmhost runs the mathwasm module under wazero and supplies its
// console.log import as an arith.Sink.
package wasmhost

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/logger"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

const (
	hostModule  = "console"
	hostLogFunc = "log"
	initFunc    = "_initialize"
	exportAlloc = "alloc"
	exportGreet = "greet"
)

// Host is a loaded module instance. Calls are serialized; the guest is
// single-threaded.
type Host struct {
	mu   sync.Mutex
	rt   wazero.Runtime
	mod  api.Module
	sink arith.Sink
}

// Load compiles and instantiates wasm, routing guest log calls to sink.
func Load(ctx context.Context, wasm []byte, sink arith.Sink) (*Host, error) {
	if sink == nil {
		sink = arith.SinkFunc(func(string) {})
	}
	h := &Host{
		rt:   wazero.NewRuntime(ctx),
		sink: sink,
	}

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, h.rt); err != nil {
		_ = h.rt.Close(ctx)
		return nil, fmt.Errorf("instantiating wasi: %w", err)
	}

	_, err := h.rt.NewHostModuleBuilder(hostModule).
		NewFunctionBuilder().
		WithFunc(h.consoleLog).
		Export(hostLogFunc).
		Instantiate(ctx)
	if err != nil {
		_ = h.rt.Close(ctx)
		return nil, fmt.Errorf("instantiating %s host module: %w", hostModule, err)
	}

	compiled, err := h.rt.CompileModule(ctx, wasm)
	if err != nil {
		_ = h.rt.Close(ctx)
		return nil, fmt.Errorf("compiling module: %w", err)
	}

	cfg := wazero.NewModuleConfig().WithStartFunctions(initFunc)
	h.mod, err = h.rt.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		_ = h.rt.Close(ctx)
		return nil, fmt.Errorf("instantiating module: %w", err)
	}

	logger.Debug("Loaded wasm module (%d bytes)", len(wasm))
	return h, nil
}

func (h *Host) consoleLog(_ context.Context, m api.Module, ptr, size uint32) {
	data, ok := m.Memory().Read(ptr, size)
	if !ok {
		logger.Warn("console.log out of range: ptr=%d size=%d", ptr, size)
		return
	}
	h.sink.Log(string(data))
}

// Call invokes a two-operand export such as "add" or "mod_op".
func (h *Host) Call(ctx context.Context, op string, a, b int32) (int32, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fn := h.mod.ExportedFunction(op)
	if fn == nil {
		return 0, fmt.Errorf("module does not export %q", op)
	}
	res, err := fn.Call(ctx, api.EncodeI32(a), api.EncodeI32(b))
	if err != nil {
		return 0, fmt.Errorf("calling %s: %w", op, err)
	}
	if len(res) != 1 {
		return 0, fmt.Errorf("%s returned %d results, want 1", op, len(res))
	}
	return api.DecodeI32(res[0]), nil
}

// Greet copies name into guest memory and calls the greet export.
func (h *Host) Greet(ctx context.Context, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	allocFn := h.mod.ExportedFunction(exportAlloc)
	greetFn := h.mod.ExportedFunction(exportGreet)
	if allocFn == nil || greetFn == nil {
		return fmt.Errorf("module does not export %s/%s", exportAlloc, exportGreet)
	}

	size := uint64(len(name))
	res, err := allocFn.Call(ctx, size)
	if err != nil {
		return fmt.Errorf("allocating %d bytes: %w", size, err)
	}
	ptr := uint32(res[0])
	if size > 0 && !h.mod.Memory().Write(ptr, []byte(name)) {
		return fmt.Errorf("writing name at %d: out of range", ptr)
	}

	if _, err := greetFn.Call(ctx, uint64(ptr), size); err != nil {
		return fmt.Errorf("calling greet: %w", err)
	}
	return nil
}

// Close releases the runtime and module.
func (h *Host) Close(ctx context.Context) error {
	return h.rt.Close(ctx)
}
