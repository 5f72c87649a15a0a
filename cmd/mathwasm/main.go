//go:build wasip1

// Command mathwasm is the WebAssembly build of the arithmetic service.
//
// Build as a reactor module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o mathbridge.wasm ./cmd/mathwasm
//
// Exports: add, sub, mul, div, mod, mod_op (i32, i32) -> i32; greet(ptr, len);
// alloc(len) -> ptr. The host must provide console.log(ptr, len).
package main

import (
	"unsafe"

	"github.com/mark3labs/mathbridge/internal/arith"
)

//go:wasmimport console log
func consoleLog(ptr unsafe.Pointer, size uint32)

// hostSink forwards messages to the host's console.log import.
type hostSink struct{}

func (hostSink) Log(msg string) {
	if len(msg) == 0 {
		consoleLog(nil, 0)
		return
	}
	consoleLog(unsafe.Pointer(unsafe.StringData(msg)), uint32(len(msg)))
}

var svc = arith.New(hostSink{})

// buffers keeps host-written allocations reachable until greet consumes them.
var buffers = map[uint32][]byte{}

//go:wasmexport alloc
func alloc(size uint32) uint32 {
	if size == 0 {
		return 0
	}
	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
	buffers[ptr] = buf
	return ptr
}

//go:wasmexport greet
func greet(ptr, size uint32) {
	var name string
	if buf, ok := buffers[ptr]; ok {
		delete(buffers, ptr)
		if size > uint32(len(buf)) {
			size = uint32(len(buf))
		}
		name = string(buf[:size])
	}
	svc.Greet(name)
}

//go:wasmexport add
func add(a, b int32) int32 { return svc.Add(a, b) }

//go:wasmexport sub
func sub(a, b int32) int32 { return svc.Sub(a, b) }

//go:wasmexport mul
func mul(a, b int32) int32 { return svc.Mul(a, b) }

//go:wasmexport div
func div(a, b int32) int32 { return svc.Div(a, b) }

//go:wasmexport mod
func mod(a, b int32) int32 { return svc.Mod(a, b) }

//go:wasmexport mod_op
func modOp(a, b int32) int32 { return svc.Mod(a, b) }

// main is required by the wasip1 target but never runs in reactor mode.
func main() {}
