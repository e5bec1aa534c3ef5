//go:build !ber_debug

package ber

/*
trace_off.go supplies zero-cost no-op stand-ins for the debug tracer
hooks used throughout this package. It is compiled in the absence of
the "ber_debug" build tag; see trace_on.go for the active tracer.
*/

type DefaultTracer struct{}

func debugEnter(_ ...any)              {}
func debugExit(_ ...any)               {}
func debugEvent(_ EventType, _ ...any) {}
func debugIdentifier(_ ...any)         {}
func debugLength(_ ...any)             {}
func debugTLV(_ ...any)                {}
func debugOptional(_ ...any)           {}
func debugComposite(_ ...any)          {}

// EnableDebug and DisableDebug are present in both build variants so that
// callers need not guard their use with a build tag; in a non-debug build
// they are harmless no-ops.
func EnableDebug(_ Tracer) {}
func DisableDebug()        {}

// Tracer is declared in both build variants; see trace_on.go for the
// live interface used by [DefaultTracer].
type Tracer interface {
	Trace(TraceRecord)
}

// TraceRecord is declared in both build variants. Its fields carry no
// information in a non-debug build.
type TraceRecord struct {
	Type EventType
	Func string
	Args []any
	Ret  []any
}
