//go:build ber_debug

package ber

/*
trace_on.go implements the active debug tracer, compiled only when this
package is built with "-tags ber_debug". See trace_off.go for the
zero-cost stand-ins used otherwise.
*/

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

/*
EnvDebugVar is the environment variable consulted at package init time
to decide whether [DefaultTracer] writes to os.Stderr automatically.

Set it to any non-empty value to enable tracing without calling
[EnableDebug] directly.
*/
const EnvDebugVar = "BER_DEBUG"

/*
TraceRecord encapsulates metadata pertaining to a single event observed
by a [Tracer]: a timestamp, an [EventType], the name of the function
that raised it, and either its input arguments (on [EventEnter] and
informational events) or its return values (on [EventExit]).
*/
type TraceRecord struct {
	Time time.Time
	Type EventType
	Func string
	Args []any
	Ret  []any
}

/*
Tracer is implemented by [DefaultTracer]. Callers may supply their own
qualifying type to [EnableDebug] to redirect or reformat trace output.
*/
type Tracer interface {
	Trace(TraceRecord)
}

/*
DefaultTracer is the package-level [Tracer] implementation. It writes
one line per event to an [io.Writer], filtered by an [EventType]
bitmask.
*/
type DefaultTracer struct {
	mu   sync.Mutex
	w    io.Writer
	mask EventType
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer] that writes to
writer. All event kinds are enabled by default; narrow them with
[DefaultTracer.EnableLevel] / [DefaultTracer.DisableLevel].
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{w: writer, mask: EventAll}
}

// EnableLevel adds ev to the set of event kinds r reports.
func (r *DefaultTracer) EnableLevel(ev EventType) { r.mask |= ev }

// DisableLevel removes ev from the set of event kinds r reports.
func (r *DefaultTracer) DisableLevel(ev EventType) { r.mask &^= ev }

// Enabled reports whether ev is currently enabled on r.
func (r *DefaultTracer) Enabled(ev EventType) bool { return r.mask&ev != 0 }

// Trace writes rec to the underlying writer of r, subject to the
// currently enabled event mask.
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	switch {
	case rec.Type&EventEnter != 0:
		r.write(ts, " -> ", rec.Func, rec.Args)
	case rec.Type&EventExit != 0:
		r.write(ts, " <- ", rec.Func, rec.Ret)
	default:
		r.write(ts, "  . ", rec.Func, rec.Args)
	}
}

func (r *DefaultTracer) write(ts, arrow, fn string, args []any) {
	io.WriteString(r.w, ts+arrow+fn+"(")
	for i, a := range args {
		if i > 0 {
			io.WriteString(r.w, ", ")
		}
		io.WriteString(r.w, fmtArg(a))
	}
	io.WriteString(r.w, ")\n")
}

func fmtArg(x any) string {
	switch v := x.(type) {
	case string:
		return v
	case error:
		if v == nil {
			return "<nil>"
		}
		return v.Error()
	case fmtStringer:
		return v.String()
	default:
		return fmtDefaultArg(v)
	}
}

type fmtStringer interface{ String() string }

type discardTracer struct{}

func (discardTracer) Trace(_ TraceRecord) {}

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{}
)

func init() {
	if os.Getenv(EnvDebugVar) != "" {
		tracer = NewDefaultTracer(os.Stderr)
	}
}

// EnableDebug registers t as the active [Tracer].
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

// DisableDebug reverts to discarding all trace events.
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = discardTracer{}
}

func fire(level EventType, args []any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	if lt, ok := t.(interface{ Enabled(EventType) bool }); ok {
		if !lt.Enabled(level) {
			return
		}
	}

	rec := TraceRecord{Time: time.Now(), Type: level, Func: callerName()}
	if level&EventExit != 0 {
		rec.Ret = args
	} else {
		rec.Args = args
	}
	t.Trace(rec)
}

func callerName() string {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(4, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		name := fr.Function
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if !strings.HasPrefix(name, "ber.debug") && !strings.HasPrefix(name, "ber.fire") {
			return name
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func fmtDefaultArg(x any) string { return fmt.Sprintf("%v", x) }

func debugEvent(level EventType, args ...any) { fire(level, args) }
func debugEnter(args ...any)                  { fire(EventEnter, args) }
func debugExit(args ...any)                   { fire(EventExit, args) }
func debugIdentifier(args ...any)             { fire(EventIdentifier, args) }
func debugLength(args ...any)                 { fire(EventLength, args) }
func debugTLV(args ...any)                    { fire(EventTLV, args) }
func debugOptional(args ...any)               { fire(EventOptional, args) }
func debugComposite(args ...any)              { fire(EventComposite, args) }
