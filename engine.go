package ber

/*
engine.go implements the mutable decode state threaded through a
parse: the buffer, cursor position, active Mode, and recursion depth.
Grounded on original_source's BERReaderImpl (buf/pos/mode/depth) and
its read_general bounded-recursion/backtracking semantics.
*/

/*
Mode selects which of the two supported encoding rules governs
canonicity checks during decode.
*/
type Mode int

const (
	// Ber accepts indefinite lengths and does not enforce DER
	// canonicity (minimal long-form lengths, 0x00/0xFF-only booleans,
	// primitive-only octet strings, omitted DEFAULT values). Minimal
	// INTEGER encoding is required in both modes.
	Ber Mode = iota

	// Der rejects indefinite lengths and enforces the DER checks listed
	// under [Ber]. Other DER rules are not checked, among them
	// zero-valued unused BIT STRING bits and SET OF element order.
	Der
)

// MaxDepth bounds constructed-value nesting. A stream requiring more
// than MaxDepth levels of recursion to decode fails with
// [StackOverflow] rather than growing the Go call stack unbounded.
const MaxDepth = 100

// engine is the shared mutable state behind a [Reader] and the
// [SequenceReader]/[SetReader] cursors built on top of it.
type engine struct {
	buf   []byte
	pos   int
	mode  Mode
	depth int
}

func newEngine(buf []byte, mode Mode) *engine {
	return &engine{buf: buf, mode: mode}
}

// endOfBuf reports whether the cursor has reached the end of the
// buffer with no bytes remaining.
func (e *engine) endOfBuf() bool { return e.pos >= len(e.buf) }

// remaining returns the unconsumed tail of the buffer.
func (e *engine) remaining() []byte { return e.buf[e.pos:] }

/*
readGeneral decodes one TLV at the current cursor position and
advances past it. It enforces the recursion depth bound before
touching the buffer, matching original_source's read_general, which
checks depth first so a hostile deeply-nested stream fails fast.
*/
func (e *engine) readGeneral() (TLV, error) {
	debugEnter("readGeneral", e.pos, e.depth)
	if e.depth > MaxDepth {
		err := errStackOverflow("nesting exceeds maximum depth")
		debugExit("readGeneral", err)
		return TLV{}, err
	}
	if e.endOfBuf() {
		err := errEOF("no more data at cursor")
		debugExit("readGeneral", err)
		return TLV{}, err
	}

	start := e.pos
	class := parseClassIdentifier(e.buf[start])
	compound := parseCompoundIdentifier(e.buf[start])
	tagNum, n, err := parseTagIdentifier(e.buf[start:])
	if err != nil {
		debugExit("readGeneral", err)
		return TLV{}, err
	}
	debugIdentifier(class, tagNum, compound)

	hdr := start + n
	length, indefinite, lnN, err := parseLength(e.buf[hdr:], e.mode)
	if err != nil {
		debugExit("readGeneral", err)
		return TLV{}, err
	}
	hdr += lnN
	debugLength(length, indefinite)

	if indefinite {
		if !compound {
			err = errInvalid("indefinite length on primitive encoding")
			debugExit("readGeneral", err)
			return TLV{}, err
		}
		contentLen, consumed, ferr := findEOC(e.buf[hdr:], e.depth+1)
		if ferr != nil {
			debugExit("readGeneral", ferr)
			return TLV{}, ferr
		}
		tlv := TLV{
			Class: class, Tag: tagNum, Compound: compound,
			Indefinite: true, HeaderLen: hdr - start,
			Content: e.buf[hdr : hdr+contentLen],
		}
		e.pos = hdr + consumed
		debugTLV(hexstr(tlv.Content))
		debugExit("readGeneral", tlv)
		return tlv, nil
	}

	if hdr+length > len(e.buf) {
		err = errEOF("content runs past end of buffer")
		debugExit("readGeneral", err)
		return TLV{}, err
	}
	tlv := TLV{
		Class: class, Tag: tagNum, Compound: compound,
		HeaderLen: hdr - start, Content: e.buf[hdr : hdr+length],
	}
	e.pos = hdr + length
	debugTLV(hexstr(tlv.Content))
	debugExit("readGeneral", tlv)
	return tlv, nil
}

/*
readExpect reads one TLV and requires it to carry the given Tag and
PC. On mismatch the cursor is restored to its pre-call position, per
original_source's position-snapshot-and-restore behavior on
read_general's tag check, so a caller may treat the field as absent
(OPTIONAL) rather than as a hard error.
*/
func (e *engine) readExpect(want Tag, compound PC) (TLV, bool, error) {
	save := e.pos
	if e.endOfBuf() {
		return TLV{}, false, nil
	}
	tlv, err := e.readGeneral()
	if err != nil {
		e.pos = save
		return TLV{}, false, err
	}
	if tlv.Class != want.Class || tlv.Tag != want.Number || tlv.Compound != compound {
		e.pos = save
		return TLV{}, false, nil
	}
	return tlv, true, nil
}

// peekIdentifier decodes the identifier octet(s) at the cursor without
// advancing it, used to produce a precise mismatch error.
func (e *engine) peekIdentifier() (TagClass, uint64, PC, error) {
	if e.endOfBuf() {
		return 0, 0, Primitive, errEOF("no more data at cursor")
	}
	class := parseClassIdentifier(e.buf[e.pos])
	compound := parseCompoundIdentifier(e.buf[e.pos])
	tagNum, _, err := parseTagIdentifier(e.buf[e.pos:])
	return class, tagNum, compound, err
}

// readWithBuffer runs f against a sub-engine scoped to tlv's content,
// inheriting the current mode and depth, so nested constructed values
// continue to count against the shared recursion bound.
func (e *engine) readWithBuffer(tlv TLV, f func(*engine) error) error {
	sub := &engine{buf: tlv.Content, mode: e.mode, depth: e.depth + 1}
	return f(sub)
}
