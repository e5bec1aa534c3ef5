package ber

/*
reader.go implements Reader, the per-value decode handle wrapping an
engine, and its typed decode methods. Method shapes are grounded on
original_source/reader/mod.rs::BERReader (read_bool, read_i64,
read_bitstring, read_bytes, read_null, read_oid, read_tagged,
read_tagged_implicit, read_sequence, read_set); doc-comment register
and per-type method naming borrow from the teacher's bool.go, int.go,
bs.go, oct.go, null.go and oid.go.
*/

/*
Reader decodes ASN.1 values from a single buffer position onward. Its
zero value is never used directly; obtain one from [Parse], [ParseBER]
or [ParseDER].

A Reader carries a one-shot implicit tag channel: a call to
[Reader.Implicit] overrides the universal tag expected by the very
next decode call, then clears itself.
*/
type Reader struct {
	e           *engine
	implicitTag *Tag
}

// Implicit overrides the tag the next decode call expects, for
// IMPLICIT-tagged fields. It returns r for chaining, e.g.
// r.Implicit(ber.Context(0)).Int64().
func (r *Reader) Implicit(tag Tag) *Reader {
	t := tag
	r.implicitTag = &t
	return r
}

func (r *Reader) effectiveTag(def Tag) Tag {
	if r.implicitTag != nil {
		t := *r.implicitTag
		r.implicitTag = nil
		return t
	}
	return def
}

func (r *Reader) peekTag() (Tag, error) {
	class, num, _, err := r.e.peekIdentifier()
	return Tag{Class: class, Number: num}, err
}

/*
Bool decodes a BOOLEAN (universal tag 1). Under [Der] the content
octet must be exactly 0x00 (false) or 0xFF (true); [Ber] accepts any
non-zero octet as true.
*/
func (r *Reader) Bool() (bool, error) {
	tag := r.effectiveTag(Universal(TagBoolean))
	tlv, ok, err := r.e.readExpect(tag, Primitive)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, r.mismatch(tag)
	}
	if len(tlv.Content) != 1 {
		return false, errInvalid("BOOLEAN content must be exactly one octet, got " + itoa(len(tlv.Content)))
	}
	b := tlv.Content[0]
	if r.e.mode == Der && b != 0x00 && b != 0xFF {
		return false, errInvalid("DER BOOLEAN content must be 0x00 or 0xFF")
	}
	return b != 0x00, nil
}

/*
Int64 decodes an INTEGER (universal tag 2) as a signed two's-complement
value. Encodings wider than 8 octets, and non-minimal multi-octet
encodings, both fail: the former with [IntegerOverflow], the latter
with [Invalid].
*/
func (r *Reader) Int64() (int64, error) {
	tag := r.effectiveTag(Universal(TagInteger))
	tlv, ok, err := r.e.readExpect(tag, Primitive)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, r.mismatch(tag)
	}
	c := tlv.Content
	if len(c) == 0 {
		return 0, errInvalid("INTEGER content must not be empty")
	}
	if len(c) > 8 {
		return 0, errIntegerOverflow("INTEGER too wide for int64")
	}
	if len(c) > 1 {
		if (c[0] == 0x00 && c[1]&0x80 == 0) || (c[0] == 0xFF && c[1]&0x80 != 0) {
			return 0, errInvalid("non-minimal INTEGER encoding")
		}
	}
	var v int64
	if c[0]&0x80 != 0 {
		v = -1
	}
	for _, b := range c {
		v = (v << 8) | int64(b)
	}
	return v, nil
}

/*
BitString decodes a BIT STRING (universal tag 3) in its primitive
form. A constructed encoding is rejected: this package does not
recombine fragmented BIT STRINGs (see SPEC_FULL.md Open Question 1).
*/
func (r *Reader) BitString() (BitString, error) {
	tag := r.effectiveTag(Universal(TagBitString))
	tlv, ok, err := r.e.readExpect(tag, Primitive)
	if err != nil {
		return BitString{}, err
	}
	if !ok {
		if got, perr := r.peekTag(); perr == nil && got == tag {
			return BitString{}, errInvalid("constructed BIT STRING not supported")
		}
		return BitString{}, r.mismatch(tag)
	}
	c := tlv.Content
	if len(c) == 0 {
		return BitString{}, errInvalid("BIT STRING content must not be empty")
	}
	if c[0] > 7 {
		return BitString{}, errInvalid("BIT STRING unused-bit count must be 0-7, got " + itoa(int(c[0])))
	}
	return BitString{UnusedBits: c[0], Bytes: c[1:]}, nil
}

/*
OctetString decodes an OCTET STRING (universal tag 4). Under [Ber], a
constructed encoding is accepted and its nested OCTET STRING fragments
are concatenated in wire order; under [Der] a constructed encoding is
rejected outright.
*/
func (r *Reader) OctetString() ([]byte, error) {
	tag := r.effectiveTag(Universal(TagOctetString))
	save := r.e.pos
	if r.e.endOfBuf() {
		return nil, errEOF("missing OCTET STRING")
	}
	tlv, err := r.e.readGeneral()
	if err != nil {
		r.e.pos = save
		return nil, err
	}
	if tlv.Class != tag.Class || tlv.Tag != tag.Number {
		r.e.pos = save
		return nil, errTagMismatch(tag, Tag{Class: tlv.Class, Number: tlv.Tag})
	}
	if tlv.Compound == Primitive {
		return append([]byte(nil), tlv.Content...), nil
	}
	if r.e.mode == Der {
		return nil, errInvalid("constructed OCTET STRING forbidden in DER")
	}
	sub := &engine{buf: tlv.Content, mode: r.e.mode, depth: r.e.depth + 1}
	subReader := &Reader{e: sub}
	var out []byte
	for !sub.endOfBuf() {
		part, perr := subReader.OctetString()
		if perr != nil {
			return nil, perr
		}
		out = append(out, part...)
	}
	return out, nil
}

// Null decodes a NULL (universal tag 5), which must carry no content.
func (r *Reader) Null() error {
	tag := r.effectiveTag(Universal(TagNull))
	tlv, ok, err := r.e.readExpect(tag, Primitive)
	if err != nil {
		return err
	}
	if !ok {
		return r.mismatch(tag)
	}
	if len(tlv.Content) != 0 {
		return errInvalid("NULL content must be empty, got " + itoa(len(tlv.Content)) + " octets")
	}
	return nil
}

// ObjectIdentifier decodes an OBJECT IDENTIFIER (universal tag 6).
func (r *Reader) ObjectIdentifier() (ObjectIdentifier, error) {
	tag := r.effectiveTag(Universal(TagObjectID))
	tlv, ok, err := r.e.readExpect(tag, Primitive)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.mismatch(tag)
	}
	return decodeOID(tlv.Content)
}

/*
decodeOID decodes the base-128 subidentifier stream of an OBJECT
IDENTIFIER's content octets into its full arc sequence, applying the
first-arc split rule of X.690 §8.19.4: the wire's first subidentifier
S0 expands to arcs (0, S0) if S0<40, (1, S0-40) if S0<80, else
(2, S0-80).
*/
func decodeOID(content []byte) (ObjectIdentifier, error) {
	if len(content) == 0 || content[len(content)-1]&0x80 != 0 {
		return nil, errInvalid("OBJECT IDENTIFIER content truncated or empty")
	}
	var arcs []uint64
	i := 0
	for i < len(content) {
		if content[i] == 0x80 {
			return nil, errInvalid("non-minimal OID subidentifier")
		}
		var acc uint64
		for {
			if i >= len(content) {
				return nil, errEOF("truncated OID subidentifier")
			}
			b := content[i]
			i++
			var of bool
			acc, of = accumulate7(acc, b&0x7F)
			if of {
				return nil, errIntegerOverflow("OID subidentifier too large")
			}
			if b&0x80 == 0 {
				break
			}
		}
		arcs = append(arcs, acc)
	}

	s0 := arcs[0]
	var a0, a1 uint64
	switch {
	case s0 < 40:
		a0, a1 = 0, s0
	case s0 < 80:
		a0, a1 = 1, s0-40
	default:
		a0, a1 = 2, s0-80
	}
	out := make(ObjectIdentifier, 0, len(arcs)+1)
	out = append(out, a0, a1)
	out = append(out, arcs[1:]...)
	return out, nil
}

/*
ExplicitTag decodes a value wrapped in an explicit tag: it expects a
constructed TLV carrying tag, then invokes f against a Reader scoped
to that TLV's content, where the wrapped value's own universal tag is
read as usual.
*/
func (r *Reader) ExplicitTag(tag Tag, f func(*Reader) error) error {
	tlv, ok, err := r.e.readExpect(tag, Constructed)
	if err != nil {
		return err
	}
	if !ok {
		return r.mismatch(tag)
	}
	return r.e.readWithBuffer(tlv, func(sub *engine) error {
		return f(&Reader{e: sub})
	})
}

// mismatch reports a tag/class mismatch against want, peeking the
// buffer for the actual tag present when possible.
func (r *Reader) mismatch(want Tag) error {
	if r.e.endOfBuf() {
		return errEOF("expected " + ClassNames[want.Class] + " " + tagName(want.Number))
	}
	got, err := r.peekTag()
	if err != nil {
		return err
	}
	return errTagMismatch(want, got)
}

func (r *Reader) sequenceLike(tag Tag) (*engine, error) {
	tlv, ok, err := r.e.readExpect(tag, Constructed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.mismatch(tag)
	}
	return &engine{buf: tlv.Content, mode: r.e.mode, depth: r.e.depth + 1}, nil
}

// Sequence decodes a SEQUENCE (universal tag 16), running f against a
// [SequenceReader] scoped to its content, then requiring every
// content octet to have been consumed.
func (r *Reader) Sequence(f func(*SequenceReader) error) error {
	debugComposite("enter SEQUENCE")
	tag := r.effectiveTag(Universal(TagSequence))
	sub, err := r.sequenceLike(tag)
	if err != nil {
		debugComposite("enter SEQUENCE", err)
		return err
	}
	if err = f(&SequenceReader{Reader{e: sub}}); err != nil {
		return err
	}
	if !sub.endOfBuf() {
		return errExtra("trailing bytes in SEQUENCE")
	}
	debugComposite("exit SEQUENCE")
	return nil
}

// Set decodes a SET (universal tag 17), running f against a
// [SetReader] scoped to its content, then requiring every content
// octet to have been consumed.
func (r *Reader) Set(f func(*SetReader) error) error {
	tag := r.effectiveTag(Universal(TagSet))
	sub, err := r.sequenceLike(tag)
	if err != nil {
		return err
	}
	if err = f(&SetReader{Reader{e: sub}}); err != nil {
		return err
	}
	if !sub.endOfBuf() {
		return errExtra("trailing bytes in SET")
	}
	return nil
}

// ReadRawBytes returns the content octets of the next TLV verbatim,
// without type interpretation, as an escape hatch for caller-defined
// or unsupported types. The identifier and length octets are not
// included.
func (r *Reader) ReadRawBytes() ([]byte, error) {
	tlv, err := r.e.readGeneral()
	if err != nil {
		return nil, err
	}
	return tlv.Content, nil
}
