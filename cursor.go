package ber

/*
cursor.go implements the SEQUENCE/SET forward cursor and its
optional/default-value helpers, grounded on
original_source/reader/mod.rs::BERReaderSeq (next, read_optional,
read_default).
*/

/*
SequenceReader is the cursor passed to the callback given to
[Reader.Sequence]. It embeds [Reader], so every typed decode method
is available directly; [ReadOptional] and [ReadDefault] add OPTIONAL
and DEFAULT field semantics on top.
*/
type SequenceReader struct{ Reader }

/*
SetReader is the cursor passed to the callback given to [Reader.Set].
Identical in shape to [SequenceReader]; kept as a distinct type so a
function signature documents which ASN.1 construct it walks.
*/
type SetReader struct{ Reader }

// HasMore reports whether unconsumed content octets remain.
func (s *SequenceReader) HasMore() bool { return !s.e.endOfBuf() }

// HasMore reports whether unconsumed content octets remain.
func (s *SetReader) HasMore() bool { return !s.e.endOfBuf() }

/*
ReadOptional runs decode against r and reports whether the field was
present. On failure, if decode left the cursor at its pre-call
position (the field simply was not there, e.g. a tag mismatch), the
failure is swallowed and present is false with a nil error; otherwise
the error is returned as-is. This mirrors original_source's
read_optional, which backtracks on a non-advancing failure and
propagates any other.
*/
func ReadOptional[T any](r *Reader, decode func(*Reader) (T, error)) (value T, present bool, err error) {
	save := r.e.pos
	value, err = decode(r)
	if err == nil {
		present = true
		debugOptional(true)
		return
	}
	var zero T
	if r.e.pos == save {
		value, err = zero, nil
		debugOptional(false)
		return
	}
	value = zero
	debugOptional(err)
	return
}

/*
ReadDefault runs decode as an OPTIONAL field via [ReadOptional],
substituting def when absent. Under [Der], a present value that
equals def is rejected: DER requires DEFAULT-equal fields to be
omitted from the wire entirely.
*/
func ReadDefault[T comparable](r *Reader, def T, decode func(*Reader) (T, error)) (T, error) {
	v, present, err := ReadOptional(r, decode)
	if err != nil {
		return def, err
	}
	if !present {
		return def, nil
	}
	if r.e.mode == Der && v == def {
		return def, errInvalid("DER value equals its DEFAULT and must be omitted")
	}
	return v, nil
}
