package ber

/*
entry.go supplies the package's top-level entry points, grounded on
original_source/reader/mod.rs::parse_ber_general/parse_ber/parse_der
and named after the teacher's ber.go/der.go per-rule constructor
convention.
*/

/*
Parse decodes buf under the given Mode, invoking f with a [Reader]
positioned at the start of buf. It fails with [Extra] if f returns
successfully but bytes remain unconsumed afterward, matching
parse_ber_general's trailing-data check.
*/
func Parse(buf []byte, mode Mode, f func(*Reader) error) error {
	e := newEngine(buf, mode)
	r := &Reader{e: e}
	if err := f(r); err != nil {
		return err
	}
	if !e.endOfBuf() {
		return errExtra("trailing bytes after top-level value")
	}
	return nil
}

// ParseBER decodes buf under [Ber]: indefinite lengths are accepted
// and DER canonicity is not enforced.
func ParseBER(buf []byte, f func(*Reader) error) error { return Parse(buf, Ber, f) }

// ParseDER decodes buf under [Der]: indefinite lengths are rejected
// and the DER canonicity checks described on [Der] are enforced.
func ParseDER(buf []byte, f func(*Reader) error) error { return Parse(buf, Der, f) }
