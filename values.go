package ber

/*
values.go contains the small value types this package decodes into:
BitString, ObjectIdentifier, PrintableString, UTCTime and the generic
SetOf carrier. Shapes are grounded on original_source/basics/mod.rs
(BitString{unused_bits,buf}, ObjectIdentifier, PrintableString::from_bytes,
UtcTime, SetOf<T>); the PrintableString alphabet check is adapted from
the teacher's ps.go bitmap, trimmed of the Constraint/registry machinery
that ships with the schema-driven marshaler this package does not carry.
*/

/*
BitString holds a decoded ASN.1 BIT STRING: the raw content octets
plus a count of unused bits in the final octet, per X.690 §8.6.
*/
type BitString struct {
	UnusedBits byte
	Bytes      []byte
}

// Len returns the number of significant bits held by r.
func (r BitString) Len() int {
	if len(r.Bytes) == 0 {
		return 0
	}
	return len(r.Bytes)*8 - int(r.UnusedBits)
}

/*
ObjectIdentifier holds a decoded OBJECT IDENTIFIER as its sequence of
arcs, including the synthesized first two arcs (see the first-arc
split rule documented on [decodeOID]).
*/
type ObjectIdentifier []uint64

func (o ObjectIdentifier) String() string {
	parts := make([]string, len(o))
	for i, arc := range o {
		parts[i] = fmtUint64(arc)
	}
	return join(parts, ".")
}

/*
PrintableString is a decoded ASN.1 PrintableString (tag 19), validated
against the restricted alphabet of ITU-T X.680 §41.4: letters, digits,
space, and the punctuation set '()+,-./:=?
*/
type PrintableString string

func isPrintableStringChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// newPrintableString validates raw against the PrintableString
// alphabet, returning [Invalid] on the first disallowed character.
func newPrintableString(raw []byte) (PrintableString, error) {
	for _, r := range string(raw) {
		if !isPrintableStringChar(r) {
			return "", errInvalid("PrintableString: disallowed character " + string(r))
		}
	}
	return PrintableString(raw), nil
}

/*
UTCTime is a decoded ASN.1 UTCTime (tag 23), carried as the raw content
octets with no calendar interpretation; callers needing calendar
semantics parse the YYMMDDhhmm[ss](Z|+-hhmm) layout themselves.
*/
type UTCTime []byte

func (u UTCTime) String() string { return string(u) }

/*
SetOf carries the decoded elements of an ASN.1 SET OF, preserving wire
order; this package does not enforce DER's canonical SET OF ordering
(see SPEC_FULL.md Open Question 3).
*/
type SetOf[T any] struct {
	Elements []T
}
