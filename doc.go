/*
Package ber implements a streaming decoder for the ASN.1 Basic and
Distinguished Encoding Rules (X.690): a bounded-recursion TLV parser
over a borrowed byte slice, with typed decode methods for the
BOOLEAN, INTEGER, BIT STRING, OCTET STRING, NULL, OBJECT IDENTIFIER,
SEQUENCE and SET types, plus IMPLICIT/EXPLICIT tag overrides and
OPTIONAL/DEFAULT field handling.

Decoding starts from [ParseBER] or [ParseDER], which hand a [Reader]
to a caller-supplied function:

	err := ber.ParseDER(buf, func(r *ber.Reader) error {
		return r.Sequence(func(seq *ber.SequenceReader) error {
			name, err := seq.Reader.OctetString()
			if err != nil {
				return err
			}
			age, err := seq.Reader.Int64()
			return err
		})
	})

The package is strictly a decoder: it has no encoder, no
arbitrary-precision integer support, and no schema-driven or
reflection-based struct mapping. See SPEC_FULL.md for the full scope
this package implements.
*/
package ber
