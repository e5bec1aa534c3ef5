package ber

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderBool(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		mode Mode
		want bool
		err  bool
	}{
		{"false", []byte{0x01, 0x01, 0x00}, Der, false, false},
		{"true 0xFF", []byte{0x01, 0x01, 0xFF}, Der, true, false},
		{"ber non-canonical true", []byte{0x01, 0x01, 0x01}, Ber, true, false},
		{"der non-canonical rejected", []byte{0x01, 0x01, 0x01}, Der, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got bool
			err := Parse(tc.buf, tc.mode, func(r *Reader) (err error) {
				got, err = r.Bool()
				return
			})
			if (err != nil) != tc.err {
				t.Fatalf("err = %v, wantErr %v", err, tc.err)
			}
			if err == nil && got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReaderInt64NonMinimalRejected(t *testing.T) {
	// 02 02 00 00: two-octet INTEGER, leading octet 0x00 with the next
	// octet's high bit clear -- a non-minimal zero encoding.
	err := ParseDER([]byte{0x02, 0x02, 0x00, 0x00}, func(r *Reader) error {
		_, err := r.Int64()
		return err
	})
	if err == nil {
		t.Fatal("expected error for non-minimal INTEGER encoding")
	}
	var berr *Error
	if !errors.As(err, &berr) || berr.Kind != Invalid {
		t.Fatalf("expected Invalid, got %v", err)
	}
}

func TestReaderInt64Values(t *testing.T) {
	tests := []struct {
		buf  []byte
		want int64
	}{
		{[]byte{0x02, 0x01, 0x00}, 0},
		{[]byte{0x02, 0x01, 0x01}, 1},
		{[]byte{0x02, 0x01, 0x80}, -128},
		{[]byte{0x02, 0x02, 0x00, 0x80}, 128},
		{[]byte{0x02, 0x02, 0xFF, 0x7F}, -129},
	}
	for _, tc := range tests {
		var got int64
		err := ParseDER(tc.buf, func(r *Reader) (err error) {
			got, err = r.Int64()
			return
		})
		if err != nil {
			t.Fatalf("unexpected error for %x: %v", tc.buf, err)
		}
		if got != tc.want {
			t.Fatalf("for %x: got %d, want %d", tc.buf, got, tc.want)
		}
	}
}

func TestReaderObjectIdentifier(t *testing.T) {
	// 06 03 2A 86 48 => {1 2 840}
	var got ObjectIdentifier
	err := ParseDER([]byte{0x06, 0x03, 0x2A, 0x86, 0x48}, func(r *Reader) (err error) {
		got, err = r.ObjectIdentifier()
		return
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ObjectIdentifier{1, 2, 840}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReaderOctetStringConstructedBER(t *testing.T) {
	// constructed OCTET STRING (indefinite), two primitive fragments
	// "ab" + "cd", then EOC: 24 80 04 02 61 62 04 02 63 64 00 00
	buf := []byte{
		0x24, 0x80,
		0x04, 0x02, 'a', 'b',
		0x04, 0x02, 'c', 'd',
		0x00, 0x00,
	}
	var got []byte
	err := ParseBER(buf, func(r *Reader) (err error) {
		got, err = r.OctetString()
		return
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte("abcd")) {
		t.Fatalf("got %q, want %q", got, "abcd")
	}
}

func TestReaderOctetStringConstructedForbiddenInDER(t *testing.T) {
	buf := []byte{
		0x24, 0x80,
		0x04, 0x02, 'a', 'b',
		0x00, 0x00,
	}
	err := ParseDER(buf, func(r *Reader) error {
		_, err := r.OctetString()
		return err
	})
	if err == nil {
		t.Fatal("expected error for constructed OCTET STRING under DER")
	}
}

func TestReaderNull(t *testing.T) {
	err := ParseDER([]byte{0x05, 0x00}, func(r *Reader) error {
		return r.Null()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReaderExplicitTag(t *testing.T) {
	// context[0] EXPLICIT wrapping BOOLEAN TRUE: A0 03 01 01 FF
	var got bool
	err := ParseDER([]byte{0xA0, 0x03, 0x01, 0x01, 0xFF}, func(r *Reader) error {
		return r.ExplicitTag(Context(0), func(inner *Reader) (err error) {
			got, err = inner.Bool()
			return
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected true")
	}
}

func TestReaderImplicitTag(t *testing.T) {
	// context[1] IMPLICIT INTEGER 7: 81 01 07
	var got int64
	err := ParseDER([]byte{0x81, 0x01, 0x07}, func(r *Reader) (err error) {
		got, err = r.Implicit(Context(1)).Int64()
		return
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestReaderSequence(t *testing.T) {
	// SEQUENCE { INTEGER 1, BOOLEAN TRUE }
	buf := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}
	var i int64
	var b bool
	err := ParseDER(buf, func(r *Reader) error {
		return r.Sequence(func(seq *SequenceReader) (err error) {
			if i, err = seq.Reader.Int64(); err != nil {
				return err
			}
			b, err = seq.Reader.Bool()
			return
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != 1 || !b {
		t.Fatalf("got (%d,%v), want (1,true)", i, b)
	}
}

func TestReaderSequenceIndefiniteBER(t *testing.T) {
	// SEQUENCE indefinite { INTEGER 1 }: 30 80 02 01 01 00 00
	buf := []byte{0x30, 0x80, 0x02, 0x01, 0x01, 0x00, 0x00}
	var i int64
	err := ParseBER(buf, func(r *Reader) error {
		return r.Sequence(func(seq *SequenceReader) (err error) {
			i, err = seq.Reader.Int64()
			return
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != 1 {
		t.Fatalf("got %d, want 1", i)
	}

	err = ParseDER(buf, func(r *Reader) error {
		return r.Sequence(func(seq *SequenceReader) (err error) {
			_, err = seq.Reader.Int64()
			return
		})
	})
	if err == nil {
		t.Fatal("expected error decoding indefinite-length SEQUENCE under DER")
	}
}

func TestReaderSequenceExtraBytes(t *testing.T) {
	buf := []byte{0x30, 0x05, 0x02, 0x01, 0x01, 0xFF, 0xFF}
	err := ParseDER(buf, func(r *Reader) error {
		return r.Sequence(func(seq *SequenceReader) (err error) {
			_, err = seq.Reader.Int64()
			return
		})
	})
	if err == nil {
		t.Fatal("expected error for trailing bytes inside SEQUENCE")
	}
	var berr *Error
	if !errors.As(err, &berr) || berr.Kind != Extra {
		t.Fatalf("expected Extra, got %v", err)
	}
}

func TestParseRejectsTrailingBytes(t *testing.T) {
	buf := []byte{0x01, 0x01, 0x00, 0xFF}
	err := ParseDER(buf, func(r *Reader) error {
		_, err := r.Bool()
		return err
	})
	if err == nil {
		t.Fatal("expected Extra for trailing top-level bytes")
	}
}
