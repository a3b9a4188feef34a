package huffc

import (
	"bytes"
	"io"
	"testing"
)

func TestBitWriterPacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	for _, bit := range []int{1, 0, 1, 0, 1, 0, 1, 0} {
		if err := bw.addBit(bit); err != nil {
			t.Fatalf("addBit: %v", err)
		}
	}
	if err := bw.flush(true); err != nil {
		t.Fatalf("flush: %v", err)
	}
	// 8 bits end on a byte boundary (arrayIndex=1, bitIndex=0), so the
	// final flush writes arrayIndex+1 bytes: the packed byte plus a zero.
	if got := buf.Bytes(); len(got) != 2 || got[0] != 0b10101010 || got[1] != 0 {
		t.Fatalf("got %08b, want [10101010 00000000]", got)
	}
}

func TestBitWriterAddBitsFromASCII(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	if err := bw.addBitsFromASCII("110x0110"); err != nil { // 'x' must be ignored
		t.Fatalf("addBitsFromASCII: %v", err)
	}
	if err := bw.flush(true); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0b11001100 {
		t.Fatalf("got %08b, want 11001100", got)
	}
}

func TestBitWriterFlushOnlyUsedTruncates(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	if err := bw.addBitsFromASCII("101"); err != nil {
		t.Fatalf("addBitsFromASCII: %v", err)
	}
	if err := bw.flush(true); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0b10100000 {
		t.Fatalf("got %08b, want 10100000 (trailing bits zero)", got)
	}
}

func TestBitWriterFlushOnlyUsedNoPendingBitsWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	if err := bw.flush(true); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no bytes written for an empty buffer, got %d", buf.Len())
	}
}

func TestBitWriterFullBufferFlushesMidStream(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	for i := 0; i < bitWriterBufSize*8; i++ {
		if err := bw.addBit(1); err != nil {
			t.Fatalf("addBit: %v", err)
		}
	}
	if buf.Len() != bitWriterBufSize {
		t.Fatalf("expected automatic flush of %d bytes, got %d", bitWriterBufSize, buf.Len())
	}
	if err := bw.flush(true); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if buf.Len() != bitWriterBufSize {
		t.Fatalf("final flush should have written nothing more, got %d total", buf.Len())
	}
}

func TestBitReaderMatchesWriter(t *testing.T) {
	bits := []int{1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1}

	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	for _, b := range bits {
		if err := bw.addBit(b); err != nil {
			t.Fatalf("addBit: %v", err)
		}
	}
	if err := bw.flush(true); err != nil {
		t.Fatalf("flush: %v", err)
	}

	br := newBitReader(bytes.NewReader(buf.Bytes()))
	for i, want := range bits {
		got, err := br.nextBit()
		if err != nil {
			t.Fatalf("nextBit(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestBitReaderEOFIsFatal(t *testing.T) {
	br := newBitReader(bytes.NewReader(nil))
	if _, err := br.nextBit(); err == nil {
		t.Fatalf("expected an error reading past end of stream")
	} else if err != io.EOF && err != io.ErrUnexpectedEOF {
		t.Fatalf("unexpected error type: %v", err)
	}
}
