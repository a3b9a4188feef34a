package huffc

import (
	"encoding/binary"
	"fmt"
	"io"
)

// header is the serializable prelude described in spec §6: a little-
// endian u32 distinct-symbol count, a little-endian u32 total-symbol
// count, then that many (u8 symbol, u32 count) records, packed with no
// padding. The reference implementation writes these fields in the
// host's native byte order (§9 open question 1); this implementation
// fixes little-endian explicitly so archives are portable across
// architectures, at the cost of binary compatibility with the original
// tool's output — round-trip equality within this package is what's
// tested, not byte-equality with reference archives.
type header struct {
	symbolCount  uint32
	totalSymbols uint32
}

// writeTo serializes h followed by one (symbol,count) pair per record, in
// records' order, to w. It returns the number of header bytes written
// (8 + 5*len(records)), for Stats.HeaderBytes.
func (h header) writeTo(w io.Writer, records []*symbolRecord) (int, error) {
	var prefix [8]byte
	binary.LittleEndian.PutUint32(prefix[0:4], h.symbolCount)
	binary.LittleEndian.PutUint32(prefix[4:8], h.totalSymbols)
	if err := writeFull(w, prefix[:]); err != nil {
		return 0, err
	}

	var rec [5]byte
	for _, r := range records {
		rec[0] = r.b
		binary.LittleEndian.PutUint32(rec[1:5], r.count)
		if err := writeFull(w, rec[:]); err != nil {
			return 0, err
		}
	}
	return 8 + 5*len(records), nil
}

// readHeader parses a header from r and returns the symbolTable it
// describes, in on-disk record order (preserving the insertion order the
// encoder's tree construction depended on). A short read on any field,
// per §7's I/O-short taxonomy, is fatal. If the declared per-symbol
// counts don't sum to the declared total, that's a format error: the
// header is internally inconsistent and the payload can't be trusted to
// contain the declared number of symbols.
func readHeader(r io.Reader) (*symbolTable, error) {
	var prefix [8]byte
	if err := readFull(r, prefix[:]); err != nil {
		return nil, fmt.Errorf("reading symbol/total counts: %w", err)
	}
	symbolCount := binary.LittleEndian.Uint32(prefix[0:4])
	totalSymbols := binary.LittleEndian.Uint32(prefix[4:8])

	table := &symbolTable{records: make([]*symbolRecord, 0, symbolCount)}

	var rec [5]byte
	var sum uint64
	for i := uint32(0); i < symbolCount; i++ {
		if err := readFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("reading record %d: %w", i, err)
		}
		count := binary.LittleEndian.Uint32(rec[1:5])
		table.add(rec[0], count)
		sum += uint64(count)
	}

	if sum != uint64(totalSymbols) {
		return nil, fmt.Errorf("header declares %d total symbols but records sum to %d", totalSymbols, sum)
	}

	return table, nil
}

// writeFull writes all of p to w, treating a short write (one that
// advances zero or partial bytes without an error) as fatal, matching
// §4.1/§7's "a sink write that reports zero bytes advanced is fatal."
func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// readFull reads exactly len(p) bytes from r, or returns the underlying
// error (io.EOF/io.ErrUnexpectedEOF on a short read).
func readFull(r io.Reader, p []byte) error {
	_, err := io.ReadFull(r, p)
	return err
}
