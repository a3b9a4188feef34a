package huffc

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Stats summarizes a single Compress call, supplementing the raw output
// bytes with the figures the spec's concrete scenarios are phrased in
// terms of (payload bits, not total file size).
type Stats struct {
	SymbolCount  int // distinct byte values observed
	TotalSymbols int // total bytes read from the input
	PayloadBits  int // bits written to the payload, before byte padding
	HeaderBytes  int // bytes occupied by S, N, and the (symbol,count) records
}

// Compress reads all of src, builds a Huffman code for its byte
// distribution, and writes a self-contained archive to dst: a header
// (distinct symbol count, total symbol count, the symbol/count table),
// the bit-packed payload, and a trailing integrity checksum (§6.1).
//
// Compress makes two passes over the input bytes: one to build the
// frequency table, one to emit codes. This mirrors the reference
// implementation's two full file reads, adapted to a single buffered
// read followed by two in-memory passes since src is an io.Reader rather
// than a reopenable file.
func Compress(dst io.Writer, src io.Reader) (Stats, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return Stats{}, fmt.Errorf("huffc: compress: reading input: %w", err)
	}

	var table symbolTable
	table.scan(data)

	hasher := xxhash.New()
	hashedDst := io.MultiWriter(dst, hasher)

	hdr := header{symbolCount: uint32(table.len()), totalSymbols: table.total}
	headerBytes, err := hdr.writeTo(hashedDst, table.records)
	if err != nil {
		return Stats{}, fmt.Errorf("huffc: compress: writing header: %w", err)
	}

	stats := Stats{
		SymbolCount:  table.len(),
		TotalSymbols: int(table.total),
		HeaderBytes:  headerBytes,
	}

	switch table.len() {
	case 0:
		// §9 open question 4: empty input is accepted, not rejected;
		// it produces a header with S=0, N=0 and no payload at all.
	case 1:
		// §4.3 edge case: a single-symbol tree has depth 0 and assigns
		// a zero-length code. There is nothing to write to the payload;
		// Decompress recovers the N occurrences from the header alone.
		table.records[0].code = ""
	default:
		root := buildTree(&table)
		buildCodebook(root)

		bw := newBitWriter(hashedDst)
		for _, b := range data {
			rec := table.find(b)
			stats.PayloadBits += len(rec.code)
			if err := bw.addBitsFromASCII(rec.code); err != nil {
				return Stats{}, fmt.Errorf("huffc: compress: writing payload: %w", err)
			}
		}
		if err := bw.flush(true); err != nil {
			return Stats{}, fmt.Errorf("huffc: compress: flushing payload: %w", err)
		}
	}

	var trailer [8]byte
	binary.LittleEndian.PutUint64(trailer[:], hasher.Sum64())
	if _, err := dst.Write(trailer[:]); err != nil {
		return Stats{}, fmt.Errorf("huffc: compress: writing checksum: %w", err)
	}

	return stats, nil
}

// Decompress reads an archive written by Compress from src and writes
// the original byte sequence to dst. It rebuilds the identical Huffman
// tree the encoder used by re-running the same construction algorithm
// over the same (insertion-ordered) counts; it never serializes the tree
// itself (§3, Container lifecycle).
//
// Decompress does not read or verify the trailing checksum Compress
// writes (§6.1): per §6's parsing rule, any bytes beyond the N declared
// symbols are ignored, and a reader has no way to tell a foreign file's
// trailing bytes apart from a corrupted trailer of this format's own
// making. The only corruption this detects is payload exhaustion —
// running out of bits before N symbols have been decoded, below.
func Decompress(dst io.Writer, src io.Reader) error {
	table, err := readHeader(src)
	if err != nil {
		return fmt.Errorf("huffc: decompress: reading header: %w", err)
	}

	switch table.len() {
	case 0:
		// nothing to emit
	case 1:
		rec := table.records[0]
		line := make([]byte, table.total)
		for i := range line {
			line[i] = rec.b
		}
		if _, err := dst.Write(line); err != nil {
			return fmt.Errorf("huffc: decompress: writing output: %w", err)
		}
	default:
		root := buildTree(table)
		br := newBitReader(src)
		current := root
		emitted := uint32(0)

		for emitted < table.total {
			bit, err := br.nextBit()
			if err != nil {
				return fmt.Errorf("huffc: decompress: reading payload: %w", err)
			}
			if bit == 1 {
				current = current.right
			} else {
				current = current.left
			}
			if current == nil {
				return fmt.Errorf("huffc: decompress: reading payload: %w", io.ErrUnexpectedEOF)
			}
			if current.isLeaf() {
				rec := current.payload.(*symbolRecord)
				if _, err := dst.Write([]byte{rec.b}); err != nil {
					return fmt.Errorf("huffc: decompress: writing output: %w", err)
				}
				emitted++
				current = root
			}
		}
	}

	return nil
}

// buildTree runs the shared tree-construction algorithm (§4.3) over
// table's records: every record becomes a singleton leaf tree, inserted
// into a min-heap keyed by count; the two smallest trees are repeatedly
// merged under a synthetic internal node until one tree remains. Encode
// and decode both call this so that, given the same record order and
// counts, they deterministically build the identical tree regardless of
// how the heap resolves count ties (§4.3).
func buildTree(table *symbolTable) *node {
	h := newHeap(func(n *node) int { return int(n.count()) }, nil, nil)
	for _, rec := range table.records {
		h.insert(newLeaf(rec))
	}

	for h.Len() > 1 {
		t1, _ := h.extractMin()
		t2, _ := h.extractMin()
		merged := merge(t1, t2, &mergedCount{total: t1.count() + t2.count()})
		h.insert(merged)
	}

	root, _ := h.extractMin()
	return root
}

// buildCodebook walks root depth-first, assigning '0' for left descents
// and '1' for right descents, writing the accumulated bit string into
// each leaf's symbolRecord.code on arrival. A single-leaf tree (root
// itself a leaf) is handled by its caller before buildTree is ever
// reached, since a lone leaf has no descent to record.
func buildCodebook(root *node) {
	buf := make([]byte, 0, 64)

	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			n.payload.(*symbolRecord).code = string(buf)
			return
		}
		if n.left != nil {
			buf = append(buf, '0')
			walk(n.left)
			buf = buf[:len(buf)-1]
		}
		if n.right != nil {
			buf = append(buf, '1')
			walk(n.right)
			buf = buf[:len(buf)-1]
		}
	}
	walk(root)
}
