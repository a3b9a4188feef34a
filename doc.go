// Package huffc implements classical Huffman coding over single-byte
// symbols as a file-level compressor and decompressor.
//
// # Overview
//
// Given an input byte sequence, Compress scans it for byte frequencies,
// builds an optimal-prefix code tree over those frequencies with a
// min-heap-driven construction, and writes a self-contained archive:
// a header carrying the frequency table, followed by the bit-packed
// payload. Decompress reads that header, rebuilds the identical tree by
// re-running the same construction algorithm over the same counts, and
// walks it bit by bit to recover the original bytes exactly.
//
// # When to Use huffc
//
// huffc is a reference-quality, two-pass entropy coder suited to:
//   - Files with a skewed byte distribution (text, logs, structured data)
//   - Archival or transport formats that need an exact, self-describing
//     round trip without external dictionaries
//
// # When NOT to Use huffc
//
// huffc is not suitable for:
//   - Already-compressed or encrypted data (no exploitable skew)
//   - Streaming or adaptive compression (the full frequency table is
//     materialized up front; see Non-goals below)
//   - Workloads needing better ratios than single-byte entropy coding can
//     offer — pair huffc with, or replace it with, an LZ-family codec
//
// # Non-goals
//
// No adaptive/streaming Huffman: the complete frequency table is built
// before any bit is encoded. No canonical Huffman: the exact tree is
// reconstructed from persisted counts, not from code lengths. No
// multi-symbol blocks, no arithmetic coding, no length-limited codes.
//
// # Basic Usage
//
//	var archive bytes.Buffer
//	stats, err := huffc.Compress(&archive, strings.NewReader("abracadabra"))
//
//	var original bytes.Buffer
//	err = huffc.Decompress(&original, &archive)
//	// original.String() == "abracadabra"
//
// # Performance Characteristics
//
// Compress makes two passes over the input (frequency scan, then
// encode); Decompress makes one pass over the archive. Both are
// single-threaded and synchronous: there are no internal goroutines, no
// shared mutable state, and no cancellation path.
package huffc
