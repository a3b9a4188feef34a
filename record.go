package huffc

// symbolRecord is the (byte, count, code) triple produced by the
// frequency scan. code is only ever populated during encoding, once the
// codebook has been built by walking the Huffman tree.
type symbolRecord struct {
	b     byte
	count uint32
	code  string
}

// symbolTable is the append-only, insertion-ordered sequence of records
// scanned from an input. Its order is load-bearing: the tree constructor
// inserts records into the heap in table order, and two runs of the
// identical construction algorithm over identically ordered records
// produce identical trees regardless of how equal-count ties are broken
// (see spec §4.3). A direct 256-slot index would
// not preserve this order, which is why lookups are a linear scan rather
// than a map — the reference implementation makes the same trade for the
// same reason.
type symbolTable struct {
	records []*symbolRecord
	total   uint32
}

// scan reads every byte of data, appending a new record the first time a
// byte value is seen and incrementing its count on every subsequent
// occurrence. It never allocates ahead of need the way the C original
// does with ALLOC_ELEMENTS blocks; Go's slice growth already amortizes
// this.
func (t *symbolTable) scan(data []byte) {
	for _, b := range data {
		t.total++
		if rec := t.find(b); rec != nil {
			rec.count++
			continue
		}
		t.records = append(t.records, &symbolRecord{b: b, count: 1})
	}
}

// find performs the linear scan for byte b, returning nil if absent.
func (t *symbolTable) find(b byte) *symbolRecord {
	for _, rec := range t.records {
		if rec.b == b {
			return rec
		}
	}
	return nil
}

// add appends a fully-formed record (used when rebuilding a table from a
// decoded header, where counts are already known and no scan is needed).
func (t *symbolTable) add(b byte, count uint32) {
	t.records = append(t.records, &symbolRecord{b: b, count: count})
	t.total += count
}

func (t *symbolTable) len() int { return len(t.records) }
