package huffc

import "testing"

func TestSymbolTableScanPreservesInsertionOrder(t *testing.T) {
	var table symbolTable
	table.scan([]byte("abracadabra"))

	wantOrder := []byte{'a', 'b', 'r', 'c', 'd'}
	if table.len() != len(wantOrder) {
		t.Fatalf("got %d distinct records, want %d", table.len(), len(wantOrder))
	}
	for i, b := range wantOrder {
		if table.records[i].b != b {
			t.Fatalf("record %d: got byte %q, want %q", i, table.records[i].b, b)
		}
	}

	wantCounts := map[byte]uint32{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	for _, rec := range table.records {
		if rec.count != wantCounts[rec.b] {
			t.Fatalf("byte %q: got count %d, want %d", rec.b, rec.count, wantCounts[rec.b])
		}
	}

	if table.total != 11 {
		t.Fatalf("total=%d, want 11", table.total)
	}
}

func TestSymbolTableFrequencyConservation(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	var table symbolTable
	table.scan(data)

	var sum uint32
	for _, rec := range table.records {
		sum += rec.count
	}
	if sum != table.total || int(table.total) != len(data) {
		t.Fatalf("sum(counts)=%d total=%d len(data)=%d, all three must match", sum, table.total, len(data))
	}
}

func TestSymbolTableFindMissing(t *testing.T) {
	var table symbolTable
	table.scan([]byte("aaa"))
	if table.find('z') != nil {
		t.Fatalf("expected nil for an unseen byte")
	}
	if table.find('a') == nil {
		t.Fatalf("expected a record for a seen byte")
	}
}

func TestSymbolTableAdd(t *testing.T) {
	var table symbolTable
	table.add('x', 4)
	table.add('y', 6)
	if table.len() != 2 || table.total != 10 {
		t.Fatalf("got len=%d total=%d, want len=2 total=10", table.len(), table.total)
	}
}
