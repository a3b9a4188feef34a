package huffc_test

import (
	"bytes"
	"fmt"

	"github.com/huffc/huffc"
)

func Example() {
	var archive bytes.Buffer
	stats, err := huffc.Compress(&archive, bytes.NewReader([]byte("abracadabra")))
	if err != nil {
		fmt.Println("compress error:", err)
		return
	}

	var out bytes.Buffer
	if err := huffc.Decompress(&out, bytes.NewReader(archive.Bytes())); err != nil {
		fmt.Println("decompress error:", err)
		return
	}

	fmt.Println(out.String())
	fmt.Println(stats.SymbolCount, stats.TotalSymbols)
	// Output:
	// abracadabra
	// 5 11
}
