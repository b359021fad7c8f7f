package writefiles

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/notargets/mesh2inp/InputParameters"
)

const (
	inpExt = ".inp"

	// Id list lines in the decks are wrapped at this many items
	setChunkSize = 16
)

func ensureInpExt(filename string) string {
	if !strings.HasSuffix(filename, inpExt) {
		filename += inpExt
	}
	return filename
}

// writeHeader emits the 4-line comment block heading both decks.
func writeHeader(w io.Writer, filename string, dp *InputParameters.DeckParameters) {
	fmt.Fprintf(w, "**\n")
	fmt.Fprintf(w, "** %s\n", filename)
	fmt.Fprintf(w, "** %s\n", dp.Title)
	fmt.Fprintf(w, "**\n")
}

// chunks splits a sequence into subsequences of count items, the last one
// possibly shorter.
func chunks(seq []int, count int) (subs [][]int) {
	if count < 1 {
		panic(fmt.Errorf("chunk count must be > 0, have %d", count))
	}
	for i := 0; i < len(seq); i += count {
		end := i + count
		if end > len(seq) {
			end = len(seq)
		}
		subs = append(subs, seq[i:end])
	}
	return
}

func joinInts(sub []int) string {
	strs := make([]string, len(sub))
	for i, id := range sub {
		strs[i] = strconv.Itoa(id)
	}
	return strings.Join(strs, ", ")
}
