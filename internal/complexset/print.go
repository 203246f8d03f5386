package complexset

import (
	"fmt"
	"io"

	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// NameResolver maps a Vertex back to the protein name it was read under.
// dataset.Mapping satisfies this via its Name method.
type NameResolver func(ppigraph.Vertex) (string, bool)

// Write prints complexes one per line, proteins space-separated and
// resolved to their names via resolve, ascending by id within a line. A
// complex containing a Vertex unknown to resolve falls back to printing
// its numeric id.
func Write(w io.Writer, complexes []Complex, resolve NameResolver) error {
	for _, c := range complexes {
		for i, v := range c.Proteins.Sorted() {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			name, ok := resolve(v)
			if !ok {
				name = fmt.Sprintf("%d", v)
			}
			if _, err := io.WriteString(w, name); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
