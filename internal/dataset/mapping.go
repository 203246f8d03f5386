package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bio-odsg/odsgminer/internal/ferrors"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// Mapping is the bidirectional protein-name <-> Vertex-id table used to
// translate a dataset file's protein names into the small dense integer
// ids the mining pipeline operates on.
type Mapping struct {
	nameToID map[string]ppigraph.Vertex
	idToName map[ppigraph.Vertex]string
	nextID   ppigraph.Vertex
}

// NewMapping returns an empty Mapping; ids are assigned starting at 1.
func NewMapping() *Mapping {
	return &Mapping{
		nameToID: make(map[string]ppigraph.Vertex),
		idToName: make(map[ppigraph.Vertex]string),
		nextID:   1,
	}
}

// ReadMapping parses a "name id" mapping file, one entry per line, blank
// lines and lines starting with '#' ignored. A duplicated name or id is
// a MalformedInput error.
func ReadMapping(r io.Reader) (*Mapping, error) {
	m := NewMapping()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, ferrors.New(ferrors.MalformedInput, fmt.Sprintf("mapping line %d: expected \"name id\"", lineNo))
		}

		name := fields[0]
		id, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, ferrors.Wrap(ferrors.MalformedInput, fmt.Sprintf("mapping line %d: bad id %q", lineNo, fields[1]), err)
		}
		vertex := ppigraph.Vertex(id)

		if _, exists := m.nameToID[name]; exists {
			return nil, ferrors.New(ferrors.MalformedInput, fmt.Sprintf("mapping line %d: duplicated protein name %q", lineNo, name))
		}
		if _, exists := m.idToName[vertex]; exists {
			return nil, ferrors.New(ferrors.MalformedInput, fmt.Sprintf("mapping line %d: duplicated id %d", lineNo, vertex))
		}

		m.set(name, vertex)
	}
	if err := scanner.Err(); err != nil {
		return nil, ferrors.Wrap(ferrors.IoError, "reading mapping file", err)
	}

	return m, nil
}

func (m *Mapping) set(name string, id ppigraph.Vertex) {
	m.nameToID[name] = id
	m.idToName[id] = name
	if id >= m.nextID {
		m.nextID = id + 1
	}
}

// ResolveOrAssign returns name's Vertex id, assigning it the next unused
// id if it hasn't been seen before.
func (m *Mapping) ResolveOrAssign(name string) ppigraph.Vertex {
	if id, ok := m.nameToID[name]; ok {
		return id
	}
	id := m.nextID
	m.set(name, id)
	return id
}

// ID returns name's Vertex id, if known.
func (m *Mapping) ID(name string) (ppigraph.Vertex, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}

// Name returns id's protein name, if known.
func (m *Mapping) Name(id ppigraph.Vertex) (string, bool) {
	name, ok := m.idToName[id]
	return name, ok
}

// Len returns the number of entries in the mapping.
func (m *Mapping) Len() int { return len(m.nameToID) }
