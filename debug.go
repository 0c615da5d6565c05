package factory

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

type IndexInfo struct {
	Scopes     []string
	Candidates []CandidateInfo
}

type CandidateInfo struct {
	Name    string
	Scope   string
	Markers []Marker
}

// Describe returns a snapshot of the indexed candidates sorted by name,
// populating the index first if needed.
func (ix *Index) Describe() IndexInfo {
	candidates := ix.Candidates()

	infos := make([]CandidateInfo, 0, len(candidates))
	for _, c := range candidates {
		infos = append(
			infos, CandidateInfo{
				Name:    c.Name(),
				Scope:   c.Scope(),
				Markers: c.Markers(),
			},
		)
	}
	sort.Slice(
		infos, func(i, j int) bool {
			return infos[i].Name < infos[j].Name
		},
	)

	return IndexInfo{Scopes: ix.Scopes(), Candidates: infos}
}

func (ix *Index) Print() {
	ix.Fprint(os.Stdout)
}

func (ix *Index) Fprint(w io.Writer) {
	info := ix.Describe()

	if len(info.Candidates) == 0 {
		_, _ = fmt.Fprintln(w, "(empty index)")
		return
	}

	for _, c := range info.Candidates {
		markers := make([]string, len(c.Markers))
		for i, m := range c.Markers {
			markers[i] = m.String()
		}
		_, _ = fmt.Fprintf(w, "● %s [%s]", c.Name, strings.Join(markers, ", "))
		if c.Scope != "" {
			_, _ = fmt.Fprintf(w, " (%s)", c.Scope)
		}
		_, _ = fmt.Fprintln(w)
	}
}

func (ix *Index) Sprint() string {
	var sb strings.Builder
	ix.Fprint(&sb)
	return sb.String()
}
