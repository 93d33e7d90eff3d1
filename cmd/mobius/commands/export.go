package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parametric-surfaces/mobius-go/pkg/surface"
)

// meshDocument is the JSON export shape: parameters plus the flattened
// point list in row-major (u-index, v-index) order.
type meshDocument struct {
	R      float64     `json:"r"`
	W      float64     `json:"w"`
	N      int         `json:"n"`
	Points []meshPoint `json:"points"`
}

type meshPoint struct {
	I int     `json:"i"`
	J int     `json:"j"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RunExport builds the surface and writes its mesh in the given format.
func RunExport(p surface.Params, format, output string) error {
	s, err := surface.New(p.R, p.W, p.N)
	if err != nil {
		return err
	}

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		return ExportJSON(s, w)
	case "csv":
		return ExportCSV(s, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: json, csv)", format)
	}
}

// ExportJSON writes the mesh as a single JSON document.
func ExportJSON(s *surface.Surface, w io.Writer) error {
	p := s.Params()
	m := s.Mesh()
	nu, nv := m.Dims()

	doc := meshDocument{R: p.R, W: p.W, N: p.N, Points: make([]meshPoint, 0, nu*nv)}
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			pt := m.At(i, j)
			doc.Points = append(doc.Points, meshPoint{I: i, J: j, X: pt.X, Y: pt.Y, Z: pt.Z})
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode mesh: %w", err)
	}
	return nil
}

// ExportCSV writes the mesh as CSV with an i,j,x,y,z header row.
func ExportCSV(s *surface.Surface, w io.Writer) error {
	m := s.Mesh()
	nu, nv := m.Dims()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"i", "j", "x", "y", "z"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			pt := m.At(i, j)
			record := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(pt.X, 'g', -1, 64),
				strconv.FormatFloat(pt.Y, 'g', -1, 64),
				strconv.FormatFloat(pt.Z, 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
