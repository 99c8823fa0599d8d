package writefiles

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/goswe/model_problems/ShallowWater2D"
)

// NewSnapshotWriter returns an output function writing each snapshot to its
// own file in dir, named after the title and the step. An empty format
// writes nothing.
func NewSnapshotWriter(dir, format, title string, verbose bool) (of ShallowWater2D.OutputFunc, err error) {
	if len(title) == 0 {
		title = "sw2d"
	}
	var ext string
	switch format {
	case "":
		return nil, nil
	case "vtk":
		ext = "vtk"
	case "binary":
		ext = "bin"
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return
	}
	of = func(s *ShallowWater2D.Snapshot) (err error) {
		var (
			file = filepath.Join(dir, fmt.Sprintf("%s_%06d.%s", title, s.Step, ext))
			f    *os.File
		)
		if f, err = os.Create(file); err != nil {
			return
		}
		defer f.Close()
		if verbose {
			fmt.Printf("Write %s file: %s, time = %8.5f\n", format, file, s.Time)
		}
		if format == "vtk" {
			err = WriteVTK(f, s, title)
		} else {
			err = WriteBinary(f, s)
		}
		return
	}
	return
}
