package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// WriteBinary encodes the model as binary STL
func WriteBinary(w io.Writer, m *Model) error {
	var header [80]byte
	copy(header[:], m.Name)
	if _, err := w.Write(header[:]); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return errors.Wrap(err, "failed to write triangle count")
	}
	for i, t := range m.Triangles {
		f := binaryFacet{
			Normal: to32(t.Normal),
			V1:     to32(t.V1),
			V2:     to32(t.V2),
			V3:     to32(t.V3),
		}
		if err := binary.Write(w, binary.LittleEndian, &f); err != nil {
			return errors.Wrapf(err, "failed to write triangle %d", i)
		}
	}
	return nil
}

// WriteASCII encodes the model as ASCII STL
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal[0], t.Normal[1], t.Normal[2])
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range [3]mgl64.Vec3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v[0], v[1], v[2])
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)
	return errors.Wrap(bw.Flush(), "failed to write ASCII STL")
}

// Save writes the model to a file
func Save(path string, m *Model, ascii bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if ascii {
		err = WriteASCII(f, m)
	} else {
		err = WriteBinary(f, m)
	}
	if err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}

func to32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
