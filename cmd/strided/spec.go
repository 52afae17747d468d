package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strided-ml/strided/array"
)

// layoutSpec is the YAML description accepted by the layout command.
//
//	element: float64
//	extents: [3, 4]
//	order: row-major
//	names: [row, col]
//	slices:
//	  - {dim: 0, low: 1, high: 3}
//	transpose: [1, 0]
//	reverse: [0]
type layoutSpec struct {
	Element   string      `yaml:"element"`
	Extents   []int64     `yaml:"extents"`
	Order     string      `yaml:"order"`
	Names     []string    `yaml:"names"`
	Slices    []sliceSpec `yaml:"slices"`
	Transpose []int       `yaml:"transpose"`
	Reverse   []int       `yaml:"reverse"`
}

type sliceSpec struct {
	Dim  int   `yaml:"dim"`
	Low  int64 `yaml:"low"`
	High int64 `yaml:"high"`
}

func parseLayoutSpec(data []byte) (*layoutSpec, error) {
	var spec layoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse layout spec: %w", err)
	}
	if spec.Element == "" {
		spec.Element = "float64"
	}
	if _, ok := array.KindByName(spec.Element); !ok {
		return nil, fmt.Errorf("unknown element kind %q", spec.Element)
	}
	if len(spec.Names) > 0 && len(spec.Names) != len(spec.Extents) {
		return nil, fmt.Errorf("%d names for %d extents", len(spec.Names), len(spec.Extents))
	}
	return &spec, nil
}

func loadLayoutSpec(path string) (*layoutSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseLayoutSpec(data)
}

// build derives the layout the spec describes and the element offset of its
// origin, applying slices, transposition, and reversals in that order.
func (s *layoutSpec) build() (array.Layout, int64, error) {
	var l array.Layout
	switch s.Order {
	case "", "row-major":
		l = array.RowMajor(s.Extents...)
	case "col-major":
		l = array.ColMajor(s.Extents...)
	default:
		return nil, 0, fmt.Errorf("unknown order %q", s.Order)
	}
	for i, name := range s.Names {
		l[i].Name = name
	}

	var origin int64
	for _, sl := range s.Slices {
		nl, delta, err := l.Slice(sl.Dim, sl.Low, sl.High)
		if err != nil {
			return nil, 0, err
		}
		l, origin = nl, origin+delta
	}
	if len(s.Transpose) > 0 {
		nl, err := l.Transpose(s.Transpose...)
		if err != nil {
			return nil, 0, err
		}
		l = nl
	}
	for _, dim := range s.Reverse {
		nl, delta, err := l.Reverse(dim)
		if err != nil {
			return nil, 0, err
		}
		l, origin = nl, origin+delta
	}
	return l, origin, nil
}
