// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/gaissmai/eden/traits"
)

var errTypeName = errors.New("unknown type")

// knownTypes are the types the traits command can inspect.
var knownTypes = map[string]reflect.Type{
	"bool":           traits.TypeOf[bool](),
	"int":            traits.TypeOf[int](),
	"int8":           traits.TypeOf[int8](),
	"uint8":          traits.TypeOf[uint8](),
	"uint64":         traits.TypeOf[uint64](),
	"uintptr":        traits.TypeOf[uintptr](),
	"float64":        traits.TypeOf[float64](),
	"complex128":     traits.TypeOf[complex128](),
	"string":         traits.TypeOf[string](),
	"*int":           traits.TypeOf[*int](),
	"**int":          traits.TypeOf[**int](),
	"[]int":          traits.TypeOf[[]int](),
	"[4]int":         traits.TypeOf[[4]int](),
	"map[string]int": traits.TypeOf[map[string]int](),
	"chan int":       traits.TypeOf[chan int](),
	"func()":         traits.TypeOf[func()](),
	"any":            traits.TypeOf[any](),
	"error":          traits.TypeOf[error](),
	"struct{}":       traits.TypeOf[struct{}](),
	"unsafe.Pointer": traits.TypeOf[unsafe.Pointer](),
	"time.Duration":  traits.TypeOf[time.Duration](),
	"time.Month":     traits.TypeOf[time.Month](),
	"time.Time":      traits.TypeOf[time.Time](),
}

// predicates in report order
var predicates = []struct {
	name string
	pred traits.Predicate
}{
	{"pointer", traits.Pointer},
	{"array", traits.Array},
	{"slice", traits.Slice},
	{"map", traits.Map},
	{"chan", traits.Chan},
	{"func", traits.Func},
	{"interface", traits.Interface},
	{"struct", traits.Struct},
	{"enum", traits.Enum},
	{"integral", traits.Integral},
	{"floating_point", traits.FloatingPoint},
	{"arithmetic", traits.Arithmetic},
	{"fundamental", traits.Fundamental},
	{"scalar", traits.Scalar},
	{"object", traits.Object},
	{"comparable", traits.Comparable},
	{"nilable", traits.Nilable},
	{"zero_sized", traits.ZeroSized},
	{"has_pointers", traits.ContainsPointers},
}

type traitsReport struct {
	Type       string   `yaml:"type"`
	Kind       string   `yaml:"kind"`
	Size       uintptr  `yaml:"size"`
	True       []string `yaml:"true,flow"`
	Underlying string   `yaml:"underlying"`
	Pointee    string   `yaml:"pointee,omitempty"`
}

func (a *app) traitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "traits <type>...",
		Short: "Report the type predicates satisfied by builtin and std types",
		Long:  "Known types:\n  " + strings.Join(slices.Sorted(maps.Keys(knownTypes)), "\n  "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reports := make([]traitsReport, 0, len(args))
			for _, name := range args {
				r, err := inspect(name)
				if err != nil {
					return err
				}
				reports = append(reports, r)
			}

			return a.render(reports, func(w io.Writer) {
				for _, r := range reports {
					r.text(w)
				}
			})
		},
	}
}

func inspect(name string) (traitsReport, error) {
	t, ok := knownTypes[name]
	if !ok {
		return traitsReport{}, fmt.Errorf("%w: %q", errTypeName, name)
	}

	r := traitsReport{
		Type:       name,
		Kind:       t.Kind().String(),
		Size:       t.Size(),
		Underlying: traits.Underlying(t).String(),
	}
	for _, p := range predicates {
		if p.pred(t) {
			r.True = append(r.True, p.name)
		}
	}
	if traits.Pointer(t) {
		r.Pointee = traits.RemoveAllPointers(t).String()
	}
	return r, nil
}

func (r traitsReport) text(w io.Writer) {
	fmt.Fprintf(w, "%s: kind %s, size %d, underlying %s\n", r.Type, r.Kind, r.Size, r.Underlying)
	if r.Pointee != "" {
		fmt.Fprintf(w, "  pointee: %s\n", r.Pointee)
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(r.True, " "))
}
