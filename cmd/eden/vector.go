// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaissmai/eden/alloc"
	"github.com/gaissmai/eden/vector"
)

var (
	errInline    = errors.New("unsupported inline capacity")
	errAllocator = errors.New("unknown allocator")
)

type vectorReport struct {
	Inline    int     `yaml:"inline"`
	Allocator string  `yaml:"allocator"`
	Len       int     `yaml:"len"`
	Cap       int     `yaml:"cap"`
	HeapLen   int     `yaml:"heap_len"`
	HeapCap   int     `yaml:"heap_cap"`
	Spilled   bool    `yaml:"spilled"`
	Values    []int64 `yaml:"values,flow"`
	Popped    []int64 `yaml:"popped,flow,omitempty"`
	Allocs    int64   `yaml:"allocs"`
	Frees     int64   `yaml:"frees"`

	dump string
}

type vectorParams struct {
	kind   string
	budget int64
	values []int64
	pop    int
	log    *zap.Logger
}

func (a *app) vectorCmd() *cobra.Command {
	var pop int

	cmd := &cobra.Command{
		Use:   "vector [values...]",
		Short: "Push integers onto a small vector and show both regions",
		RunE: func(_ *cobra.Command, args []string) error {
			values := make([]int64, 0, len(args))
			for _, arg := range args {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("value %q: %w", arg, err)
				}
				values = append(values, v)
			}

			p := vectorParams{
				kind:   a.cfg.GetString(cfgKeyAllocator),
				budget: a.cfg.GetInt64(cfgKeyBudget),
				values: values,
				pop:    pop,
				log:    a.log,
			}

			inline := a.cfg.GetInt(cfgKeyInline)
			a.log.Debug("vector", zap.Int("inline", inline), zap.String("allocator", p.kind), zap.Int("values", len(values)))

			report, err := runVectorInline(inline, p)
			if err != nil {
				return err
			}
			return a.render(report, report.text)
		},
	}

	f := cmd.Flags()
	f.Int(cfgKeyInline, defaultInline, "inline capacity: 1, 2, 4, 8, 16, 32 or 64")
	f.String(cfgKeyAllocator, defaultAllocator, "allocator: heap, pool, limited or mmap")
	f.Int64(cfgKeyBudget, defaultBudget, "byte budget of the limited allocator")
	f.IntVar(&pop, "pop", 0, "pop n elements after pushing")

	return cmd
}

// runVectorInline instantiates runVector for the inline capacity.
func runVectorInline(inline int, p vectorParams) (*vectorReport, error) {
	switch inline {
	case 1:
		return runVector[[1]int64](p)
	case 2:
		return runVector[[2]int64](p)
	case 4:
		return runVector[[4]int64](p)
	case 8:
		return runVector[[8]int64](p)
	case 16:
		return runVector[[16]int64](p)
	case 32:
		return runVector[[32]int64](p)
	case 64:
		return runVector[[64]int64](p)
	default:
		return nil, fmt.Errorf("%w: %d", errInline, inline)
	}
}

// newAllocator returns the named allocator.
func newAllocator[T any](kind string, budget int64, log *zap.Logger) (alloc.Allocator[T], error) {
	switch kind {
	case "heap":
		return alloc.Heap[T]{}, nil
	case "pool":
		return alloc.NewPool[T](), nil
	case "limited":
		return alloc.NewLimited[T](nil, budget, alloc.WithLogger(log)), nil
	case "mmap":
		return alloc.Mmap[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errAllocator, kind)
	}
}

func runVector[B vector.Inline[int64]](p vectorParams) (*vectorReport, error) {
	base, err := newAllocator[int64](p.kind, p.budget, p.log)
	if err != nil {
		return nil, err
	}
	counter := alloc.NewCounting(base)

	v := vector.New[int64, B](vector.WithAllocator[int64](counter))
	defer v.Free()

	for i, x := range p.values {
		if err := v.PushBack(x); err != nil {
			return nil, fmt.Errorf("push #%d: %w", i, err)
		}
	}

	var popped []int64
	for range min(p.pop, v.Len()) {
		popped = append(popped, v.PopBack())
	}

	return &vectorReport{
		Inline:    v.Cap() - v.HeapCap(),
		Allocator: p.kind,
		Len:       v.Len(),
		Cap:       v.Cap(),
		HeapLen:   v.HeapLen(),
		HeapCap:   v.HeapCap(),
		Spilled:   v.Spilled(),
		Values:    v.AppendTo(nil),
		Popped:    popped,
		Allocs:    counter.Allocs(),
		Frees:     counter.Frees(),
		dump:      v.String(),
	}, nil
}

func (r *vectorReport) text(w io.Writer) {
	fmt.Fprint(w, r.dump)
	if len(r.Popped) > 0 {
		fmt.Fprintf(w, "popped: %v\n", r.Popped)
	}
	fmt.Fprintf(w, "allocator: %s, allocs: %d, frees: %d\n", r.Allocator, r.Allocs, r.Frees)
}
