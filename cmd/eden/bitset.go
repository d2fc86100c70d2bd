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

	"github.com/gaissmai/eden/bitset"
)

var (
	errWidth   = errors.New("unsupported width")
	errBitsOp  = errors.New("unknown bitset operation")
	errOperand = errors.New("wrong number of operands")
)

type bitsetReport struct {
	Width  uint   `yaml:"width"`
	Op     string `yaml:"op"`
	Result string `yaml:"result"`
	Count  int    `yaml:"count"`
	All    bool   `yaml:"all"`
	Any    bool   `yaml:"any"`
	None   bool   `yaml:"none"`
	Bits   []uint `yaml:"bits,flow"`
}

func (a *app) bitsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitset <op> <bits> [bits|n]",
		Short: "Combine fixed width bitsets",
		Long: `Operations:
  show <a>        parse and print a
  not <a>         complement
  and|or|xor|andnot <a> <b>
  shl|shr <a> <n> shift by n bits

Bits are written most significant first, the last character is bit 0.
Longer strings are truncated from the front, shorter ones padded with zeros.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			width := a.cfg.GetUint(cfgKeyWidth)
			a.log.Debug("bitset", zap.String("op", args[0]), zap.Uint("width", width))

			report, err := evalBitsetWidth(width, args[0], args[1:])
			if err != nil {
				return err
			}
			return a.render(report, report.text)
		},
	}

	cmd.Flags().Uint(cfgKeyWidth, defaultWidth, "bitset width: 8, 16, 32, 64, 128, 256, 512 or 1024")
	return cmd
}

// evalBitsetWidth instantiates evalBitset for the width,
// the width is a type parameter and can not be chosen at runtime otherwise.
func evalBitsetWidth(width uint, op string, args []string) (*bitsetReport, error) {
	switch width {
	case 8:
		return evalBitset[bitset.W8](op, args)
	case 16:
		return evalBitset[bitset.W16](op, args)
	case 32:
		return evalBitset[bitset.W32](op, args)
	case 64:
		return evalBitset[bitset.W64](op, args)
	case 128:
		return evalBitset[bitset.W128](op, args)
	case 256:
		return evalBitset[bitset.W256](op, args)
	case 512:
		return evalBitset[bitset.W512](op, args)
	case 1024:
		return evalBitset[bitset.W1024](op, args)
	default:
		return nil, fmt.Errorf("%w: %d", errWidth, width)
	}
}

func evalBitset[W bitset.Width](op string, args []string) (*bitsetReport, error) {
	want := 2
	switch op {
	case "show", "not":
		want = 1
	case "and", "or", "xor", "andnot", "shl", "shr":
	default:
		return nil, fmt.Errorf("%w: %q", errBitsOp, op)
	}
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", errOperand, op, want, len(args))
	}

	a, err := bitset.Parse[W](args[0])
	if err != nil {
		return nil, err
	}

	var r *bitset.Bitset[W]
	switch op {
	case "show":
		r = a
	case "not":
		r = a.Not()
	case "shl", "shr":
		n, err := strconv.ParseUint(args[1], 10, 0)
		if err != nil {
			return nil, fmt.Errorf("shift count: %w", err)
		}
		if op == "shl" {
			r = a.ShiftLeft(uint(n))
		} else {
			r = a.ShiftRight(uint(n))
		}
	default:
		b, err := bitset.Parse[W](args[1])
		if err != nil {
			return nil, err
		}
		r = map[string]func(*bitset.Bitset[W]) *bitset.Bitset[W]{
			"and":    a.And,
			"or":     a.Or,
			"xor":    a.Xor,
			"andnot": a.AndNot,
		}[op](b)
	}

	return &bitsetReport{
		Width:  r.Len(),
		Op:     op,
		Result: r.String(),
		Count:  r.Count(),
		All:    r.All(),
		Any:    r.Any(),
		None:   r.None(),
		Bits:   r.AsSlice(nil),
	}, nil
}

func (r *bitsetReport) text(w io.Writer) {
	fmt.Fprintln(w, r.Result)
	fmt.Fprintf(w, "count: %d, all: %t, any: %t, none: %t\n", r.Count, r.All, r.Any, r.None)
	fmt.Fprintf(w, "bits: %v\n", r.Bits)
}
