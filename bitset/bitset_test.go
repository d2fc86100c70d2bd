// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	bbs "github.com/bits-and-blooms/bitset"
	"github.com/google/go-cmp/cmp"
)

// W100 is not a multiple of the word size
type W100 struct{}

func (W100) Bits() uint { return 100 }

// W0 has no addressable bits at all
type W0 struct{}

func (W0) Bits() uint { return 0 }

func TestZeroValue(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("A zero value bitset must not panic: %v", r)
		}
	}()

	var b Bitset[W100]
	_, _ = b.Test(42)

	b = Bitset[W100]{}
	_ = b.Set(0)

	b = Bitset[W100]{}
	_ = b.Clear(99)

	b = Bitset[W100]{}
	_ = b.Flip(7)

	b = Bitset[W100]{}
	b.All()
	b.Any()
	b.None()
	b.Count()
	b.NextSet(0)
	b.AsSlice(nil)
	_ = b.String()
	_ = b.Clone()
	_ = b.Words()

	b = Bitset[W100]{}
	c := Bitset[W100]{}
	_ = b.And(&c)
	_ = b.Or(&c)
	_ = b.Xor(&c)
	_ = b.AndNot(&c)
	_ = b.Not()
	_ = b.Equal(&c)
	_ = b.ShiftLeft(3)
	_ = b.ShiftRight(3)

	b = Bitset[W100]{}
	b.InPlaceOr(&c)

	b = Bitset[W100]{}
	b.SetAll()

	b = Bitset[W100]{}
	b.ClearAll()

	b = Bitset[W100]{}
	b.FlipAll()
}

func TestZeroValueReadsDoNotAllocate(t *testing.T) {
	var b, c Bitset[W1024]

	allocs := testing.AllocsPerRun(100, func() {
		b.All()
		b.Equal(&c)
		b.Words()
	})
	// Words returns a fresh copy
	if allocs > 1 {
		t.Errorf("reads of a zero value bitset, want at most 1 alloc, got %v", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		b.All()
		b.Equal(&c)
	})
	if allocs != 0 {
		t.Errorf("All and Equal on a zero value bitset, want 0 allocs, got %v", allocs)
	}

	if b.words != nil || c.words != nil {
		t.Error("reads must not initialize a zero value bitset")
	}
}

func TestWidthZero(t *testing.T) {
	t.Parallel()
	b := New[W0]()

	if b.Len() != 0 {
		t.Errorf("Len, want 0, got %d", b.Len())
	}
	if !b.All() || b.Any() || !b.None() || b.Count() != 0 {
		t.Error("width 0, expected All && None")
	}
	if err := b.Set(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Set(0), want ErrOutOfRange, got %v", err)
	}
	if s := b.String(); s != "" {
		t.Errorf("String, want empty, got %q", s)
	}
	if !b.Not().Equal(b) {
		t.Error("Not, width 0, expected equal")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	b := New[W100]()

	if b.Len() != 100 {
		t.Errorf("Len, want 100, got %d", b.Len())
	}
	if b.Any() {
		t.Error("New, expected no bit set")
	}
	if want := strings.Repeat("0", 100); b.String() != want {
		t.Errorf("String, want %s, got %s", want, b.String())
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()
	b := New[W100]()

	for _, i := range []uint{100, 101, 127, 128, 1 << 20} {
		if _, err := b.Test(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Test(%d), want ErrOutOfRange, got %v", i, err)
		}
		if err := b.Set(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d), want ErrOutOfRange, got %v", i, err)
		}
		if err := b.Clear(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Clear(%d), want ErrOutOfRange, got %v", i, err)
		}
		if err := b.Flip(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Flip(%d), want ErrOutOfRange, got %v", i, err)
		}
	}

	if b.Any() {
		t.Error("failed accessors must not modify the bitset")
	}

	for _, i := range []uint{0, 63, 64, 99} {
		if err := b.Set(i); err != nil {
			t.Errorf("Set(%d), unexpected error: %v", i, err)
		}
		if ok, err := b.Test(i); err != nil || !ok {
			t.Errorf("Test(%d), want true, got %v, %v", i, ok, err)
		}
	}
}

func TestSetClearFlip(t *testing.T) {
	t.Parallel()
	b := New[W128]()

	_ = b.Set(10)
	_ = b.Set(70)
	if b.Count() != 2 {
		t.Errorf("Count, want 2, got %d", b.Count())
	}

	_ = b.Clear(10)
	if ok, _ := b.Test(10); ok {
		t.Error("Clear(10), bit still set")
	}

	_ = b.Flip(70)
	_ = b.Flip(71)
	if ok, _ := b.Test(70); ok {
		t.Error("Flip(70), bit still set")
	}
	if ok, _ := b.Test(71); !ok {
		t.Error("Flip(71), bit not set")
	}

	_ = b.SetTo(5, true)
	_ = b.SetTo(71, false)
	if got := b.AsSlice(nil); !cmp.Equal(got, []uint{5}) {
		t.Errorf("AsSlice, want [5], got %v", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "empty", in: "", want: "00000000"},
		{name: "short", in: "101", want: "00000101"},
		{name: "exact", in: "11110000", want: "11110000"},
		{name: "long, truncated from the front", in: "1111000011", want: "11000011"},
		{name: "all zero long", in: "1000000000", want: "00000000"},
		{name: "invalid char", in: "10x1", wantErr: ErrInvalidChar},
		{name: "truncated leading char", in: "x00000101", want: "00000101"},
		{name: "invalid char within width", in: "1x0000001", wantErr: ErrInvalidChar},
		{name: "blank", in: " 1", wantErr: ErrInvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse[W8](tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q), want %v, got %v", tt.in, tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q), unexpected error: %v", tt.in, err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("Parse(%q), want %s, got %s", tt.in, tt.want, got)
			}
		})
	}
}

func TestParseLSBIsLastChar(t *testing.T) {
	t.Parallel()
	b := MustParse[W16]("10")

	if ok, _ := b.Test(0); ok {
		t.Error("bit 0, want false")
	}
	if ok, _ := b.Test(1); !ok {
		t.Error("bit 1, want true")
	}
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse, expected panic")
		}
	}()
	MustParse[W8]("2")
}

func randomBitset[W Width](prng *rand.Rand) *Bitset[W] {
	b := New[W]()
	n := b.Len()
	for range n / 2 {
		_ = b.Set(uint(prng.IntN(int(n))))
	}
	return b
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range 100 {
		b8 := randomBitset[W8](prng)
		if got := MustParse[W8](b8.String()); !got.Equal(b8) {
			t.Fatalf("round trip W8, want %s, got %s", b8, got)
		}

		b100 := randomBitset[W100](prng)
		if got := MustParse[W100](b100.String()); !got.Equal(b100) {
			t.Fatalf("round trip W100, want %s, got %s", b100, got)
		}

		b1024 := randomBitset[W1024](prng)
		if got := MustParse[W1024](b1024.String()); !got.Equal(b1024) {
			t.Fatal("round trip W1024, not equal")
		}
	}
}

func TestAllAnyNoneCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    string
		all   bool
		any   bool
		none  bool
		count int
	}{
		{name: "zero", in: "00000000", all: false, any: false, none: true, count: 0},
		{name: "one", in: "00010000", all: false, any: true, none: false, count: 1},
		{name: "almost", in: "11111110", all: false, any: true, none: false, count: 7},
		{name: "full", in: "11111111", all: true, any: true, none: false, count: 8},
	}

	for _, tt := range tests {
		b := MustParse[W8](tt.in)
		if b.All() != tt.all {
			t.Errorf("%s: All, want %v", tt.name, tt.all)
		}
		if b.Any() != tt.any {
			t.Errorf("%s: Any, want %v", tt.name, tt.any)
		}
		if b.None() != tt.none {
			t.Errorf("%s: None, want %v", tt.name, tt.none)
		}
		if b.Count() != tt.count {
			t.Errorf("%s: Count, want %d, got %d", tt.name, tt.count, b.Count())
		}
	}
}

func TestTailInvariant(t *testing.T) {
	t.Parallel()
	b := New[W100]()

	b.SetAll()
	if b.Count() != 100 || !b.All() {
		t.Errorf("SetAll, want 100 bits, got %d", b.Count())
	}

	b.FlipAll()
	if b.Any() {
		t.Errorf("FlipAll, want no bits, got %d", b.Count())
	}

	if got := b.Not().Count(); got != 100 {
		t.Errorf("Not, want 100 bits, got %d", got)
	}

	b.SetAll()
	if got := b.ShiftLeft(1).Count(); got != 99 {
		t.Errorf("ShiftLeft, want 99 bits, got %d", got)
	}

	if words := b.Words(); words[1]>>36 != 0 {
		t.Errorf("bits beyond width set: %x", words[1])
	}
}

func TestCombinators(t *testing.T) {
	t.Parallel()
	a := MustParse[W8]("11001100")
	b := MustParse[W8]("10101010")

	tests := []struct {
		name string
		got  *Bitset[W8]
		want string
	}{
		{name: "and", got: a.And(b), want: "10001000"},
		{name: "or", got: a.Or(b), want: "11101110"},
		{name: "xor", got: a.Xor(b), want: "01100110"},
		{name: "andNot", got: a.AndNot(b), want: "01000100"},
		{name: "not", got: a.Not(), want: "00110011"},
	}

	for _, tt := range tests {
		if tt.got.String() != tt.want {
			t.Errorf("%s, want %s, got %s", tt.name, tt.want, tt.got)
		}
	}

	// operands untouched
	if a.String() != "11001100" || b.String() != "10101010" {
		t.Errorf("operands modified: %s, %s", a, b)
	}
}

func TestInPlace(t *testing.T) {
	t.Parallel()
	b := MustParse[W8]("10101010")

	if got := MustParse[W8]("11001100").InPlaceAnd(b).String(); got != "10001000" {
		t.Errorf("InPlaceAnd, got %s", got)
	}
	if got := MustParse[W8]("11001100").InPlaceOr(b).String(); got != "11101110" {
		t.Errorf("InPlaceOr, got %s", got)
	}
	if got := MustParse[W8]("11001100").InPlaceXor(b).String(); got != "01100110" {
		t.Errorf("InPlaceXor, got %s", got)
	}
	if got := MustParse[W8]("11001100").InPlaceNot().String(); got != "00110011" {
		t.Errorf("InPlaceNot, got %s", got)
	}
}

func TestAndIdentities(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(4711, 42))
	zero := New[W100]()

	for range 100 {
		b := randomBitset[W100](prng)

		if !b.And(b).Equal(b) {
			t.Fatalf("b & b != b, %s", b)
		}
		if b.And(zero).Any() {
			t.Fatalf("b & 0 != 0, %s", b)
		}
		if !b.Or(zero).Equal(b) {
			t.Fatalf("b | 0 != b, %s", b)
		}
		if b.Xor(b).Any() {
			t.Fatalf("b ^ b != 0, %s", b)
		}
		if !b.Not().Not().Equal(b) {
			t.Fatalf("^^b != b, %s", b)
		}
	}
}

func TestShift(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  *Bitset[W8]
		want string
	}{
		{name: "left 0", got: MustParse[W8]("00000101").ShiftLeft(0), want: "00000101"},
		{name: "left 1", got: MustParse[W8]("00000101").ShiftLeft(1), want: "00001010"},
		{name: "left 7", got: MustParse[W8]("00000101").ShiftLeft(7), want: "10000000"},
		{name: "left 8", got: MustParse[W8]("00000101").ShiftLeft(8), want: "00000000"},
		{name: "right 1", got: MustParse[W8]("10100000").ShiftRight(1), want: "01010000"},
		{name: "right 7", got: MustParse[W8]("10100000").ShiftRight(7), want: "00000001"},
		{name: "right 9", got: MustParse[W8]("10100000").ShiftRight(9), want: "00000000"},
	}

	for _, tt := range tests {
		if tt.got.String() != tt.want {
			t.Errorf("%s, want %s, got %s", tt.name, tt.want, tt.got)
		}
	}
}

func TestShiftAcrossWords(t *testing.T) {
	t.Parallel()
	b := New[W256]()
	_ = b.Set(0)
	_ = b.Set(63)
	_ = b.Set(130)

	if got := b.ShiftLeft(1).AsSlice(nil); !cmp.Equal(got, []uint{1, 64, 131}) {
		t.Errorf("ShiftLeft(1), got %v", got)
	}
	if got := b.ShiftLeft(70).AsSlice(nil); !cmp.Equal(got, []uint{70, 133, 200}) {
		t.Errorf("ShiftLeft(70), got %v", got)
	}
	if got := b.ShiftLeft(128).AsSlice(nil); !cmp.Equal(got, []uint{128, 191}) {
		t.Errorf("ShiftLeft(128), got %v", got)
	}
	if got := b.ShiftRight(1).AsSlice(nil); !cmp.Equal(got, []uint{62, 129}) {
		t.Errorf("ShiftRight(1), got %v", got)
	}
	if got := b.ShiftRight(64).AsSlice(nil); !cmp.Equal(got, []uint{66}) {
		t.Errorf("ShiftRight(64), got %v", got)
	}
	if got := b.ShiftRight(67).AsSlice(nil); !cmp.Equal(got, []uint{63}) {
		t.Errorf("ShiftRight(67), got %v", got)
	}
}

func TestNextSet(t *testing.T) {
	t.Parallel()
	b := New[W256]()
	want := []uint{0, 5, 63, 64, 127, 200, 255}
	for _, i := range want {
		_ = b.Set(i)
	}

	var got []uint
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		got = append(got, i)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NextSet mismatch (-want +got):\n%s", diff)
	}

	if _, ok := b.NextSet(256); ok {
		t.Error("NextSet(256), want false")
	}
}

func TestCloneIndependent(t *testing.T) {
	t.Parallel()
	b := MustParse[W64]("1")
	c := b.Clone()
	_ = c.Set(5)

	if ok, _ := b.Test(5); ok {
		t.Error("Clone shares storage with original")
	}
	if b.Equal(c) {
		t.Error("Equal, want false")
	}
}

// compare against the dynamic bitset as oracle
func TestAgainstDynamic(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(1, 2))

	b := New[W1024]()
	d := bbs.New(1024)

	for range 10_000 {
		i := uint(prng.IntN(1024))
		switch prng.IntN(3) {
		case 0:
			_ = b.Set(i)
			d.Set(i)
		case 1:
			_ = b.Clear(i)
			d.Clear(i)
		case 2:
			_ = b.Flip(i)
			d.Flip(i)
		}
	}

	if uint(b.Count()) != d.Count() {
		t.Fatalf("Count, want %d, got %d", d.Count(), b.Count())
	}

	for i := range uint(1024) {
		got, _ := b.Test(i)
		if got != d.Test(i) {
			t.Fatalf("Test(%d), want %v, got %v", i, d.Test(i), got)
		}
	}

	c := randomBitset[W1024](prng)
	dc := c.ToDynamic()

	if b.And(c).Count() != int(d.IntersectionCardinality(dc)) {
		t.Error("And, cardinality mismatch")
	}
	if b.Or(c).Count() != int(d.UnionCardinality(dc)) {
		t.Error("Or, cardinality mismatch")
	}
	if b.Xor(c).Count() != int(d.SymmetricDifferenceCardinality(dc)) {
		t.Error("Xor, cardinality mismatch")
	}
	if b.AndNot(c).Count() != int(d.DifferenceCardinality(dc)) {
		t.Error("AndNot, cardinality mismatch")
	}
}
