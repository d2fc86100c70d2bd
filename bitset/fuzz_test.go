// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("1")
	f.Add("0101")
	f.Add(strings.Repeat("1", 150))
	f.Add("10x")

	f.Fuzz(func(t *testing.T, s string) {
		b, err := Parse[W100](s)
		if err != nil {
			if strings.Trim(s, "01") == "" {
				t.Fatalf("Parse(%q), unexpected error: %v", s, err)
			}
			return
		}

		got := b.String()
		if len(got) != 100 {
			t.Fatalf("String, want 100 chars, got %d", len(got))
		}

		// compare the common suffix, the low bits
		want := s
		if len(want) > 100 {
			want = want[len(want)-100:]
		}
		if !strings.HasSuffix(got, want) {
			t.Fatalf("Parse(%q).String() = %q, suffix mismatch", s, got)
		}

		if c := MustParse[W100](got); !c.Equal(b) {
			t.Fatalf("round trip mismatch for %q", s)
		}
	})
}
