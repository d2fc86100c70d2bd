// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command eden exercises the eden packages from the shell.
//
//	eden bitset and 1100 1010 --width 8
//	eden vector 1 2 3 4 5 --inline 4 --allocator pool
//	eden traits int '*int' time.Duration --output yaml
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eden:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
