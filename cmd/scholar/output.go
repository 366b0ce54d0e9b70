package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Exit codes for scripting.
const (
	ExitOK    = 0
	ExitError = 1
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
