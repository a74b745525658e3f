// Package main is the entry point for the reckon CLI.
package main

import "reckon.dev/pkg/reckon/cmd"

func main() {
	cmd.Execute()
}
