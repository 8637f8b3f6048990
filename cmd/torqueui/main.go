package main

import "github.com/goliatone/go-torqueui/internal/cli"

func main() {
	cli.Execute()
}
