package main

import "github.com/danforbes/rp-hal/internal/cli"

func main() {
	cli.Execute()
}
