package main

import "github.com/aalvaropc/vilain/internal/cli"

func main() {
	cli.Execute()
}
