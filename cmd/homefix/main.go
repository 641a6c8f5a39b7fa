package main

import "github.com/homefix/marketplace-client/internal/cli"

func main() {
	cli.Execute()
}
