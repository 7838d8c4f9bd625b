package main

import "ocai-hub/cli"

func main() {
	cli.Execute()
}
