package main

import "krapi/cli"

func main() {
	cli.Execute()
}
