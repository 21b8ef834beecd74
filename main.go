package main

import "github.com/technologicalMayhem/human-date-parser/cli"

func main() {
	cli.Execute()
}
