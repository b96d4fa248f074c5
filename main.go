package main

import "github.com/arborlab/arbor/cmd"

func main() {
	cmd.Execute()
}
