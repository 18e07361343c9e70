package main

import "github.com/notargets/gocpab/cmd"

func main() {
	cmd.Execute()
}
