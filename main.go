package main

import "github.com/sadopc/staffr/cmd"

func main() {
	cmd.Execute()
}
