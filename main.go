package main

import "github.com/Mohsinsiddi/paramgen/cmd"

func main() {
	cmd.Execute()
}
