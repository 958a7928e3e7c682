package main

import "github.com/Mohsinsiddi/callscope/cmd"

func main() {
	cmd.Execute()
}
