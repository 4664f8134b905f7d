package main

import "github.com/jfmyers9/artistfetch/cmd"

func main() {
	cmd.Execute()
}
