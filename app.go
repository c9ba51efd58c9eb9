package main

import "github.com/masmgr/gitrevno/cmd"

func main() {
	cmd.Run()
}
