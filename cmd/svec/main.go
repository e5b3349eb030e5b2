package main

import "github.com/kassahun-b/svec/cmd"

func main() {
	cmd.Execute()
}
