package main

import "github.com/arloliu/blmap/cmd/blmap/cmd"

func main() {
	cmd.Execute()
}
