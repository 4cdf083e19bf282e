package main

import "github.com/hance08/campuspay/cmd"

func main() {
	cmd.Execute()
}
