/*
	Copyright 2023 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/paceviz/cmd"

func main() {
	cmd.Execute()
}
