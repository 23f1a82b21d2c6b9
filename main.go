package main

import "github.com/averykhoo/sudoku-compression/cmd"

func main() {
	cmd.Execute()
}
