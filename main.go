package main

import "agriexplorer/cmd"

func main() {
	cmd.Execute()
}
