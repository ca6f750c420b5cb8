package main

import "github.com/vce-tools/vce-deploy/internal/cmd"

func main() {
	cmd.Execute()
}
