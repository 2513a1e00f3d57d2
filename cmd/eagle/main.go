package main

import "github.com/OpenTraceLab/OpenTraceEagle/cmd/eagle/cmd"

func main() {
	cmd.Execute()
}
