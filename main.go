package main

import "github.com/theirongolddev/cashflow/cmd"

func main() {
	cmd.Execute()
}
