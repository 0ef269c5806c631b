package main

import "github.com/sriglab/sriggrid/cmd/sriggrid/cmd"

func main() {
	cmd.Execute()
}
