package main

import (
	"github.com/gobom/cyclonedx/cmd"
)

func main() {
	cmd.Execute()
}
