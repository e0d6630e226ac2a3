package main

import (
	"github.com/matthieukhl/crmd/internal/cmd"
)

func main() {
	cmd.Execute()
}
