package main

import (
	"github.com/violintec/common-login/cmd"
)

func main() {
	cmd.Execute()
}
