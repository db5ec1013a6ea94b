package main

import (
	"github.com/hocinedev/dzshop/app/cmd"
	"github.com/hocinedev/dzshop/app/configs"
)

func main() {
	configs.LoadEnv()
	cmd.RunCli()
}
