package main

import (
	"time"

	"github.com/clipseek/clipseek/cmd"
	"github.com/clipseek/clipseek/config"
	"github.com/clipseek/clipseek/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go log.Prune(time.Now())

	cmd.Execute()
}
