// Package main is the entry point for huestep.
package main

import (
	"github.com/huestep/huestep/cmd"
	"github.com/huestep/huestep/config"
	"github.com/huestep/huestep/internal/cache"
	"github.com/huestep/huestep/log"
	"github.com/huestep/huestep/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage(where.Exports(), where.Temp())

	cmd.Execute()
}
