//go:build tinygo && baremetal

package main

import (
	"planespotter/app"
	"planespotter/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
