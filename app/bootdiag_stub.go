//go:build !(tinygo && bootdebug)

package app

import "planespotter/hal"

func bootDiagSetStep(string) {}

func bootDiagStart(hal.HAL) {}
