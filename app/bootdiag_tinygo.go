//go:build tinygo && bootdebug

package app

import (
	"fmt"
	"machine"
	"runtime"
	"sync/atomic"
	"time"

	"planespotter/hal"
)

var bootStep atomic.Value

func bootDiagSetStep(msg string) { bootStep.Store(msg) }

// bootDiagStart reports the last boot step and heap usage twice a second, on
// the HAL logger and on USB CDC, so a hang during bring-up can be located
// without a UART adapter.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()

	go func() {
		var ms runtime.MemStats
		for {
			step, _ := bootStep.Load().(string)
			if step == "" {
				step = "<none>"
			}
			runtime.ReadMemStats(&ms)
			line := fmt.Sprintf("bootdiag: %s heap=%d/%d", step, ms.HeapInuse, ms.HeapSys)

			if l != nil {
				l.WriteLineString(line)
			}
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}
			time.Sleep(500 * time.Millisecond)
		}
	}()
}
