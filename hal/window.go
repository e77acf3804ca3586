package hal

// addrWindow tracks the write cursor inside a panel address window and turns
// arbitrary-length pixel pushes into rectangle blits.
type addrWindow struct {
	x, y, w, h int16
	cx, cy     int16
}

func (a *addrWindow) set(x, y, w, h int16) {
	*a = addrWindow{x: x, y: y, w: w, h: h}
}

// push writes pixels at the cursor. Pixels past the end of the window are dropped.
func (a *addrWindow) push(pixels []uint16, blit func(x, y, w, h int16, data []uint16) error) error {
	for len(pixels) > 0 {
		if a.w <= 0 || a.h <= 0 || a.cy >= a.h {
			return nil
		}

		if a.cx != 0 {
			n := int(a.w - a.cx)
			if n > len(pixels) {
				n = len(pixels)
			}
			if err := blit(a.x+a.cx, a.y+a.cy, int16(n), 1, pixels[:n]); err != nil {
				return err
			}
			a.advance(n)
			pixels = pixels[n:]
			continue
		}

		rows := len(pixels) / int(a.w)
		if rows > int(a.h-a.cy) {
			rows = int(a.h - a.cy)
		}
		if rows > 0 {
			n := rows * int(a.w)
			if err := blit(a.x, a.y+a.cy, a.w, int16(rows), pixels[:n]); err != nil {
				return err
			}
			a.cy += int16(rows)
			pixels = pixels[n:]
			continue
		}

		n := len(pixels)
		if err := blit(a.x, a.y+a.cy, int16(n), 1, pixels); err != nil {
			return err
		}
		a.advance(n)
		pixels = nil
	}
	return nil
}

func (a *addrWindow) advance(n int) {
	a.cx += int16(n)
	if a.cx >= a.w {
		a.cx = 0
		a.cy++
	}
}

// flipRows redraws a band of h rows at y on a panel of height ph with rows
// flipped vertically. Each row becomes its own one-row blit.
func flipRows(x, y, w, h, ph int16, data []uint16, blit func(x, y, w, h int16, data []uint16) error) error {
	for r := int16(0); r < h; r++ {
		row := data[int(r)*int(w) : int(r+1)*int(w)]
		if err := blit(x, ph-1-(y+r), w, 1, row); err != nil {
			return err
		}
	}
	return nil
}
