package hal

// unitQuad covers clip space [-1,1]² with two triangles.
var unitQuad = [6][2]float32{
	{-1, -1}, {1, -1}, {-1, 1},
	{-1, 1}, {1, -1}, {1, 1},
}

var quadIndices = []uint16{0, 1, 2, 3, 4, 5}

// quadToScreen maps the unit quad onto a w×h target with a top-left origin.
func quadToScreen(w, h float32) [6][2]float32 {
	var out [6][2]float32
	for i, v := range unitQuad {
		out[i] = [2]float32{
			(v[0] + 1) * 0.5 * w,
			(1 - v[1]) * 0.5 * h,
		}
	}
	return out
}
