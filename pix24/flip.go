package pix24

// FlipHorizontally mirrors every row in place.
func (img *Image) FlipHorizontally() {
	w := img.Width
	for y := 0; y < img.Height; y++ {
		row := img.Pixels[y*w : y*w+w]
		for x := 0; x < w/2; x++ {
			row[x], row[w-1-x] = row[w-1-x], row[x]
		}
	}
}

// FlipVertically swaps rows top to bottom in place.
func (img *Image) FlipVertically() {
	w := img.Width
	for y := 0; y < img.Height/2; y++ {
		top := img.Pixels[y*w : y*w+w]
		bottom := img.Pixels[(img.Height-1-y)*w : (img.Height-y)*w]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}
