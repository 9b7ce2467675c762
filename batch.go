package glint

// batchKey groups sprites that can be submitted in a single draw call.
// Sprites sharing a key share every uniform, including the sheet sampler.
type batchKey struct {
	layer  int32
	shader ShaderID
	sheet  SpriteSheetID
}

func spriteBatchKey(s *Sprite) batchKey {
	return batchKey{layer: s.layer, shader: s.shader, sheet: s.sheet}
}

// spriteLessOrEqual orders sprites by layer, then shader, then sheet, then
// id. Lower layers draw first; the rest keeps batches contiguous.
func spriteLessOrEqual(a, b *Sprite) bool {
	if a.layer != b.layer {
		return a.layer < b.layer
	}
	if a.shader != b.shader {
		return a.shader < b.shader
	}
	if a.sheet != b.sheet {
		return a.sheet < b.sheet
	}
	return a.id <= b.id
}

// nextBatch returns the end of the run of sprites starting at i that share
// sprites[i]'s batch key.
func nextBatch(sprites []Sprite, i int) int {
	key := spriteBatchKey(&sprites[i])
	j := i + 1
	for j < len(sprites) && spriteBatchKey(&sprites[j]) == key {
		j++
	}
	return j
}

// countBatches counts contiguous groups of sprites sharing a batch key.
func countBatches(sprites []Sprite) int {
	n := 0
	for i := 0; i < len(sprites); i = nextBatch(sprites, i) {
		n++
	}
	return n
}

// mergeSort sorts sprites in place using buf as scratch space and returns
// the possibly grown scratch buffer. Bottom-up merge sort: no allocations once
// buf reaches its high-water mark.
func mergeSort(sprites, buf []Sprite) []Sprite {
	n := len(sprites)
	if n <= 1 {
		return buf
	}
	if cap(buf) < n {
		buf = make([]Sprite, n)
	}
	buf = buf[:n]

	a, b := sprites, buf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(sprites, buf)
	}
	return buf
}

func mergeRun(src, dst []Sprite, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if spriteLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
