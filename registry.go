package glint

import "sort"

// spriteRegistry owns the live sprites and issues their ids. Ids start at 1
// and are never reused.
type spriteRegistry struct {
	last    SpriteID
	sprites map[SpriteID]*Sprite
}

func newSpriteRegistry() *spriteRegistry {
	return &spriteRegistry{sprites: make(map[SpriteID]*Sprite)}
}

func (r *spriteRegistry) add(s Sprite) SpriteID {
	r.last++
	s.id = r.last
	r.sprites[s.id] = &s
	return s.id
}

func (r *spriteRegistry) get(id SpriteID) (*Sprite, bool) {
	s, ok := r.sprites[id]
	return s, ok
}

func (r *spriteRegistry) remove(id SpriteID) bool {
	if _, ok := r.sprites[id]; !ok {
		return false
	}
	delete(r.sprites, id)
	return true
}

func (r *spriteRegistry) len() int { return len(r.sprites) }

// ids returns the live ids in ascending order.
func (r *spriteRegistry) ids() []SpriteID {
	out := make([]SpriteID, 0, len(r.sprites))
	for id := range r.sprites {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// shaderRegistry maps program handles to programs.
type shaderRegistry struct {
	programs map[ShaderID]*ShaderProgram
}

func newShaderRegistry() *shaderRegistry {
	return &shaderRegistry{programs: make(map[ShaderID]*ShaderProgram)}
}

func (r *shaderRegistry) add(p *ShaderProgram) ShaderID {
	id := p.ID()
	r.programs[id] = p
	return id
}

func (r *shaderRegistry) get(id ShaderID) (*ShaderProgram, bool) {
	p, ok := r.programs[id]
	return p, ok
}

func (r *shaderRegistry) remove(id ShaderID) (*ShaderProgram, bool) {
	p, ok := r.programs[id]
	if ok {
		delete(r.programs, id)
	}
	return p, ok
}

func (r *shaderRegistry) ids() []ShaderID {
	out := make([]ShaderID, 0, len(r.programs))
	for id := range r.programs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
