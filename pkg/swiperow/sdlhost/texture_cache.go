package sdlhost

import (
	"image"
	"unsafe"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 32

// TextureCache keeps rendered label and icon textures, evicting the least
// recently used when full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // tracks use order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture && old != nil {
			old.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.order)
}

// Text returns a texture for text rendered with font, creating it on first use.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, error) {
	key := labelKey(text, color)
	if texture := c.Get(key); texture != nil {
		return texture, nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, swiperow.NewInfrastructureError("render_text", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, swiperow.NewInfrastructureError("create_texture", err)
	}
	c.Set(key, texture)
	return texture, nil
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if texture != nil {
			texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

func labelKey(text string, color sdl.Color) string {
	return string([]byte{'t', color.R, color.G, color.B, color.A, ':'}) + text
}

// TextureFromRGBA uploads a rasterized image, such as an action icon, as a blended texture.
func TextureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, swiperow.NewInfrastructureError("create_texture", errEmptyImage)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		32,
		int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, swiperow.NewInfrastructureError("create_surface", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, swiperow.NewInfrastructureError("create_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
