package image

import (
	"bytes"
	"crypto/sha256"
	"image"

	"github.com/gogpu/teapot/internal/cache"
)

// decodeCacheSize holds two full cube maps.
const decodeCacheSize = 12

// decodeKey is the SHA-256 digest of the encoded bytes.
type decodeKey [sha256.Size]byte

// decodeEntry keeps the encoded bytes next to the image so a hit is only
// served for identical input.
type decodeEntry struct {
	data []byte
	img  *image.RGBA
}

var decoded = cache.New[decodeKey, decodeEntry](decodeCacheSize)

// keyOf is a variable so tests can force key collisions.
var keyOf = func(data []byte) decodeKey {
	return sha256.Sum256(data)
}

// DecodeCached is Decode with the result kept in a small LRU cache, so
// rebuilding a cube map from the same bytes skips decoding. The returned
// image is shared and must not be modified.
func DecodeCached(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	key := keyOf(data)
	load := func() (decodeEntry, error) {
		img, err := Decode(data)
		if err != nil {
			return decodeEntry{}, err
		}
		return decodeEntry{data: bytes.Clone(data), img: img}, nil
	}
	e, err := decoded.GetOrLoad(key, load)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(e.data, data) {
		// Same key, different bytes: replace the entry.
		if e, err = load(); err != nil {
			return nil, err
		}
		decoded.Set(key, e)
	}
	return e.img, nil
}

// DecodeCacheStats reports the decode cache counters.
func DecodeCacheStats() cache.Stats {
	return decoded.Stats()
}
