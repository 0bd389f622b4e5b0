// Package cache provides a small generic LRU cache.
//
//	c := cache.New[uint64, *image.RGBA](32)
//	img, err := c.GetOrLoad(key, func() (*image.RGBA, error) {
//		return decode(data)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
