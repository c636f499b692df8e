package apperr

// CacheError is the root of the cache layer.
type CacheError struct {
	base
}

func (e *CacheError) Error() string { return e.render("CacheError", "") }
func (e *CacheError) Kind() Kind    { return KindCache }

func NewCache(msg string, cause error) *CacheError {
	return &CacheError{base{Msg: msg, Cause: cause}}
}

// CacheMissError reports an absent cache entry. Readers typically treat it
// as control flow into the backing source, not as a user-visible fault.
type CacheMissError struct {
	base
	CacheKey string
}

func (e *CacheMissError) Error() string { return e.render("CacheMissError", "") }
func (e *CacheMissError) Kind() Kind    { return KindCacheMiss }

func NewCacheMiss(msg, cacheKey string) *CacheMissError {
	return &CacheMissError{base: base{Msg: msg}, CacheKey: cacheKey}
}
