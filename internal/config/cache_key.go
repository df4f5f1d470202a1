package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ProfileSessionKey returns the cache key holding the active session JTI
// for a signed-in profile.
func (r *CacheKeyStruct) ProfileSessionKey(profileID string) string {
	return fmt.Sprintf("session:%s", profileID)
}

var CacheKey = NewCacheKeyStruct()
