package constants

import "time"

const (
	CacheKeyAuthToken = "recipe:authtoken:%s"
)

const (
	CacheExpireAuthToken = 1 * time.Hour
)
