package redisrepo

import "fmt"

const (
	GLOBAL_FEED_KEY = "feed:global"   // fixed key: the global feed route has no parameters
	USER_CACHE_KEY  = "user-cache:%s" // <userID>
)

func GlobalFeedKey() string {
	return GLOBAL_FEED_KEY
}

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}
