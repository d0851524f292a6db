package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "zdef"

// Key generation functions for each entity type

// userKey returns the Redis key for a User (address already lowercased)
func userKey(address string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, address)
}

// scoreKey returns the Redis key for one HighScore record
func scoreKey(id string) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// scoreRankKey returns the Redis key for the ZSET ranking score IDs by points
func scoreRankKey() string {
	return fmt.Sprintf("%s:idx:scores", keyPrefix)
}

// scoreCounterKey returns the Redis key for the score ID counter
func scoreCounterKey() string {
	return fmt.Sprintf("%s:score_seq", keyPrefix)
}

// archiveKey returns the Redis key for a weekly archive
func archiveKey(year, week int) string {
	return fmt.Sprintf("%s:archive:%d:%d", keyPrefix, year, week)
}

// archiveIndexKey returns the Redis key for the ZSET of archives ordered by year/week
func archiveIndexKey() string {
	return fmt.Sprintf("%s:idx:archives", keyPrefix)
}

// configKey returns the Redis key for a system config value
func configKey(key string) string {
	return fmt.Sprintf("%s:config:%s", keyPrefix, key)
}
