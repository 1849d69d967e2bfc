package utils

/**
 * This file contains utility functions to format the Redis keys and the
 * RedisJSON sub-paths of the table document. It avoids having to call
 * "fmt.Sprintf(...)" with the same format spec every time, potentially
 * confusing the key format.
 */

import "fmt"

const RootPath = "."
const HasStartedPath = ".hasStarted"

func FormatTableKey(tableId string) string {
	return fmt.Sprintf("tables:%s", tableId)
}

func FormatParticipantPath(userId string) string {
	return fmt.Sprintf(".participants.%s", userId)
}

func FormatParticipantFieldPath(userId string, field string) string {
	return fmt.Sprintf(".participants.%s.%s", userId, field)
}
