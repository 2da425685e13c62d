package util

import (
	"strconv"
)

const PrefixUserId = "tg://user?id="

func UserLink(id int64) string {
	return PrefixUserId + strconv.FormatInt(id, 10)
}
