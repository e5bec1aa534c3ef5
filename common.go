package ber

/*
common.go contains small stdlib-alias helpers used by myriad
components throughout this package.
*/

import (
	"encoding/hex"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa   func(int) string             = strconv.Itoa
	join   func([]string, string) string = strings.Join
	hexstr func([]byte) string          = hex.EncodeToString
)

func fmtUint64(u uint64) string {
	return strconv.FormatUint(u, 10)
}
