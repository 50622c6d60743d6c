package intelligence

import (
	"strconv"
	"strings"
)

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
