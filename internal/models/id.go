package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates record IDs like "bk_lxp3k2a_9f3c21d4": a short type
// prefix, the creation instant in base36 milliseconds, and a random
// suffix. Uniqueness is probabilistic; there is no collision scan.
func NewID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	rnd := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return prefix + "_" + ts + "_" + rnd
}
