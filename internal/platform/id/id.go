package id

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"mindmate/internal/platform/clock"
)

// Generator creates opaque identifiers of the form <prefix>_<random>_<millis-base36>.
type Generator interface {
	New(prefix string) string
}

type Prefixed struct {
	Clock clock.Clock
}

func (p Prefixed) New(prefix string) string {
	if prefix == "" {
		prefix = "id"
	}
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return prefix + "_" + random + "_" + strconv.FormatInt(p.now().UnixMilli(), 36)
}

func (p Prefixed) now() time.Time {
	if p.Clock == nil {
		return time.Now().UTC()
	}
	return p.Clock.Now()
}
