// Package sid encodes and decodes subscriber identifiers. The control plane
// treats a SubscriberID as an opaque, immutable key.
package sid

import (
	"fmt"
	"strings"
)

const imsiPrefix = "IMSI"

// SubscriberID identifies one subscriber session. The zero value is invalid.
type SubscriberID struct {
	id string
}

// Parse accepts the wire form of a subscriber id, e.g. "IMSI12345".
func Parse(s string) (SubscriberID, error) {
	if !strings.HasPrefix(s, imsiPrefix) {
		return SubscriberID{}, fmt.Errorf("subscriber id %q: missing %s prefix", s, imsiPrefix)
	}
	digits := s[len(imsiPrefix):]
	if len(digits) == 0 {
		return SubscriberID{}, fmt.Errorf("subscriber id %q: empty IMSI", s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return SubscriberID{}, fmt.Errorf("subscriber id %q: IMSI must be numeric", s)
		}
	}
	return SubscriberID{id: s}, nil
}

func (s SubscriberID) String() string { return s.id }

// IMSI returns the numeric part of the identifier.
func (s SubscriberID) IMSI() string { return strings.TrimPrefix(s.id, imsiPrefix) }

func (s SubscriberID) IsZero() bool { return s.id == "" }
