package kernel

import (
	"strings"

	"shipconfirm/internal/pkg/errs"
)

// LinkKey is the attribute key holding the target of a resource link.
const LinkKey = "@xlink:href"

// Link is an opaque handle to a remote resource, taken from an entity that
// references it. It is resolved against the order-management API, never
// against a local store.
type Link struct {
	href string
}

// NewLink builds a link from its textual target.
func NewLink(href string) (Link, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return Link{}, errs.NewValueIsRequiredError("link")
	}
	return Link{href: href}, nil
}

// ExtractLink returns the link carried by a link-shaped field: a mapping with a
// non-empty LinkKey entry. Any other shape, including a missing field, yields
// false. ExtractLink is pure.
func ExtractLink(raw any) (Link, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Link{}, false
	}
	href, ok := m[LinkKey].(string)
	if !ok {
		return Link{}, false
	}
	link, err := NewLink(href)
	if err != nil {
		return Link{}, false
	}
	return link, true
}

// String returns the link target.
func (l Link) String() string {
	return l.href
}

// IsZero reports whether the link is absent.
func (l Link) IsZero() bool {
	return l.href == ""
}
