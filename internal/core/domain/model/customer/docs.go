// Package customer provides the Customer and Address entities resolved for each
// order. Both are fetched on demand through the order's resource links, never
// cached between orders, and treated as read-only.
package customer
