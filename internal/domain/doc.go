// Package domain holds the to-do entry entity and the validation errors raised
// while turning request input into domain values. It has no knowledge of
// storage or HTTP.
package domain
