package discord

import "github.com/samber/mo"

// entity.go contains the merge primitives shared by every mapped resource.

// Entity is a resource created from a payload and updated in place by later
// payloads. ApplyPayload only overwrites fields the payload carried.
type Entity[P any] interface {
	Snowflake() Snowflake
	ApplyPayload(payload P)
}

// overlay copies *src into dst when the payload carried the field.
// An explicit null decodes to a nil pointer and is ignored like omission.
func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// overlayOption is overlay for optional entity attributes.
func overlayOption[T any](dst *mo.Option[T], src *T) {
	if src != nil {
		*dst = mo.Some(*src)
	}
}

// overlayNullable applies a field whose explicit null clears the attribute.
func overlayNullable[T any](dst *mo.Option[T], src Nullable[T]) {
	switch {
	case !src.Set:
	case src.Null:
		*dst = mo.None[T]()
	default:
		*dst = mo.Some(src.Value)
	}
}

// overlayIdentity assigns an identifier once. Later payloads can not move an
// entity to a different identity.
func overlayIdentity[T ~int64](dst *T, src *T) {
	if src != nil && *dst == 0 {
		*dst = *src
	}
}

// optionPtr converts an optional attribute back to its wire form.
func optionPtr[T any](o mo.Option[T]) *T {
	if value, ok := o.Get(); ok {
		return &value
	}

	return nil
}

// optionNullable converts an optional attribute to a field that is always sent.
func optionNullable[T any](o mo.Option[T]) Nullable[T] {
	if value, ok := o.Get(); ok {
		return NewNullable(value)
	}

	return Null[T]()
}

func ptr[T any](value T) *T {
	return &value
}
