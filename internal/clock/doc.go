// Package clock provides the wall-clock deadline the search and relaxation
// drivers poll to honor the resource budget of spec §5, mirroring lvlath's
// context.Context-based cancellation idiom (see flow's Options.Ctx) but
// specialized to a single shared deadline rather than a full Context tree.
package clock
