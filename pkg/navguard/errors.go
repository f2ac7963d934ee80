package navguard

import "errors"

var (
	// ErrInvalidRouteTable indicates the route table could not be parsed
	ErrInvalidRouteTable = errors.New("navguard.invalid_route_table")

	// ErrUnknownRoute indicates a path with no registered route metadata
	ErrUnknownRoute = errors.New("navguard.unknown_route")
)
