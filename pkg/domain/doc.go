// Package domain contains the entities of the service: postal codes with
// their boundary polygons, charging stations and users. Constructors enforce
// every field invariant before an entity exists, so code holding a value of
// these types can rely on it being valid. The package is free of storage and
// transport concerns.
package domain
