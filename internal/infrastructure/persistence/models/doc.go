// Package models contains the GORM persistence models and their conversions
// to and from the domain aggregates. Domain types never carry persistence
// concerns; everything storage-specific lives here.
package models
