// Package models contains the GORM database models corresponding to the
// domain entities, kept separate so persistence concerns stay out of the
// domain layer.
package models
