// Package store persists planned settlements.
package store

import "github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"

// ResultWriter is the interface any result backend must satisfy.
type ResultWriter interface {
	Write(records []settlement.Record) error
	Close() error
}
