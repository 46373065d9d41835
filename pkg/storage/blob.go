// Package storage keeps profile pictures outside the relational store.
//
// Blob stores have no transactional relationship with PostgreSQL. Callers
// coordinate the two with compensating actions: stage the new blob first,
// and only delete a blob once no committed row can reference it.
package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidRef is returned for references that could escape the store.
var ErrInvalidRef = errors.New("invalid asset reference")

// Payload is an uploaded binary asset held in memory.
type Payload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Ext returns the lowercased filename extension including the dot.
func (p Payload) Ext() string {
	return strings.ToLower(filepath.Ext(p.Filename))
}

// BlobStore stores payloads and deletes them by reference.
// Delete must treat a missing reference as success.
type BlobStore interface {
	Put(ctx context.Context, p Payload) (string, error)
	Delete(ctx context.Context, ref string) error
}

// CheckRef rejects references that are not a single path element.
func CheckRef(ref string) error {
	if ref == "" || ref == "." || ref == ".." ||
		strings.ContainsAny(ref, `/\`) || strings.Contains(ref, "..") {
		return ErrInvalidRef
	}
	return nil
}
