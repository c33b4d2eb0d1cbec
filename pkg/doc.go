// Package pkg provides the core libraries for cinedex, a client for a movies
// and series streaming catalog API.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [catalog] - Typed API client (lists, details, streams, filters, search)
//  2. [cache] - Response caches (memory with TTL, Redis, null)
//  3. [toast] - Transient user notifications with timed expiry
//  4. [errors] - Coded errors for presenting failures
//  5. [observability] - Cache and HTTP instrumentation hooks
//  6. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The typical data flow through cinedex:
//
//	CLI command / local server request
//	         ↓
//	    [catalog] Client (URL construction)
//	         ↓
//	    [cache] lookup ── hit ──→ decoded result
//	         ↓ miss
//	    upstream HTTP GET
//	         ↓
//	    decode, store, return
//
// Failures surface as wrapped errors that [errors.Classify] maps to codes;
// the CLI shows them through a [toast] store.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/cinedex/pkg/catalog"
//	)
//
//	client := catalog.NewClient(catalog.Options{BaseURL: "https://api.example.com"})
//	movies, err := client.ListMovies(ctx, catalog.Page(2))
//
// [catalog]: github.com/matzehuels/cinedex/pkg/catalog
// [cache]: github.com/matzehuels/cinedex/pkg/cache
// [toast]: github.com/matzehuels/cinedex/pkg/toast
// [errors]: github.com/matzehuels/cinedex/pkg/errors
// [errors.Classify]: github.com/matzehuels/cinedex/pkg/errors.Classify
// [observability]: github.com/matzehuels/cinedex/pkg/observability
// [buildinfo]: github.com/matzehuels/cinedex/pkg/buildinfo
package pkg
