// Package storage persists named collections as serialized blobs in a
// key-value store. Services depend on the Store port; DB (SQLite) and Memory
// are the bundled adapters, with a Postgres adapter in storage/postgres.
package storage
