/*
Package ports defines the driven ports (interfaces) for the fingerprint
toolbox built around the hamming library.

These interfaces decouple the index and serving layers from concrete
storage backends, so the same search logic runs against an in-memory map
or a Redis instance.

# Key Interfaces

  - Store: persists named fingerprints and lists them for scanning.
*/
package ports
