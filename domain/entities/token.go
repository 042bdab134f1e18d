package entities

// Token is the correlation token handed to the host at callback
// registration and received back unchanged on every callback. It is opaque
// to the host, compared by identity only, and meaningful only to the
// registration record it was minted for. Zero is never a valid token.
type Token uint64
