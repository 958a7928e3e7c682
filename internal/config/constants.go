package config

import "time"

// ExplorerTimeout bounds a single explorer API request.
const ExplorerTimeout = 12 * time.Second

// MaxWindow caps the report window. Explorer txlist endpoints cap results at
// 10k records per query shape; windows beyond this are better served by a
// dedicated indexer.
const MaxWindow = 30 * 24 * time.Hour
