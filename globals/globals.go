package globals

import "context"

// Context keys
type ContextKey string

const EmailKey ContextKey = "email"

var Ctx = context.Background()
