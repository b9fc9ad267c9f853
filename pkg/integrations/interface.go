package integrations

import "context"

// Player plays a recitation from a URL or local file path.
type Player interface {
	Play(ctx context.Context, source string) error
}
