package scanner

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/LachsProducktions/mediascan/pkg/ratelimit"
	"github.com/LachsProducktions/mediascan/pkg/storage"
)

// hashBlockSize is the fixed read size for streaming hashing
const hashBlockSize = 64 * 1024

// hashFile computes the SHA-256 digest of the full file content using
// fixed-size block reads, optionally rate limited.
func hashFile(ctx context.Context, backend storage.Backend, path string, limiter *ratelimit.Limiter) (string, error) {
	rc, err := backend.Read(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var reader io.Reader = rc
	if limiter != nil {
		reader = ratelimit.NewReader(ctx, rc, limiter)
	}

	hasher := sha256.New()
	buffer := make([]byte, hashBlockSize)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := reader.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
