package compose

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/rios0rios0/zkvtools/internal/domain/repositories"
)

const nodeKeySize = 32

// KeyRepository generates node keys from a random source.
type KeyRepository struct {
	source io.Reader
}

// NewKeyRepository creates a key repository backed by crypto/rand.
func NewKeyRepository() repositories.KeyRepository {
	return NewKeyRepositoryWithSource(rand.Reader)
}

// NewKeyRepositoryWithSource creates a key repository reading from source.
func NewKeyRepositoryWithSource(source io.Reader) repositories.KeyRepository {
	return &KeyRepository{source: source}
}

func (r *KeyRepository) NodeKey() (string, error) {
	key := make([]byte, nodeKeySize)
	if _, err := io.ReadFull(r.source, key); err != nil {
		return "", fmt.Errorf("failed to generate node key: %w", err)
	}
	return hex.EncodeToString(key), nil
}
