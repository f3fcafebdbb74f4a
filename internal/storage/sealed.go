package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32
)

var ErrCorruptSealedFile = errors.New("sealed storage file is corrupt or the secret is wrong")

// sealCodec encrypts the document with NaCl secretbox. Layout on disk:
// salt(16) | nonce(24) | box. The key is derived from the secret with scrypt
// and a per-write salt.
type sealCodec struct {
	secret []byte
}

// NewSealedFile is NewFile with the document encrypted at rest.
func NewSealedFile(path, secret string) (Storage, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &file{path: path, codec: sealCodec{secret: []byte(secret)}}, nil
}

func (c sealCodec) key(salt []byte) (*[keySize]byte, error) {
	derived, err := scrypt.Key(c.secret, salt, 1<<15, 8, 1, keySize)
	if err != nil {
		return nil, fmt.Errorf("derive storage key: %w", err)
	}
	var k [keySize]byte
	copy(k[:], derived)
	return &k, nil
}

func (c sealCodec) encode(plain []byte) ([]byte, error) {
	header := make([]byte, saltSize+nonceSize)
	if _, err := io.ReadFull(rand.Reader, header); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}

	k, err := c.key(header[:saltSize])
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], header[saltSize:])

	return secretbox.Seal(header, plain, &nonce, k), nil
}

func (c sealCodec) decode(stored []byte) ([]byte, error) {
	if len(stored) < saltSize+nonceSize+secretbox.Overhead {
		return nil, ErrCorruptSealedFile
	}

	k, err := c.key(stored[:saltSize])
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], stored[saltSize:saltSize+nonceSize])

	plain, ok := secretbox.Open(nil, stored[saltSize+nonceSize:], &nonce, k)
	if !ok {
		return nil, ErrCorruptSealedFile
	}
	return plain, nil
}
