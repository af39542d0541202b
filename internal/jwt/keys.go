package jwt

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

const (
	AlgHS256 = "HS256"
	AlgEdDSA = "EdDSA"
)

// KeySet mantiene la única clave de firma del servicio. Es de solo lectura
// una vez construida y se comparte entre requests.
type KeySet struct {
	Method    jwtv5.SigningMethod
	KID       string // vacío para HS256
	signKey   any
	verifyKey any
}

// Alg devuelve el nombre del algoritmo ("HS256" | "EdDSA").
func (k *KeySet) Alg() string { return k.Method.Alg() }

// NewHMACKeySet arma un KeySet HS256 con un secreto compartido.
func NewHMACKeySet(secret []byte) (*KeySet, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt: empty hmac secret")
	}
	s := make([]byte, len(secret))
	copy(s, secret)
	return &KeySet{Method: jwtv5.SigningMethodHS256, signKey: s, verifyKey: s}, nil
}

// NewEd25519KeySet arma un KeySet EdDSA a partir de una seed de 32 bytes.
// Si kid es vacío se deriva de la clave pública.
func NewEd25519KeySet(seed []byte, kid string) (*KeySet, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("jwt: ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	if kid == "" {
		kid = deriveKID(pub)
	}
	return &KeySet{Method: jwtv5.SigningMethodEdDSA, KID: kid, signKey: priv, verifyKey: pub}, nil
}

// NewDevEd25519 genera una clave Ed25519 en memoria (tokens no sobreviven reinicios).
func NewDevEd25519(kid string) (*KeySet, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return NewEd25519KeySet(seed, kid)
}

// NewKeySet resuelve el KeySet según el algoritmo configurado.
// Para EdDSA, seedB64 vacío genera una clave efímera.
func NewKeySet(alg, secret, seedB64, kid string) (*KeySet, error) {
	switch alg {
	case "", AlgHS256:
		return NewHMACKeySet([]byte(secret))
	case AlgEdDSA:
		if seedB64 == "" {
			return NewDevEd25519(kid)
		}
		seed, err := base64.StdEncoding.DecodeString(seedB64)
		if err != nil {
			return nil, fmt.Errorf("jwt: decode ed25519 seed: %w", err)
		}
		return NewEd25519KeySet(seed, kid)
	default:
		return nil, fmt.Errorf("jwt: unsupported alg %q", alg)
	}
}

func deriveKID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return base64.RawURLEncoding.EncodeToString(sum[:8])
}
