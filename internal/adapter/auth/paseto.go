package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/ypbookstore/internal/adapter/config"
	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/MikeRez0/ypbookstore/internal/core/port"
)

const payloadClaim = "payload"

type PasetoToken struct {
	parser paseto.Parser
	key    paseto.V4SymmetricKey
	ttl    time.Duration
}

// New uses the configured shared key, or a random one when none is set.
func New(conf *config.Auth) (*PasetoToken, error) {
	key := paseto.NewV4SymmetricKey()
	if conf.SymmetricKey != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.SymmetricKey)
		if err != nil {
			return nil, fmt.Errorf("error parsing paseto key: %w", err)
		}
	}

	ttl := conf.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &PasetoToken{
		parser: paseto.NewParser(),
		key:    key,
		ttl:    ttl,
	}, nil
}

func (p *PasetoToken) CreateToken(userID uint64) (string, error) {
	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	err := token.Set(payloadClaim, port.TokenPayload{UserID: userID})
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
