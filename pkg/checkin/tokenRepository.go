package checkin

import (
	"fmt"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/go-redis/redis"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewTokenRepository(client *redis.Client) *tokenRepository {
	return &tokenRepository{client}
}

// tokenRepository keeps the current check-in token per event in redis. Only
// one token is current at a time; storing a new one supersedes the previous.
type tokenRepository struct {
	client *redis.Client
}

func sessionKey(eventID uint) string {
	return fmt.Sprintf("checkin-session-%d", eventID)
}

func (t tokenRepository) SetCurrentToken(eventID uint, token string, issuedAt time.Time) error {
	fields := map[string]interface{}{
		"token":    token,
		"issuedAt": issuedAt.Format(time.RFC3339),
	}
	return t.client.HMSet(sessionKey(eventID), fields).Err()
}

func (t tokenRepository) GetCurrentToken(eventID uint) (string, time.Time, error) {
	fields, err := t.client.HGetAll(sessionKey(eventID)).Result()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to get check-in session for event %d: %v", eventID, err)
	}

	token, ok := fields["token"]
	if !ok {
		return "", time.Time{}, errdef.NewNotFound("no check-in session for event with id %d", eventID)
	}

	issuedAt, err := time.Parse(time.RFC3339, fields["issuedAt"])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to parse issuedAt of check-in session for event %d: %v", eventID, err)
	}

	return token, issuedAt, nil
}

func (t tokenRepository) RemoveSession(eventID uint) error {
	return t.client.Del(sessionKey(eventID)).Err()
}
