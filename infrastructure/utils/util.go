package utils

import (
	"crypto/md5"
	"fmt"
	"time"

	"vidtube/domain/apperror"
	"vidtube/infrastructure/logger"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

func HashPassword(password string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(password)))
}

// ParseObjectID gates every identifier before it reaches the store. A
// malformed hex string is a client error, never a lookup.
func ParseObjectID(hex, name string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, apperror.Validation(fmt.Sprintf("Invalid %s", name))
	}
	return id, nil
}
