package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vidhub/domain/dto"
	"vidhub/domain/model"
	"vidhub/domain/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Auth verifies the bearer token and confirms the subject still exists
// before letting the request through. The user's hex id lands in the gin
// context under "user_id".
func Auth(userRepository repository.IUser, secretKey string) gin.HandlerFunc {
	res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}

	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		auth := strings.Split(authorization, "Bearer ")
		if len(auth) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		userClaims, token, err := getClaim(auth[1], secretKey)
		if err != nil || !token.Valid {
			res.ResponseMessage = reason(err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		userID, err := bson.ObjectIDFromHex(userClaims.Issuer)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		if _, err := userRepository.GetByID(ctx.Request.Context(), userID); err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set("user_id", userClaims.Issuer)
		ctx.Next()
	}
}

func reason(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token:%v", err)
	}
	return "Unauthorized"
}

func getClaim(tokenString, secretKey string) (model.UserClaims, *jwt.Token, error) {
	var userClaims model.UserClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&userClaims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return userClaims, token, err
}
