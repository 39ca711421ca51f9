package model

import "github.com/golang-jwt/jwt"

type ReqLogin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type ReqRegister struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required"`
	FullName string `form:"fullName" json:"fullName" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// UserClaims rides inside both token classes. Issuer carries the user's
// identifier in hex form.
type UserClaims struct {
	jwt.StandardClaims
	UserName string `json:"username"`
}
