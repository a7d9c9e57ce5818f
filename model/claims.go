package model

import "github.com/golang-jwt/jwt/v5"

type AppClaims struct {
	CustomerID int `json:"customer_id"`
	jwt.RegisteredClaims
}
