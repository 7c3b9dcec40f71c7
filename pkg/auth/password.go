// Package auth はユーザー認証情報（パスワード）のハッシュ化と照合を行う。
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen は受け付けるパスワードの最小長
const MinPasswordLen = 8

// ErrPasswordTooShort はパスワードが MinPasswordLen 未満の場合に返る
var ErrPasswordTooShort = errors.New("password too short")

// ErrPasswordMismatch はハッシュとパスワードが一致しない場合に返る
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword は bcrypt でパスワードをハッシュ化する
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLen {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword はハッシュとパスワードを照合する
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
