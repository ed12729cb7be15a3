// Package autherr содержит сентинельные ошибки подсистемы аутентификации.
// Обработчики сопоставляют их через errors.Is и отдают клиенту только
// обобщённый вид ошибки, без внутренних деталей.
package autherr

import "errors"

var (
	// ErrInvalidCredentials : неверный email или пароль.
	// Намеренно одна ошибка на оба случая, чтобы нельзя было перебором
	// выяснить, существует ли пользователь.
	ErrInvalidCredentials = errors.New("неверный email или пароль")

	// ErrTokenMalformed : токен не удалось разобрать
	ErrTokenMalformed = errors.New("токен имеет неверный формат")

	// ErrSignatureInvalid : подпись токена не совпадает
	ErrSignatureInvalid = errors.New("невалидная подпись токена")

	// ErrTokenExpired : срок действия токена истёк
	ErrTokenExpired = errors.New("срок действия токена истёк")

	// ErrTokenRevoked : refresh-токен уже был использован или отозван
	ErrTokenRevoked = errors.New("токен отозван")

	// ErrStoreUnavailable : ошибка I/O хранилища отозванных токенов.
	// Никогда не интерпретируется как "токен не отозван".
	ErrStoreUnavailable = errors.New("хранилище токенов недоступно")

	// ErrUserExists : пользователь с таким email уже зарегистрирован
	ErrUserExists = errors.New("пользователь уже существует")

	// ErrUserNotFound : пользователь не найден
	ErrUserNotFound = errors.New("пользователь не найден")
)
