package security

import "golang.org/x/crypto/bcrypt"

// bcryptCost фиксирован: 12 раундов
const bcryptCost = 12

// HashPassword возвращает bcrypt-хэш пароля.
// Ни пароль, ни хэш никогда не пишутся в лог.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с хэшем.
// Любая внутренняя ошибка трактуется как несовпадение, не как "не знаю".
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
