package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher отвечает за хранение паролей пользователей на сервере.
// Пароль никогда не сохраняется в открытом виде: в базу попадает только хеш.
type PasswordHasher interface {
	// Hash возвращает хеш пароля с солью, пригодный для хранения.
	Hash(password string) (string, error)

	// Compare сравнивает пароль с сохранённым хешем.
	// Возвращает ErrPasswordMismatch, если пароль не подходит.
	Compare(hash, password string) error
}
