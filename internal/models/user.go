// Package models содержит доменные структуры сервиса обмена навыками,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не отдается наружу: перед возвратом из сервисов
// запись проходит через Sanitize.
type User struct {
	ID            string   `json:"id"`                     // Уникальный идентификатор пользователя
	Name          string   `json:"name"`                   // Отображаемое имя
	Email         string   `json:"email"`                  // Электронная почта (уникальная)
	PasswordHash  string   `json:"passwordHash,omitempty"` // bcrypt-хэш пароля
	Avatar        *string  `json:"avatar"`                 // Ссылка на аватар, может отсутствовать
	Location      string   `json:"location,omitempty"`     // Город или регион
	Bio           string   `json:"bio,omitempty"`          // Краткое описание профиля
	Availability  []string `json:"availability"`           // Временные слоты, когда пользователь доступен
	SkillsOffered []string `json:"skillsOffered"`          // Навыки, которые пользователь предлагает
	SkillsWanted  []string `json:"skillsWanted"`           // Навыки, которые пользователь хочет получить
	Role          string   `json:"role"`                   // Роль: user или admin
}

// Sanitize возвращает копию пользователя без учетных данных.
func (u User) Sanitize() User {
	u.PasswordHash = ""
	return u
}

// RegisterRequest используется для приёма данных регистрации из JSON-запроса.
type RegisterRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=100"`
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=6"`
	Location      string   `json:"location"`
	Bio           string   `json:"bio"`
	Availability  []string `json:"availability"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
}

// LoginRequest используется для приёма учетных данных из JSON-запроса.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest описывает частичное обновление профиля.
// Поля-указатели позволяют отличить «не передано» от «очистить»;
// списки заменяются целиком, без слияния.
type UpdateProfileRequest struct {
	Name          *string   `json:"name,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	Availability  *[]string `json:"availability,omitempty"`
	SkillsOffered *[]string `json:"skillsOffered,omitempty"`
	SkillsWanted  *[]string `json:"skillsWanted,omitempty"`
}

// AuthResult результат успешной регистрации или входа.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
