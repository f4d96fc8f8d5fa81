package models

// UserProfile представляет участника комнаты.
// UserID стабилен в рамках сессии и переживает переподключения, в отличие от id соединения.
type UserProfile struct {
	UserID      string `json:"userId"`      // UserID идентификатор пользователя сессии
	DisplayName string `json:"displayName"` // DisplayName отображаемое имя
	Color       string `json:"color"`       // Color цвет из палитры комнаты
}

// Palette цвета, которые комната раздает участникам по кругу
var Palette = []string{
	"#0b66ff",
	"#ff4d6d",
	"#1bbc9b",
	"#ff8f3d",
	"#8e44ad",
	"#00bcd4",
	"#ffb300",
}
