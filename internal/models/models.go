package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DateLayout is the timestamp format stored with requests and alerts.
const DateLayout = "2006-01-02 15:04:05"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Username     string `gorm:"unique;not null"          json:"username"`
	Email        string `gorm:"not null"                 json:"email"`
	PasswordHash string `gorm:"not null"                 json:"password"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Service struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Name        string `gorm:"not null;index"           json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Request struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"not null;index"           json:"username"`
	Service  string `gorm:"not null"                 json:"service"`
	Link     string `gorm:"not null"                 json:"link"`
	Quantity int    `gorm:"not null"                 json:"quantity"`
	Notes    string `json:"notes,omitempty"`
	Date     string `gorm:"not null"                 json:"date"`
}

type Alert struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Message string `gorm:"not null"                 json:"message"`
	Date    string `gorm:"not null"                 json:"date"`
}

// UsersDocument is the on-disk shape of the users store.
type UsersDocument struct {
	Users []User `json:"users"`
}

// AppDocument is the on-disk shape of the application store.
type AppDocument struct {
	Services []Service `json:"services"`
	Requests []Request `json:"requests"`
	Alerts   []Alert   `json:"alerts"`
}
