package entity

type User struct {
	Username  string `db:"username"`
	Name      string `db:"name"`
	AvatarURL string `db:"avatar_url"`
}
