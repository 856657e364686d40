package entity

type Category struct {
	Slug        string `db:"slug"`
	Description string `db:"description"`
}
