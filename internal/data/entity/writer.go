package entity

type Writer struct {
	BaseSimple
	Name      string  `db:"name"`
	Bio       *string `db:"bio"`
	ImagePath *string `db:"image_path"`
}
