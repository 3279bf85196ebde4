package models

type Table struct {
	Area *string `form:"area"`
	Name *string `form:"name" validate:"required"`
}
