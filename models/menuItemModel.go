package models

// MenuItem arrives as multipart form data so an image can ride along.
// CategoryId is a soft reference to a Category document; it is never
// checked for existence.
type MenuItem struct {
	Name         *string  `form:"name" validate:"required"`
	Description  *string  `form:"description"`
	Price        *string  `form:"price" validate:"required"`
	CategoryID   *string  `form:"categoryId"`
	DietaryFlags []string `form:"dietaryFlags"`
}
