package domain

import "slices"

// Categories lists the campaign categories a creator may choose from.
var Categories = []string{
	"Healthcare",
	"Education",
	"Environment",
	"Water and Sanitation",
	"Emergency Relief",
	"Community Development",
	"Other",
}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	return slices.Contains(Categories, c)
}
