package models

// Catalog values come straight from the campaign's order form.

var Designs = []string{"Diseño 1", "Diseño 2"}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL", "3XL", "4XL", "5XL"}

var PickupPoints = []string{"Crossfit Do-Box", "Crossfit Torredembarra", "Wallapop"}

func ValidDesign(d string) bool { return contains(Designs, d) }

func ValidSize(s string) bool { return contains(Sizes, s) }

func ValidPickupPoint(p string) bool { return contains(PickupPoints, p) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
