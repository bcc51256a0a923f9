package layouts

// CalculateTitle handles the conditional logic for the document title.
func CalculateTitle(title, site string) string {
	if title != "" {
		return title + " - " + site
	}
	return site
}
