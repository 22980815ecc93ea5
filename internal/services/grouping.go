package services

import "bar_ops_backend/internal/models"

// GroupTemplatesByCategory partitions templates into per-category
// sections for the daily task board. Known categories appear in fixed
// display order (opening, closing, custom); any other category is
// appended afterwards in first-seen order. Relative order within each
// section matches the input, only categories actually present produce
// a section, and flattening the sections yields exactly the input set.
func GroupTemplatesByCategory(templates []models.TaskTemplate) []models.TemplateGroup {
	byCategory := make(map[string][]models.TaskTemplate)
	var extraOrder []string

	for _, template := range templates {
		if _, seen := byCategory[template.Category]; !seen && !models.IsValidCategory(template.Category) {
			extraOrder = append(extraOrder, template.Category)
		}
		byCategory[template.Category] = append(byCategory[template.Category], template)
	}

	groups := []models.TemplateGroup{}
	for _, category := range append(append([]string{}, models.CategoryOrder...), extraOrder...) {
		if section, ok := byCategory[category]; ok {
			groups = append(groups, models.TemplateGroup{
				Category:  category,
				Templates: section,
			})
		}
	}
	return groups
}
