package chec

import "github.com/commercekit/storefront/internal/commerce"

// resolveVariantSelections matches each human-readable {name, value} pair
// against the product's own variant groups: first the group whose display
// name equals name, then within it the option whose display name equals
// value (exact match, first match wins). Pairs are resolved independently;
// pairs that match nothing are dropped without error.
func resolveVariantSelections(groups []commerce.ProductVariantGroup, selected []commerce.SelectedOption) []map[string]string {
	selectedVariantIDs := []map[string]string{}

	for _, selection := range selected {
		group := findVariantGroup(groups, selection.Name)
		if group == nil {
			continue
		}

		option := findVariantOption(group.Options, selection.Value)
		if option == nil {
			continue
		}

		selectedVariantIDs = append(selectedVariantIDs, map[string]string{group.ID: option.ID})
	}

	return selectedVariantIDs
}

func findVariantGroup(groups []commerce.ProductVariantGroup, name string) *commerce.ProductVariantGroup {
	for i := range groups {
		if groups[i].Name == name {
			return &groups[i]
		}
	}

	return nil
}

func findVariantOption(options []commerce.ProductVariantOption, name string) *commerce.ProductVariantOption {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}

	return nil
}

// shapeProductDetail maps the backend product payload onto the view the
// product page renders. Field renames: description carries trusted HTML and
// becomes DescriptionHTML.
func shapeProductDetail(product *commerce.Product, selectedVariantIDs []map[string]string) *commerce.ProductDetail {
	return &commerce.ProductDetail{
		ID:                 product.ID,
		Permalink:          product.Permalink,
		Name:               product.Name,
		DescriptionHTML:    product.Description,
		Price:              product.Price,
		Image:              product.Image,
		VariantGroups:      product.VariantGroups,
		SelectedVariantIDs: selectedVariantIDs,
	}
}
