package shared

// Classification defines which categories and sources count toward each
// financial loop. The partition sets are configuration rather than code so
// the reporting rules can change without touching the aggregation logic.
type Classification struct {
	PersonalCategories    []Category // bill categories counted as personal spending
	BusinessCategories    []Category // bill categories counted as business advances
	PersonalIncomeSources []Source   // funding sources counted as personal income
	ReimbursementSources  []Source   // funding sources counted as reimbursement
}

// DefaultClassification returns the partition sets matching the built-in
// category and source enums.
func DefaultClassification() Classification {
	return Classification{
		PersonalCategories:    []Category{CategoryPersonal},
		BusinessCategories:    []Category{CategoryWork},
		PersonalIncomeSources: []Source{SourceSalary, SourceOther},
		ReimbursementSources:  []Source{SourceReimbursement},
	}
}

// IsPersonalCategory reports whether the category counts as personal spending
func (c Classification) IsPersonalCategory(category Category) bool {
	return containsCategory(c.PersonalCategories, category)
}

// IsBusinessCategory reports whether the category counts as a business advance
func (c Classification) IsBusinessCategory(category Category) bool {
	return containsCategory(c.BusinessCategories, category)
}

// IsPersonalIncomeSource reports whether the source counts as personal income
func (c Classification) IsPersonalIncomeSource(source Source) bool {
	return containsSource(c.PersonalIncomeSources, source)
}

// IsReimbursementSource reports whether the source counts as reimbursement
func (c Classification) IsReimbursementSource(source Source) bool {
	return containsSource(c.ReimbursementSources, source)
}

func containsCategory(set []Category, category Category) bool {
	for _, candidate := range set {
		if candidate == category {
			return true
		}
	}
	return false
}

func containsSource(set []Source, source Source) bool {
	for _, candidate := range set {
		if candidate == source {
			return true
		}
	}
	return false
}
