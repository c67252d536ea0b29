package services

// Formulation fee schedule, in won.
const (
	// Assay validation is billed once per test type present in the
	// selection (in-vivo and in-vitro independently).
	assayValidationFee = 10_000_000
	// Content analysis is billed per analysis cycle of each flagged study.
	contentAnalysisCycleFee = 1_000_000
	// Individually-recognized health-functional foods carry one flat
	// formulation fee per quotation.
	hfIndividualFee = 26_000_000
)

// FormulationCost breaks the formulation surcharge of a quotation into its
// three independent components.
type FormulationCost struct {
	AssayBase     int64
	ContentTotal  int64
	HFFormulation int64
}

// Total returns the formulation subtotal fed into the quote aggregation.
func (c FormulationCost) Total() int64 {
	return c.AssayBase + c.ContentTotal + c.HFFormulation
}

// ComputeFormulationCost computes the formulation surcharge for the selected
// lines under the given product category. An empty selection costs nothing
// regardless of category.
func ComputeFormulationCost(lines []SelectedLine, category FormulationCategory, items map[int]StudyItem, classifications ClassificationTable) FormulationCost {
	if len(lines) == 0 {
		return FormulationCost{}
	}
	switch category {
	case CategoryDrugSingle:
		return drugSingleFormulationCost(lines, items, classifications)
	case CategoryHFIndividual:
		return FormulationCost{HFFormulation: hfIndividualFee}
	case CategoryHFProbiotic:
		// No formulation fee schedule is on file for probiotic HF products.
		return FormulationCost{}
	case CategoryDrugCombo, CategoryDrugVaccine, CategoryMDBio:
		// Formulation work is folded into each line's study price.
		return FormulationCost{}
	}
	return FormulationCost{}
}

func drugSingleFormulationCost(lines []SelectedLine, items map[int]StudyItem, classifications ClassificationTable) FormulationCost {
	var cost FormulationCost
	var hasInVivo, hasInVitro bool

	for _, line := range lines {
		cls, ok := classifications[line.ItemID]
		if !ok {
			continue
		}
		switch cls.TestType {
		case TestTypeInVivo:
			hasInVivo = true
		case TestTypeInVitro:
			hasInVitro = true
		}
		if cls.ContentAnalysis {
			if item, ok := items[line.ItemID]; ok {
				cost.ContentTotal += int64(CountCycles(item.Duration)) * contentAnalysisCycleFee
			}
		}
	}

	if hasInVivo {
		cost.AssayBase += assayValidationFee
	}
	if hasInVitro {
		cost.AssayBase += assayValidationFee
	}
	return cost
}
