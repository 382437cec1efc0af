package usecase

import (
	"fmt"

	"github.com/waypoint/backend/internal/domain"
)

// ProductRow is the view record of one product on the dashboard
type ProductRow struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Handle             string          `json:"handle"`
	State              domain.RowState `json:"state"`
	CustomsDescription string          `json:"customsDescription"`
	HSCode             string          `json:"hsCode"`
	Actions            []domain.Action `json:"actions"`
}

// NewProductRow builds a row from a loaded product. A product with existing
// metafields is indistinguishable from one saved in this session.
func NewProductRow(product domain.Product) ProductRow {
	row := ProductRow{
		ID:     product.ID,
		Title:  product.Title,
		Handle: product.Handle,
		State:  domain.RowUnclassified,
	}
	if product.HasClassification() {
		row.State = domain.RowSaved
		if product.CustomsDescription != nil {
			row.CustomsDescription = *product.CustomsDescription
		}
		if product.HSCode != nil {
			row.HSCode = *product.HSCode
		}
	}
	row.Actions = row.State.Actions()
	return row
}

// ApplyClassification shows an unsaved classification on its own row.
// A result tagged with another product id, or arriving while the row is
// being saved, leaves the row untouched.
func ApplyClassification(row *ProductRow, result domain.ClassificationResult) error {
	if result.ProductID != row.ID {
		return fmt.Errorf("%w: result for %q applied to %q", domain.ErrProductMismatch, result.ProductID, row.ID)
	}

	events := []domain.RowEvent{domain.EventClassified}
	if row.State != domain.RowClassifying {
		events = append([]domain.RowEvent{domain.EventClassify}, events...)
	}
	state, err := advance(row.State, events...)
	if err != nil {
		return err
	}

	row.CustomsDescription = result.CustomsDescription
	row.HSCode = result.HSCode
	row.State = state
	row.Actions = row.State.Actions()
	return nil
}

// MarkSaved records that result was persisted for its row.
// Only a classified or saving row can be saved.
func MarkSaved(row *ProductRow, result domain.ClassificationResult) error {
	if result.ProductID != row.ID {
		return fmt.Errorf("%w: result for %q applied to %q", domain.ErrProductMismatch, result.ProductID, row.ID)
	}

	events := []domain.RowEvent{domain.EventSaved}
	if row.State != domain.RowSaving {
		events = append([]domain.RowEvent{domain.EventSave}, events...)
	}
	state, err := advance(row.State, events...)
	if err != nil {
		return err
	}

	row.CustomsDescription = result.CustomsDescription
	row.HSCode = result.HSCode
	row.State = state
	row.Actions = row.State.Actions()
	return nil
}

// advance applies events in order starting from state
func advance(state domain.RowState, events ...domain.RowEvent) (domain.RowState, error) {
	previous := state
	for _, event := range events {
		next, err := state.Next(event, previous)
		if err != nil {
			return previous, err
		}
		state = next
	}
	return state, nil
}

// MergeClassifications applies each result to the row with the same product id.
// Results for products not on the page, or for rows being saved, are ignored;
// order of results does not matter.
func MergeClassifications(rows []ProductRow, results []domain.ClassificationResult) {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		index[row.ID] = i
	}
	for _, result := range results {
		if i, ok := index[result.ProductID]; ok {
			_ = ApplyClassification(&rows[i], result)
		}
	}
}
